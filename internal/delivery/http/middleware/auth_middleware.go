package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-jobportal-backend/config"
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const AuthCookieName = "auth_token"

// AuthMiddleware verifies the bearer token, loads the user it names and
// attaches it to the request context. The role always comes from the database,
// never from the token.
func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, userUC domain.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			abortWith(c, apperror.Unauthorized("Authentication required"))
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.JWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
				}
				return []byte(cfg.JWTSecret), nil
			}

			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok && jwksProvider != nil {
				return jwksProvider.KeyFunc(token)
			}

			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})
		if err != nil || !token.Valid {
			abortWith(c, apperror.New(http.StatusUnauthorized, "Invalid token", err))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, apperror.Unauthorized("Invalid claims"))
			return
		}

		userID, ok := subjectID(claims)
		if !ok {
			abortWith(c, apperror.Unauthorized("Invalid token subject"))
			return
		}

		user, err := userUC.ResolveIdentity(c.Request.Context(), userID)
		if err != nil {
			abortWith(c, err)
			return
		}

		c.Request = c.Request.WithContext(domain.WithUser(c.Request.Context(), user))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
			return strings.TrimSpace(header[7:])
		}
		return ""
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

// subjectID reads the numeric user id from "sub", falling back to "user_id".
func subjectID(claims jwt.MapClaims) (int64, bool) {
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		id, err := strconv.ParseInt(sub, 10, 64)
		return id, err == nil && id > 0
	}
	if raw, ok := claims["user_id"].(float64); ok && raw > 0 && raw == float64(int64(raw)) {
		return int64(raw), true
	}
	return 0, false
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
