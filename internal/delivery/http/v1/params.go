package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps a single multipart file.
const maxUploadSize = 10 << 20

// pathID parses a positive decimal path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid " + name)
	}
	return id, nil
}

// bindJSON binds the body and turns binding failures into one BadRequest.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperror.BadRequest(validation.Message(err))
	}
	return nil
}

// decodeJSON reads the body for endpoints whose usecase checks the caller's
// role and ownership before the input. A body that does not decode yields the
// zero request, so the usecase still answers 403 before it reports missing fields.
func decodeJSON[T any](c *gin.Context) T {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Debug("request body not decoded", "path", c.FullPath(), "error", err)
		var zero T
		return zero
	}
	return req
}

// formFile reads the multipart field "file" into memory. A request without
// the field yields nil so the usecase can report what is missing.
func formFile(c *gin.Context) (*domain.UploadFile, error) {
	header, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.BadRequest("Invalid multipart form")
	}
	if header.Size > maxUploadSize {
		return nil, apperror.BadRequest("File exceeds the 10MB limit")
	}

	f, err := header.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(data) > maxUploadSize {
		return nil, apperror.BadRequest("File exceeds the 10MB limit")
	}

	return &domain.UploadFile{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
