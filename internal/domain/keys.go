package domain

import "context"

type CtxKey string

const (
	KeyUser      CtxKey = "User"
	KeyRequestID CtxKey = "RequestID"
)

// WithUser attaches the resolved caller to ctx.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}

// UserFromContext returns the caller attached by the auth gate, if any.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(KeyUser).(*User)
	return user, ok && user != nil
}
