package usecase

import (
	"context"
	"errors"
	"net/http"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

// requireUser returns the caller attached by the auth gate.
func requireUser(ctx context.Context) (*domain.User, error) {
	user, ok := domain.UserFromContext(ctx)
	if !ok {
		return nil, apperror.Unauthorized("Authentication required")
	}
	return user, nil
}

// requireRole additionally rejects callers whose role is not role.
func requireRole(ctx context.Context, role, message string) (*domain.User, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, apperror.Forbidden(message)
	}
	return user, nil
}

// requireOwnership loads a resource and checks the caller owns it. A missing
// resource is NotFound with notFoundMsg, a foreign one is Forbidden.
func requireOwnership[T any](user *domain.User, lookup func() (*T, error), ownerOf func(*T) int64, notFoundMsg string) (*T, error) {
	resource, err := lookup()
	if err != nil {
		return nil, lookupErr(err, notFoundMsg)
	}
	if ownerOf(resource) != user.ID {
		return nil, apperror.Forbidden("Forbidden")
	}
	return resource, nil
}

// lookupErr maps a repository error; ErrNotFound becomes NotFound(msg).
func lookupErr(err error, notFoundMsg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(notFoundMsg)
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	return apperror.Internal(err)
}

// uploadErr maps an uploader failure; an unusable buffer keeps its message.
func uploadErr(err error, bufferMsg string) error {
	if errors.Is(err, domain.ErrEmptyFileBuffer) {
		return apperror.InternalMsg(bufferMsg, err)
	}
	if errors.Is(err, domain.ErrFileRejected) {
		return apperror.New(http.StatusUnprocessableEntity, "File was rejected by the malware scan", err)
	}
	return apperror.Internal(err)
}
