package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobportal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	status, ok := usecase.NewHealthUsecase(pingerFunc(func(context.Context) error { return nil })).Check(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "ok", status["status"])

	status, ok = usecase.NewHealthUsecase(pingerFunc(func(context.Context) error { return errors.New("down") })).Check(context.Background())
	assert.False(t, ok)
	assert.Equal(t, "unreachable", status["database"])
}
