package usecase

import (
	"context"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	db Pinger
}

func NewHealthUsecase(db Pinger) HealthUsecase {
	return &healthUsecase{db: db}
}

// Check reports overall status and the database; ok is false when the
// database does not answer within two seconds.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if u.db == nil || u.db.Ping(ctx) != nil {
		return map[string]string{"status": "degraded", "database": "unreachable"}, false
	}
	return map[string]string{"status": "ok", "database": "ok"}, true
}
