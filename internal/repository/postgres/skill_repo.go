package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

const (
	userExistsQuery  = `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1)`
	upsertSkillQuery = `INSERT INTO skills (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING skill_id`
	// Re-adding a held skill inserts nothing and returns no row.
	linkSkillQuery = `INSERT INTO user_skills (user_id, skill_id) VALUES ($1, $2)
		ON CONFLICT (user_id, skill_id) DO NOTHING
		RETURNING user_id`
	unlinkSkillQuery = `DELETE FROM user_skills
		WHERE user_id = $1
		  AND skill_id = (SELECT skill_id FROM skills WHERE name = $2)`
)

// rowQuerier is the part of pgx.Tx the skill steps need.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AddToUser runs user check, skill upsert and link insert in one transaction.
// A skill is never left created without its link when a later step fails.
func (r *skillRepo) AddToUser(ctx context.Context, userID int64, name string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if not committed

	added, err := linkSkill(ctx, tx, userID, name)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit skill: %w", err)
	}
	return added, nil
}

// linkSkill reports false when the user already held the skill.
func linkSkill(ctx context.Context, q rowQuerier, userID int64, name string) (bool, error) {
	var exists bool
	if err := q.QueryRow(ctx, userExistsQuery, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return false, domain.ErrNotFound
	}

	var skillID int64
	if err := q.QueryRow(ctx, upsertSkillQuery, name).Scan(&skillID); err != nil {
		return false, fmt.Errorf("failed to upsert skill: %w", err)
	}

	var linked int64
	err := q.QueryRow(ctx, linkSkillQuery, userID, skillID).Scan(&linked)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to link skill: %w", err)
	}
	return true, nil
}

func (r *skillRepo) RemoveFromUser(ctx context.Context, userID int64, name string) (bool, error) {
	tag, err := r.db.Exec(ctx, unlinkSkillQuery, userID, name)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
