package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `company_id, name, slug, description, website, logo, logo_public_id, recruiter_id, created_at`

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func scanCompany(row pgx.Row, c *domain.Company, extra ...any) error {
	dest := []any{&c.ID, &c.Name, &c.Slug, &c.Description, &c.Website, &c.Logo, &c.LogoPublicID, &c.RecruiterID, &c.CreatedAt}
	return row.Scan(append(dest, extra...)...)
}

func (r *companyRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM companies WHERE name = $1)`, name).Scan(&exists)
	return exists, err
}

func (r *companyRepo) Create(ctx context.Context, c *domain.Company) error {
	query := `INSERT INTO companies (name, slug, description, website, logo, logo_public_id, recruiter_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING company_id, created_at`
	err := r.db.QueryRow(ctx, query,
		c.Name, c.Slug, c.Description, c.Website, c.Logo, c.LogoPublicID, c.RecruiterID,
	).Scan(&c.ID, &c.CreatedAt)
	return mapErr(err)
}

func (r *companyRepo) GetOwned(ctx context.Context, id, recruiterID int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE company_id = $1 AND recruiter_id = $2`
	var c domain.Company
	if err := scanCompany(r.db.QueryRow(ctx, query, id, recruiterID), &c); err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

// GetWithJobs aggregates the company's jobs into one JSON column, newest first.
func (r *companyRepo) GetWithJobs(ctx context.Context, id int64) (*domain.CompanyWithJobs, error) {
	query := `SELECT c.company_id, c.name, c.slug, c.description, c.website, c.logo, c.logo_public_id, c.recruiter_id, c.created_at,
			COALESCE(
				(SELECT json_agg(j ORDER BY j.created_at DESC) FROM jobs j WHERE j.company_id = c.company_id),
				'[]'::json
			) AS jobs
		FROM companies c
		WHERE c.company_id = $1`

	var out domain.CompanyWithJobs
	var jobsJSON []byte
	if err := scanCompany(r.db.QueryRow(ctx, query, id), &out.Company, &jobsJSON); err != nil {
		return nil, mapErr(err)
	}
	if err := json.Unmarshal(jobsJSON, &out.Jobs); err != nil {
		return nil, fmt.Errorf("failed to decode company jobs: %w", err)
	}
	if out.Jobs == nil {
		out.Jobs = []domain.Job{}
	}
	return &out, nil
}

func (r *companyRepo) ListByRecruiter(ctx context.Context, recruiterID int64) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE recruiter_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		var c domain.Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Delete removes the company; its jobs and their applications cascade.
func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE company_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
