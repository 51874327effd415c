package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `job_id, title, description, salary, location, role, job_type, work_location,
	company_id, posted_by_recruiter_id, openings, is_active, created_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row pgx.Row, job *domain.Job, extra ...any) error {
	dest := []any{
		&job.ID, &job.Title, &job.Description, &job.Salary, &job.Location, &job.Role, &job.JobType, &job.WorkLocation,
		&job.CompanyID, &job.PostedByRecruiterID, &job.Openings, &job.IsActive, &job.CreatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, salary, location, role, job_type, work_location, company_id, posted_by_recruiter_id, openings, is_active)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING job_id, created_at`
	err := r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Salary, job.Location, job.Role, job.JobType, job.WorkLocation,
		job.CompanyID, job.PostedByRecruiterID, job.Openings, job.IsActive,
	).Scan(&job.ID, &job.CreatedAt)
	return mapErr(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE job_id = $1`
	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job); err != nil {
		return nil, mapErr(err)
	}
	return &job, nil
}

// Update writes only the non-nil patch fields.
func (r *jobRepo) Update(ctx context.Context, id int64, patch domain.JobPatch) (*domain.Job, error) {
	query := `UPDATE jobs SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			salary = COALESCE($4, salary),
			location = COALESCE($5, location),
			role = COALESCE($6, role),
			job_type = COALESCE($7, job_type),
			work_location = COALESCE($8, work_location),
			openings = COALESCE($9, openings),
			is_active = COALESCE($10, is_active)
		WHERE job_id = $1
		RETURNING ` + jobColumns
	var job domain.Job
	err := scanJob(r.db.QueryRow(ctx, query, id,
		patch.Title, patch.Description, patch.Salary, patch.Location, patch.Role,
		patch.JobType, patch.WorkLocation, patch.Openings, patch.IsActive,
	), &job)
	if err != nil {
		return nil, mapErr(err)
	}
	return &job, nil
}

const searchActiveBase = `SELECT j.job_id, j.title, j.description, j.salary, j.location, j.role, j.job_type, j.work_location,
	j.company_id, j.posted_by_recruiter_id, j.openings, j.is_active, j.created_at, c.name, c.logo
	FROM jobs j
	JOIN companies c ON j.company_id = c.company_id`

func searchActiveQuery(filter domain.JobFilter) (string, []any) {
	b := newQueryBuilder(searchActiveBase).where("j.is_active = true")
	if filter.Title != "" {
		b.contains("j.title", filter.Title)
	}
	if filter.Location != "" {
		b.contains("j.location", filter.Location)
	}
	return b.orderBy("j.created_at DESC").build()
}

func (r *jobRepo) SearchActive(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithCompany, error) {
	query, args := searchActiveQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.JobWithCompany{}
	for rows.Next() {
		var j domain.JobWithCompany
		if err := scanJob(rows, &j.Job, &j.CompanyName, &j.CompanyLogo); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
