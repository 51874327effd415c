package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `application_id, job_id, applicant_id, applicant_email, status, resume, subscribed, applied_at`

// Subscribed applicants first, then earliest application.
const listApplicationsByJobQuery = `SELECT ` + applicationColumns + ` FROM applications
		WHERE job_id = $1
		ORDER BY subscribed DESC, applied_at ASC`

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplication(row pgx.Row, a *domain.Application, extra ...any) error {
	dest := []any{&a.ID, &a.JobID, &a.ApplicantID, &a.ApplicantEmail, &a.Status, &a.Resume, &a.Subscribed, &a.AppliedAt}
	return row.Scan(append(dest, extra...)...)
}

func (r *applicationRepo) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications (job_id, applicant_id, applicant_email, resume, status, subscribed)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING application_id, applied_at`
	err := r.db.QueryRow(ctx, query,
		a.JobID, a.ApplicantID, a.ApplicantEmail, a.Resume, a.Status, a.Subscribed,
	).Scan(&a.ID, &a.AppliedAt)
	return mapErr(err)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE application_id = $1`
	var a domain.Application
	if err := scanApplication(r.db.QueryRow(ctx, query, id), &a); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *applicationRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, listApplicationsByJobQuery, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.Application{}
	for rows.Next() {
		var a domain.Application
		if err := scanApplication(rows, &a); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID int64) ([]domain.ApplicationWithJob, error) {
	query := `SELECT a.application_id, a.job_id, a.applicant_id, a.applicant_email, a.status, a.resume, a.subscribed, a.applied_at,
			j.title, j.salary, j.location
		FROM applications a
		JOIN jobs j ON a.job_id = j.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.applied_at DESC`
	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.ApplicationWithJob{}
	for rows.Next() {
		var a domain.ApplicationWithJob
		if err := scanApplication(rows, &a.Application, &a.JobTitle, &a.JobSalary, &a.JobLocation); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	query := `UPDATE applications SET status = $2 WHERE application_id = $1 RETURNING ` + applicationColumns
	var a domain.Application
	if err := scanApplication(r.db.QueryRow(ctx, query, id, status), &a); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}
