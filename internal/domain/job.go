package domain

import (
	"context"
	"time"
)

type Job struct {
	ID                  int64     `json:"job_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Salary              float64   `json:"salary"`
	Location            string    `json:"location"`
	Role                string    `json:"role"`
	JobType             string    `json:"job_type"`
	WorkLocation        string    `json:"work_location"`
	CompanyID           int64     `json:"company_id"`
	PostedByRecruiterID int64     `json:"posted_by_recruiter_id"`
	Openings            int       `json:"openings"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
}

// JobWithCompany is a search row.
type JobWithCompany struct {
	Job
	CompanyName string `json:"company_name"`
	CompanyLogo string `json:"company_logo"`
}

// JobFilter narrows the active job search; empty fields do not restrict.
type JobFilter struct {
	Title    string
	Location string
}

type JobInput struct {
	Title        string
	Description  string
	Salary       float64
	Location     string
	Role         string
	JobType      string
	WorkLocation string
	CompanyID    int64
	Openings     int
}

// JobPatch is a partial update; nil fields keep their stored value.
type JobPatch struct {
	Title        *string
	Description  *string
	Salary       *float64
	Location     *string
	Role         *string
	JobType      *string
	WorkLocation *string
	Openings     *int
	IsActive     *bool
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	Update(ctx context.Context, id int64, patch JobPatch) (*Job, error)
	SearchActive(ctx context.Context, filter JobFilter) ([]JobWithCompany, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, in JobInput) (*Job, error)
	UpdateJob(ctx context.Context, id int64, patch JobPatch) (*Job, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	SearchJobs(ctx context.Context, filter JobFilter) ([]JobWithCompany, error)
}
