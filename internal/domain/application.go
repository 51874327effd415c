package domain

import (
	"context"
	"time"
)

// Application status values. submitted -> reviewed -> accepted / rejected,
// and a submitted application may be decided directly.
const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
)

var applicationTransitions = map[string][]string{
	ApplicationStatusSubmitted: {ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusReviewed:  {ApplicationStatusAccepted, ApplicationStatusRejected},
	ApplicationStatusAccepted:  nil,
	ApplicationStatusRejected:  nil,
}

func IsApplicationStatus(status string) bool {
	_, ok := applicationTransitions[status]
	return ok
}

// CanTransition reports whether an application in status from may move to to.
func CanTransition(from, to string) bool {
	for _, next := range applicationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Application struct {
	ID             int64     `json:"application_id"`
	JobID          int64     `json:"job_id"`
	ApplicantID    int64     `json:"applicant_id"`
	ApplicantEmail string    `json:"applicant_email"`
	Status         string    `json:"status"`
	Resume         string    `json:"resume"`
	Subscribed     bool      `json:"subscribed"`
	AppliedAt      time.Time `json:"applied_at"`
}

// ApplicationWithJob is a row of the applicant's own list.
type ApplicationWithJob struct {
	Application
	JobTitle    string  `json:"job_title"`
	JobSalary   float64 `json:"job_salary"`
	JobLocation string  `json:"job_location"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	// ListByJob orders subscribed applicants first, then by earliest application.
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]ApplicationWithJob, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Application, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID int64) (*Application, error)
	ListMine(ctx context.Context) ([]ApplicationWithJob, error)
	ListForJob(ctx context.Context, jobID int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Application, error)
	ExportForJob(ctx context.Context, jobID int64) ([]byte, string, error)
}
