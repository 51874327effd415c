package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/publisher"
)

const notifyTimeout = 10 * time.Second

type applicationUsecase struct {
	appRepo  domain.ApplicationRepository
	jobRepo  domain.JobRepository
	notifier domain.Notifier
	now      func() time.Time
}

type ApplicationOption func(*applicationUsecase)

// WithClock replaces time.Now, used for the subscription snapshot.
func WithClock(now func() time.Time) ApplicationOption {
	return func(u *applicationUsecase) { u.now = now }
}

func NewApplicationUsecase(appRepo domain.ApplicationRepository, jobRepo domain.JobRepository, notifier domain.Notifier, opts ...ApplicationOption) domain.ApplicationUsecase {
	u := &applicationUsecase{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		notifier: notifier,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *applicationUsecase) Apply(ctx context.Context, jobID int64) (*domain.Application, error) {
	user, err := requireRole(ctx, domain.RoleJobseeker, "Forbidden")
	if err != nil {
		return nil, err
	}
	if user.Resume == nil || strings.TrimSpace(*user.Resume) == "" {
		return nil, apperror.BadRequest("You need to add resume in your profile to apply for this job")
	}
	if jobID <= 0 {
		return nil, apperror.BadRequest("job id is required")
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, lookupErr(err, "No jobs with this id")
	}
	if !job.IsActive {
		return nil, apperror.BadRequest("Job is not active")
	}

	app := &domain.Application{
		JobID:          jobID,
		ApplicantID:    user.ID,
		ApplicantEmail: user.Email,
		Resume:         *user.Resume,
		Status:         domain.ApplicationStatusSubmitted,
		Subscribed:     user.SubscribedAt(u.now()),
	}
	if err := u.appRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied for this job")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

func (u *applicationUsecase) ListMine(ctx context.Context) ([]domain.ApplicationWithJob, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	apps, err := u.appRepo.ListByApplicant(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if apps == nil {
		apps = []domain.ApplicationWithJob{}
	}
	return apps, nil
}

func (u *applicationUsecase) ListForJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	if _, err := u.ownedJob(ctx, jobID); err != nil {
		return nil, err
	}
	apps, err := u.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

func (u *applicationUsecase) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Application, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	app, err := u.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Application not found")
	}

	job, err := requireOwnership(user,
		func() (*domain.Job, error) { return u.jobRepo.GetByID(ctx, app.JobID) },
		func(j *domain.Job) int64 { return j.PostedByRecruiterID },
		"Job not found")
	if err != nil {
		return nil, err
	}

	status = strings.ToLower(strings.TrimSpace(status))
	if err := requireFields(map[string]string{"status": status}, "status"); err != nil {
		return nil, err
	}
	if !domain.IsApplicationStatus(status) {
		return nil, apperror.BadRequest("status must be one of: submitted, reviewed, accepted, rejected")
	}

	if !domain.CanTransition(app.Status, status) {
		return nil, apperror.Conflict(fmt.Sprintf("Cannot change application status from %s to %s", app.Status, status))
	}

	updated, err := u.appRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, lookupErr(err, "Application not found")
	}

	go u.notifyStatusChange(context.WithoutCancel(ctx), updated, job.Title)

	return updated, nil
}

// notifyStatusChange is best-effort: failures are logged and never reach the caller.
func (u *applicationUsecase) notifyStatusChange(ctx context.Context, app *domain.Application, jobTitle string) {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	msg, err := publisher.ApplicationStatusUpdate(app.ApplicantEmail, jobTitle, app.Status, app.AppliedAt, u.now())
	if err != nil {
		logger.Log.Error("failed to render application update mail", "application_id", app.ID, "error", err)
		return
	}
	if err := u.notifier.Publish(ctx, domain.TopicSendMail, msg); err != nil {
		logger.Log.Warn("failed to publish application update", "application_id", app.ID, "topic", domain.TopicSendMail, "error", err)
	}
}

func (u *applicationUsecase) ExportForJob(ctx context.Context, jobID int64) ([]byte, string, error) {
	job, err := u.ownedJob(ctx, jobID)
	if err != nil {
		return nil, "", err
	}
	apps, err := u.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	data, filename, err := exportApplications(job, apps, u.now())
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return data, filename, nil
}

func (u *applicationUsecase) ownedJob(ctx context.Context, jobID int64) (*domain.Job, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	return requireOwnership(user,
		func() (*domain.Job, error) { return u.jobRepo.GetByID(ctx, jobID) },
		func(j *domain.Job) int64 { return j.PostedByRecruiterID },
		"Job not found")
}
