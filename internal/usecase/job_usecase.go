package usecase

import (
	"context"
	"strconv"
	"strings"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

func (u *jobUsecase) CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	user, err := requireRole(ctx, domain.RoleRecruiter, "Forbidden: Only recruiter can create a job")
	if err != nil {
		return nil, err
	}

	in.Description = validation.SanitizeText(in.Description)
	if err := requireFields(map[string]string{
		"title":       in.Title,
		"description": in.Description,
		"salary":      positive(in.Salary),
		"location":    in.Location,
		"role":        in.Role,
		"openings":    positive(float64(in.Openings)),
	}, "title", "description", "salary", "location", "role", "openings"); err != nil {
		return nil, err
	}

	if _, err := u.companyRepo.GetOwned(ctx, in.CompanyID, user.ID); err != nil {
		return nil, lookupErr(err, "Company not found")
	}

	job := &domain.Job{
		Title:               strings.TrimSpace(in.Title),
		Description:         in.Description,
		Salary:              in.Salary,
		Location:            strings.TrimSpace(in.Location),
		Role:                strings.TrimSpace(in.Role),
		JobType:             strings.TrimSpace(in.JobType),
		WorkLocation:        strings.TrimSpace(in.WorkLocation),
		CompanyID:           in.CompanyID,
		PostedByRecruiterID: user.ID,
		Openings:            in.Openings,
		IsActive:            true,
	}
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, patch domain.JobPatch) (*domain.Job, error) {
	user, err := requireRole(ctx, domain.RoleRecruiter, "Forbidden: Only recruiter can update a job")
	if err != nil {
		return nil, err
	}

	_, err = requireOwnership(user,
		func() (*domain.Job, error) { return u.jobRepo.GetByID(ctx, id) },
		func(j *domain.Job) int64 { return j.PostedByRecruiterID },
		"Job not found")
	if err != nil {
		return nil, err
	}

	if patch.Salary != nil && *patch.Salary <= 0 {
		return nil, apperror.BadRequest("salary must be greater than 0")
	}
	if patch.Openings != nil && *patch.Openings <= 0 {
		return nil, apperror.BadRequest("openings must be greater than 0")
	}
	if patch.Description != nil {
		clean := validation.SanitizeText(*patch.Description)
		patch.Description = &clean
	}

	job, err := u.jobRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	return job, nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Job not found")
	}
	return job, nil
}

func (u *jobUsecase) SearchJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithCompany, error) {
	filter.Title = strings.TrimSpace(filter.Title)
	filter.Location = strings.TrimSpace(filter.Location)

	jobs, err := u.jobRepo.SearchActive(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if jobs == nil {
		jobs = []domain.JobWithCompany{}
	}
	return jobs, nil
}

// positive renders v for a presence check: zero or negative counts as missing.
func positive(v float64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
