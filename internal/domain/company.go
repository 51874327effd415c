package domain

import (
	"context"
	"time"
)

type Company struct {
	ID           int64     `json:"company_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Website      string    `json:"website"`
	Logo         string    `json:"logo"`
	LogoPublicID string    `json:"logo_public_id"`
	RecruiterID  int64     `json:"recruiter_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// CompanyWithJobs is the company detail aggregate; Jobs is never nil.
type CompanyWithJobs struct {
	Company
	Jobs []Job `json:"jobs"`
}

type CreateCompanyInput struct {
	Name        string
	Description string
	Website     string
	Logo        *UploadFile
}

type CompanyRepository interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, company *Company) error
	// GetOwned matches on both id and recruiter, so a foreign company looks missing.
	GetOwned(ctx context.Context, id, recruiterID int64) (*Company, error)
	GetWithJobs(ctx context.Context, id int64) (*CompanyWithJobs, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]Company, error)
	Delete(ctx context.Context, id int64) error
}

type CompanyUsecase interface {
	CreateCompany(ctx context.Context, in CreateCompanyInput) (*Company, error)
	DeleteCompany(ctx context.Context, id int64) error
	ListMyCompanies(ctx context.Context) ([]Company, error)
	GetCompanyDetails(ctx context.Context, id int64) (*CompanyWithJobs, error)
}
