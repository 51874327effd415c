package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/gosimple/slug"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	uploader    domain.FileUploader
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, uploader domain.FileUploader) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		uploader:    uploader,
	}
}

func (u *companyUsecase) CreateCompany(ctx context.Context, in domain.CreateCompanyInput) (*domain.Company, error) {
	user, err := requireRole(ctx, domain.RoleRecruiter, "Forbidden: Only recruiter can create a company")
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	description := validation.SanitizeText(in.Description)
	website := strings.TrimSpace(in.Website)
	if err := requireFields(map[string]string{
		"name":        name,
		"description": description,
		"website":     website,
	}, "name", "description", "website"); err != nil {
		return nil, err
	}

	exists, err := u.companyRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict(fmt.Sprintf("A company with the name %s already exists", name))
	}

	if in.Logo == nil {
		return nil, apperror.BadRequest("Company Logo file is required")
	}

	asset, err := u.uploader.Upload(ctx, in.Logo, "")
	if err != nil {
		return nil, uploadErr(err, "Failed to create file buffer")
	}

	company := &domain.Company{
		Name:         name,
		Slug:         slug.Make(name),
		Description:  description,
		Website:      website,
		Logo:         asset.URL,
		LogoPublicID: asset.PublicID,
		RecruiterID:  user.ID,
	}
	if err := u.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict(fmt.Sprintf("A company with the name %s already exists", name))
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

// DeleteCompany answers NotFound for foreign companies too, so existence is
// never disclosed to non-owners.
func (u *companyUsecase) DeleteCompany(ctx context.Context, id int64) error {
	user, err := requireUser(ctx)
	if err != nil {
		return err
	}

	const notOwned = "Company not found or you're not authorized to delete it."
	if _, err := u.companyRepo.GetOwned(ctx, id, user.ID); err != nil {
		return lookupErr(err, notOwned)
	}
	if err := u.companyRepo.Delete(ctx, id); err != nil {
		return lookupErr(err, notOwned)
	}
	return nil
}

func (u *companyUsecase) ListMyCompanies(ctx context.Context) ([]domain.Company, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	companies, err := u.companyRepo.ListByRecruiter(ctx, user.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if companies == nil {
		companies = []domain.Company{}
	}
	return companies, nil
}

func (u *companyUsecase) GetCompanyDetails(ctx context.Context, id int64) (*domain.CompanyWithJobs, error) {
	company, err := u.companyRepo.GetWithJobs(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Company not found")
	}
	if company.Jobs == nil {
		company.Jobs = []domain.Job{}
	}
	return company, nil
}
