package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assertAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected *apperror.AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func validCompanyInput() domain.CreateCompanyInput {
	return domain.CreateCompanyInput{
		Name:        "Acme Corp",
		Description: "We build <b>rockets</b>",
		Website:     "https://acme.test",
		Logo:        &domain.UploadFile{Filename: "logo.png", Data: []byte("png")},
	}
}

func TestCreateCompany(t *testing.T) {
	t.Run("Should reject missing fields without touching storage", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		uploader := new(MockUploader)
		uc := usecase.NewCompanyUsecase(repo, uploader)

		in := validCompanyInput()
		in.Description = "  "
		in.Website = ""
		_, err := uc.CreateCompany(asUser(recruiter), in)

		assertAppError(t, err, http.StatusBadRequest, "All the fields required: description, website")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject missing logo", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("ExistsByName", mock.Anything, "Acme Corp").Return(false, nil)
		uc := usecase.NewCompanyUsecase(repo, new(MockUploader))

		in := validCompanyInput()
		in.Logo = nil
		_, err := uc.CreateCompany(asUser(recruiter), in)

		assertAppError(t, err, http.StatusBadRequest, "Company Logo file is required")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should forbid job seekers", func(t *testing.T) {
		uc := usecase.NewCompanyUsecase(new(MockCompanyRepo), new(MockUploader))
		_, err := uc.CreateCompany(asUser(seeker), validCompanyInput())
		assertAppError(t, err, http.StatusForbidden, "Forbidden: Only recruiter can create a company")
	})

	t.Run("Should require authentication", func(t *testing.T) {
		uc := usecase.NewCompanyUsecase(new(MockCompanyRepo), new(MockUploader))
		_, err := uc.CreateCompany(context.Background(), validCompanyInput())
		assertAppError(t, err, http.StatusUnauthorized, "Authentication required")
	})

	t.Run("Should conflict on an existing name", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("ExistsByName", mock.Anything, "Acme Corp").Return(true, nil)
		uc := usecase.NewCompanyUsecase(repo, new(MockUploader))

		_, err := uc.CreateCompany(asUser(recruiter), validCompanyInput())
		assertAppError(t, err, http.StatusConflict, "A company with the name Acme Corp already exists")
	})

	t.Run("Should map an empty buffer to an internal error", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("ExistsByName", mock.Anything, "Acme Corp").Return(false, nil)
		uploader := new(MockUploader)
		uploader.On("Upload", mock.Anything, mock.Anything, "").Return(nil, domain.ErrEmptyFileBuffer)
		uc := usecase.NewCompanyUsecase(repo, uploader)

		_, err := uc.CreateCompany(asUser(recruiter), validCompanyInput())
		assertAppError(t, err, http.StatusInternalServerError, "Failed to create file buffer")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Should persist asset url and public id together", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("ExistsByName", mock.Anything, "Acme Corp").Return(false, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Company) bool {
			return c.Logo == "https://cdn/logo.png" && c.LogoPublicID == "logo-1" &&
				c.RecruiterID == recruiter.ID && c.Slug == "acme-corp" && c.Description == "We build rockets"
		})).Return(nil)
		uploader := new(MockUploader)
		uploader.On("Upload", mock.Anything, mock.Anything, "").
			Return(&domain.Asset{URL: "https://cdn/logo.png", PublicID: "logo-1"}, nil)
		uc := usecase.NewCompanyUsecase(repo, uploader)

		company, err := uc.CreateCompany(asUser(recruiter), validCompanyInput())
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", company.Name)
		repo.AssertExpectations(t)
	})

	t.Run("Should accept a distinct name whose slug is already used", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("ExistsByName", mock.Anything, "Acme, Inc.").Return(false, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Company) bool {
			return c.Name == "Acme, Inc." && c.Slug == "acme-inc"
		})).Return(nil)
		uploader := new(MockUploader)
		uploader.On("Upload", mock.Anything, mock.Anything, "").Return(&domain.Asset{URL: "u", PublicID: "p"}, nil)
		uc := usecase.NewCompanyUsecase(repo, uploader)

		in := validCompanyInput()
		in.Name = "Acme, Inc."
		company, err := uc.CreateCompany(asUser(recruiter), in)
		require.NoError(t, err)
		assert.Equal(t, "acme-inc", company.Slug)
		repo.AssertExpectations(t)
	})

	t.Run("Should conflict when a racing insert wins", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("ExistsByName", mock.Anything, "Acme Corp").Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)
		uploader := new(MockUploader)
		uploader.On("Upload", mock.Anything, mock.Anything, "").Return(&domain.Asset{URL: "u", PublicID: "p"}, nil)
		uc := usecase.NewCompanyUsecase(repo, uploader)

		_, err := uc.CreateCompany(asUser(recruiter), validCompanyInput())
		assertAppError(t, err, http.StatusConflict, "")
	})
}

func TestDeleteCompany(t *testing.T) {
	t.Run("Should hide companies the caller does not own", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("GetOwned", mock.Anything, int64(5), otherRec.ID).Return(nil, domain.ErrNotFound)
		uc := usecase.NewCompanyUsecase(repo, new(MockUploader))

		err := uc.DeleteCompany(asUser(otherRec), 5)

		assertAppError(t, err, http.StatusNotFound, "Company not found or you're not authorized to delete it.")
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should delete an owned company", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("GetOwned", mock.Anything, int64(5), recruiter.ID).Return(&domain.Company{ID: 5, RecruiterID: recruiter.ID}, nil)
		repo.On("Delete", mock.Anything, int64(5)).Return(nil)
		uc := usecase.NewCompanyUsecase(repo, new(MockUploader))

		require.NoError(t, uc.DeleteCompany(asUser(recruiter), 5))
		repo.AssertExpectations(t)
	})

	t.Run("Should surface storage failures as internal errors", func(t *testing.T) {
		repo := new(MockCompanyRepo)
		repo.On("GetOwned", mock.Anything, int64(5), recruiter.ID).Return(nil, errors.New("conn reset"))
		uc := usecase.NewCompanyUsecase(repo, new(MockUploader))

		err := uc.DeleteCompany(asUser(recruiter), 5)
		assertAppError(t, err, http.StatusInternalServerError, "Internal Server Error")
	})
}

func TestCompanyReads(t *testing.T) {
	repo := new(MockCompanyRepo)
	repo.On("GetWithJobs", mock.Anything, int64(3)).Return(&domain.CompanyWithJobs{Company: domain.Company{ID: 3}}, nil)
	repo.On("GetWithJobs", mock.Anything, int64(4)).Return(nil, domain.ErrNotFound)
	repo.On("ListByRecruiter", mock.Anything, recruiter.ID).Return(nil, nil)
	uc := usecase.NewCompanyUsecase(repo, new(MockUploader))

	details, err := uc.GetCompanyDetails(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, details.Jobs)
	assert.Empty(t, details.Jobs)

	_, err = uc.GetCompanyDetails(context.Background(), 4)
	assertAppError(t, err, http.StatusNotFound, "Company not found")

	companies, err := uc.ListMyCompanies(asUser(recruiter))
	require.NoError(t, err)
	assert.NotNil(t, companies)
}
