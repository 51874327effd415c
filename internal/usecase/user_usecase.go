package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/upload"
	"go-jobportal-backend/pkg/validation"
)

type userUsecase struct {
	userRepo  domain.UserRepository
	skillRepo domain.SkillRepository
	uploader  domain.FileUploader
}

func NewUserUsecase(userRepo domain.UserRepository, skillRepo domain.SkillRepository, uploader domain.FileUploader) domain.UserUsecase {
	return &userUsecase{
		userRepo:  userRepo,
		skillRepo: skillRepo,
		uploader:  uploader,
	}
}

// ResolveIdentity loads the user behind a verified token. A token for a user
// that no longer exists is treated as unauthenticated.
func (u *userUsecase) ResolveIdentity(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *userUsecase) MyProfile(ctx context.Context) (*domain.User, error) {
	return requireUser(ctx)
}

func (u *userUsecase) GetUserProfile(ctx context.Context, id int64) (*domain.UserProfile, error) {
	profile, err := u.userRepo.GetProfile(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	return profile, nil
}

func (u *userUsecase) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.UpdatedProfile, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	name := orDefault(strings.TrimSpace(in.Name), user.Name)
	phone := orDefault(strings.TrimSpace(in.PhoneNumber), user.PhoneNumber)
	bio := user.Bio
	if clean := validation.SanitizeText(in.Bio); clean != "" {
		bio = &clean
	}

	updated, err := u.userRepo.UpdateProfile(ctx, user.ID, name, phone, bio)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}
	return updated, nil
}

func (u *userUsecase) UpdateProfilePic(ctx context.Context, file *domain.UploadFile) (*domain.UpdatedAsset, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperror.BadRequest("No image file provided")
	}
	if len(file.Data) > 0 && !upload.IsImage(file.Data) {
		return nil, apperror.BadRequest("Profile picture must be an image")
	}

	asset, err := u.uploader.Upload(ctx, file, deref(user.ProfilePicPublicID))
	if err != nil {
		return nil, uploadErr(err, "failed to generate buffer")
	}

	updated, err := u.userRepo.UpdateProfilePic(ctx, user.ID, *asset)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}
	return updated, nil
}

func (u *userUsecase) UpdateResume(ctx context.Context, file *domain.UploadFile) (*domain.UpdatedAsset, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperror.BadRequest("No pdf file provided")
	}
	if len(file.Data) > 0 && !upload.IsPDF(file.Data) {
		return nil, apperror.BadRequest("Resume must be a PDF file")
	}

	asset, err := u.uploader.Upload(ctx, file, deref(user.ResumePublicID))
	if err != nil {
		return nil, uploadErr(err, "failed to generate buffer")
	}

	updated, err := u.userRepo.UpdateResume(ctx, user.ID, *asset)
	if err != nil {
		return nil, lookupErr(err, "User not found")
	}
	return updated, nil
}

func (u *userUsecase) AddSkill(ctx context.Context, name string) (string, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.BadRequest("Please provide a skill name")
	}

	added, err := u.skillRepo.AddToUser(ctx, user.ID, name)
	if err != nil {
		return "", lookupErr(err, "User not found.")
	}
	if !added {
		return "User already possesses this skill", nil
	}
	return fmt.Sprintf("Skill %s is added successfully", name), nil
}

func (u *userUsecase) DeleteSkill(ctx context.Context, name string) (string, error) {
	user, err := requireUser(ctx)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.BadRequest("Please provide a skill name")
	}

	removed, err := u.skillRepo.RemoveFromUser(ctx, user.ID, name)
	if err != nil {
		return "", apperror.Internal(err)
	}
	if !removed {
		return "", apperror.NotFound(fmt.Sprintf("Skill %s was not found", name))
	}
	return fmt.Sprintf("Skill %s was deleted successfully", name), nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
