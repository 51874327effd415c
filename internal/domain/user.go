package domain

import (
	"context"
	"time"
)

const (
	RoleRecruiter = "recruiter"
	RoleJobseeker = "jobseeker"
)

type User struct {
	ID                 int64      `json:"user_id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	PhoneNumber        string     `json:"phone_number"`
	Role               string     `json:"role"`
	Bio                *string    `json:"bio"`
	Resume             *string    `json:"resume"`
	ResumePublicID     *string    `json:"resume_public_id"`
	ProfilePic         *string    `json:"profile_pic"`
	ProfilePicPublicID *string    `json:"profile_pic_public_id"`
	Subscription       *time.Time `json:"subscription"`
	CreatedAt          time.Time  `json:"created_at"`
}

// SubscribedAt reports whether the subscription expires strictly after t.
func (u *User) SubscribedAt(t time.Time) bool {
	return u.Subscription != nil && u.Subscription.After(t)
}

// UserProfile is the public profile; Skills is never nil.
type UserProfile struct {
	User
	Skills []string `json:"skills"`
}

// ProfileUpdate fields left empty keep the caller's current value.
type ProfileUpdate struct {
	Name        string
	PhoneNumber string
	Bio         string
}

type UpdatedProfile struct {
	ID          int64   `json:"user_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Bio         *string `json:"bio"`
}

type UpdatedAsset struct {
	ID         int64   `json:"user_id"`
	Name       string  `json:"name"`
	ProfilePic *string `json:"profile_pic,omitempty"`
	Resume     *string `json:"resume,omitempty"`
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetProfile(ctx context.Context, id int64) (*UserProfile, error)
	UpdateProfile(ctx context.Context, id int64, name, phoneNumber string, bio *string) (*UpdatedProfile, error)
	UpdateProfilePic(ctx context.Context, id int64, asset Asset) (*UpdatedAsset, error)
	UpdateResume(ctx context.Context, id int64, asset Asset) (*UpdatedAsset, error)
}

type SkillRepository interface {
	// AddToUser upserts the skill and links it in one transaction.
	// added is false when the user already had the skill.
	AddToUser(ctx context.Context, userID int64, name string) (added bool, err error)
	RemoveFromUser(ctx context.Context, userID int64, name string) (removed bool, err error)
}

type UserUsecase interface {
	ResolveIdentity(ctx context.Context, id int64) (*User, error)
	MyProfile(ctx context.Context) (*User, error)
	GetUserProfile(ctx context.Context, id int64) (*UserProfile, error)
	UpdateProfile(ctx context.Context, in ProfileUpdate) (*UpdatedProfile, error)
	UpdateProfilePic(ctx context.Context, file *UploadFile) (*UpdatedAsset, error)
	UpdateResume(ctx context.Context, file *UploadFile) (*UpdatedAsset, error)
	AddSkill(ctx context.Context, name string) (string, error)
	DeleteSkill(ctx context.Context, name string) (string, error)
}
