package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, name, email, phone_number, role, bio, resume, resume_public_id,
	profile_pic, profile_pic_public_id, subscription, created_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row, u *domain.User, extra ...any) error {
	dest := []any{
		&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.Role, &u.Bio, &u.Resume, &u.ResumePublicID,
		&u.ProfilePic, &u.ProfilePicPublicID, &u.Subscription, &u.CreatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	var u domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, id), &u); err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// GetProfile returns the user with skill names; skills is empty, never NULL.
func (r *userRepo) GetProfile(ctx context.Context, id int64) (*domain.UserProfile, error) {
	query := `SELECT u.user_id, u.name, u.email, u.phone_number, u.role, u.bio, u.resume, u.resume_public_id,
			u.profile_pic, u.profile_pic_public_id, u.subscription, u.created_at,
			COALESCE(ARRAY_AGG(s.name ORDER BY s.name) FILTER (WHERE s.name IS NOT NULL), '{}') AS skills
		FROM users u
		LEFT JOIN user_skills us ON u.user_id = us.user_id
		LEFT JOIN skills s ON us.skill_id = s.skill_id
		WHERE u.user_id = $1
		GROUP BY u.user_id`
	var p domain.UserProfile
	if err := scanUser(r.db.QueryRow(ctx, query, id), &p.User, &p.Skills); err != nil {
		return nil, mapErr(err)
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return &p, nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id int64, name, phoneNumber string, bio *string) (*domain.UpdatedProfile, error) {
	query := `UPDATE users SET name = $2, phone_number = $3, bio = $4
		WHERE user_id = $1
		RETURNING user_id, name, email, phone_number, bio`
	var p domain.UpdatedProfile
	err := r.db.QueryRow(ctx, query, id, name, phoneNumber, bio).
		Scan(&p.ID, &p.Name, &p.Email, &p.PhoneNumber, &p.Bio)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

func (r *userRepo) UpdateProfilePic(ctx context.Context, id int64, asset domain.Asset) (*domain.UpdatedAsset, error) {
	query := `UPDATE users SET profile_pic = $2, profile_pic_public_id = $3
		WHERE user_id = $1
		RETURNING user_id, name, profile_pic`
	var a domain.UpdatedAsset
	if err := r.db.QueryRow(ctx, query, id, asset.URL, asset.PublicID).Scan(&a.ID, &a.Name, &a.ProfilePic); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}

func (r *userRepo) UpdateResume(ctx context.Context, id int64, asset domain.Asset) (*domain.UpdatedAsset, error) {
	query := `UPDATE users SET resume = $2, resume_public_id = $3
		WHERE user_id = $1
		RETURNING user_id, name, resume`
	var a domain.UpdatedAsset
	if err := r.db.QueryRow(ctx, query, id, asset.URL, asset.PublicID).Scan(&a.ID, &a.Name, &a.Resume); err != nil {
		return nil, mapErr(err)
	}
	return &a, nil
}
