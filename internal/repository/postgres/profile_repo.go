package postgres

import (
	"context"
	"errors"

	"go-jobfinder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	query := `SELECT id, user_id, education, skills, experience, location, resume_path, updated_at
              FROM profiles WHERE user_id = $1`
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Education, &p.Skills, &p.Experience, &p.Location,
		&p.ResumePath, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Upsert keeps the one-profile-per-user invariant: the unique index on
// user_id turns a second insert into an update.
func (r *profileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, education, skills, experience, location, resume_path, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              ON CONFLICT (user_id) DO UPDATE SET
                  education   = EXCLUDED.education,
                  skills      = EXCLUDED.skills,
                  experience  = EXCLUDED.experience,
                  location    = EXCLUDED.location,
                  resume_path = COALESCE(EXCLUDED.resume_path, profiles.resume_path),
                  updated_at  = EXCLUDED.updated_at
              RETURNING id`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.Education, profile.Skills, profile.Experience,
		profile.Location, profile.ResumePath, profile.UpdatedAt,
	).Scan(&profile.ID)
}
