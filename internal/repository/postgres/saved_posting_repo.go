package postgres

import (
	"context"

	"go-jobfinder-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedPostingRepo struct {
	db *pgxpool.Pool
}

func NewSavedPostingRepository(db *pgxpool.Pool) domain.SavedPostingRepository {
	return &savedPostingRepo{db: db}
}

// Save upserts on the (user_id, job_id) unique pair; saving an already
// saved job refreshes the stored similarity score.
func (r *savedPostingRepo) Save(ctx context.Context, saved *domain.SavedPosting) error {
	query := `INSERT INTO saved_jobs (user_id, job_id, similarity_score, saved_at)
              VALUES ($1, $2, $3, NOW())
              ON CONFLICT (user_id, job_id) DO UPDATE SET
                  similarity_score = EXCLUDED.similarity_score
              RETURNING id, saved_at`
	return r.db.QueryRow(ctx, query,
		saved.UserID, saved.JobID, saved.SimilarityScore,
	).Scan(&saved.ID, &saved.SavedAt)
}

func (r *savedPostingRepo) ListByUser(ctx context.Context, userID int64) ([]domain.SavedPostingWithJob, error) {
	query := `
		SELECT sj.id, sj.user_id, sj.job_id, sj.similarity_score, sj.saved_at,
		       j.id, j.job_id, j.title, j.company, j.description, j.location,
		       j.salary_min, j.salary_max, j.category, j.url, j.date_posted, j.cached_at
		FROM saved_jobs sj
		JOIN jobs j ON sj.job_id = j.job_id
		WHERE sj.user_id = $1
		ORDER BY sj.saved_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var saved []domain.SavedPostingWithJob
	for rows.Next() {
		var s domain.SavedPostingWithJob
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.JobID, &s.SimilarityScore, &s.SavedAt,
			&s.Posting.ID, &s.Posting.JobID, &s.Posting.Title, &s.Posting.Company,
			&s.Posting.Description, &s.Posting.Location, &s.Posting.SalaryMin,
			&s.Posting.SalaryMax, &s.Posting.Category, &s.Posting.URL,
			&s.Posting.DatePosted, &s.Posting.CachedAt,
		); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}

func (r *savedPostingRepo) Delete(ctx context.Context, userID int64, jobID string) error {
	result, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
