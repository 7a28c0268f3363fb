package postgres

import (
	"context"
	"errors"
	"strconv"

	"go-jobfinder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postingRepo struct {
	db *pgxpool.Pool
}

func NewPostingRepository(db *pgxpool.Pool) domain.PostingRepository {
	return &postingRepo{db: db}
}

const postingColumns = `id, job_id, title, company, description, location,
	salary_min, salary_max, category, url, date_posted, cached_at`

// upsertPostingQuery keys on job_id: refetching a posting updates the cached
// row and refreshes cached_at instead of duplicating it.
const upsertPostingQuery = `INSERT INTO jobs (job_id, title, company, description, location,
                  salary_min, salary_max, category, url, date_posted, cached_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
              ON CONFLICT (job_id) DO UPDATE SET
                  title       = EXCLUDED.title,
                  company     = EXCLUDED.company,
                  description = EXCLUDED.description,
                  location    = EXCLUDED.location,
                  salary_min  = EXCLUDED.salary_min,
                  salary_max  = EXCLUDED.salary_max,
                  category    = EXCLUDED.category,
                  url         = EXCLUDED.url,
                  date_posted = EXCLUDED.date_posted,
                  cached_at   = NOW()`

func (r *postingRepo) UpsertBatch(ctx context.Context, postings []domain.Posting) error {
	if len(postings) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, p := range postings {
		batch.Queue(upsertPostingQuery,
			p.JobID, p.Title, p.Company, p.Description, p.Location,
			p.SalaryMin, p.SalaryMax, p.Category, p.URL, p.DatePosted,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range postings {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *postingRepo) GetByJobID(ctx context.Context, jobID string) (*domain.Posting, error) {
	query := `SELECT ` + postingColumns + ` FROM jobs WHERE job_id = $1`
	var p domain.Posting
	err := r.db.QueryRow(ctx, query, jobID).Scan(
		&p.ID, &p.JobID, &p.Title, &p.Company, &p.Description, &p.Location,
		&p.SalaryMin, &p.SalaryMax, &p.Category, &p.URL, &p.DatePosted, &p.CachedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postingRepo) FetchCached(ctx context.Context, filter domain.PostingFilter) ([]domain.Posting, error) {
	query := `SELECT ` + postingColumns + ` FROM jobs WHERE 1=1`
	args := []any{}

	if filter.TitleContains != "" {
		args = append(args, "%"+filter.TitleContains+"%")
		query += ` AND title ILIKE $` + strconv.Itoa(len(args))
	}
	if filter.LocationContains != "" {
		args = append(args, "%"+filter.LocationContains+"%")
		query += ` AND location ILIKE $` + strconv.Itoa(len(args))
	}

	limit := filter.Limit
	if limit < 1 {
		limit = 100
	}
	args = append(args, limit)
	query += ` ORDER BY cached_at DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []domain.Posting
	for rows.Next() {
		var p domain.Posting
		if err := rows.Scan(
			&p.ID, &p.JobID, &p.Title, &p.Company, &p.Description, &p.Location,
			&p.SalaryMin, &p.SalaryMax, &p.Category, &p.URL, &p.DatePosted, &p.CachedAt,
		); err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}
