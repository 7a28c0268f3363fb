package postgres

import (
	"context"

	"go-jobfinder-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type searchHistoryRepo struct {
	db *pgxpool.Pool
}

func NewSearchHistoryRepository(db *pgxpool.Pool) domain.SearchHistoryRepository {
	return &searchHistoryRepo{db: db}
}

// Add appends to the search log. Rows are never updated; they disappear
// only when the owning user is deleted (cascade).
func (r *searchHistoryRepo) Add(ctx context.Context, record *domain.SearchRecord) error {
	query := `INSERT INTO search_history (user_id, search_query, location, results_count, created_at)
              VALUES ($1, $2, $3, $4, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		record.UserID, record.Query, record.Location, record.ResultCount,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *searchHistoryRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.SearchRecord, error) {
	if limit < 1 {
		limit = 50
	}
	query := `SELECT id, user_id, search_query, location, results_count, created_at
              FROM search_history WHERE user_id = $1
              ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.SearchRecord
	for rows.Next() {
		var rec domain.SearchRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Query, &rec.Location, &rec.ResultCount, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
