package domain

import (
	"context"
	"strings"
	"time"
)

// Posting is a job advert from the external job API, cached in the jobs
// table. JobID is the provider's identifier and the unique key: refetching
// the same JobID updates the row instead of duplicating it.
type Posting struct {
	ID          int64      `json:"-"`
	JobID       string     `json:"job_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	SalaryMin   float64    `json:"salary_min"`
	SalaryMax   float64    `json:"salary_max"`
	Category    string     `json:"category"`
	URL         string     `json:"url"`
	DatePosted  *time.Time `json:"date_posted,omitempty"`
	CachedAt    time.Time  `json:"cached_at"`
}

// MatchText combines the text fields the ranker scores against.
func (p *Posting) MatchText() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.Title, p.Description, p.Category, p.Company} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// SavedPosting links a user to a cached posting with the similarity score
// computed at save time. At most one row per (user, job) pair.
type SavedPosting struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	JobID           string    `json:"job_id"`
	SimilarityScore float64   `json:"similarity_score"`
	SavedAt         time.Time `json:"saved_at"`
}

// SavedPostingWithJob joins the saved row with the cached posting details.
type SavedPostingWithJob struct {
	SavedPosting
	Posting       Posting `json:"job"`
	FitPercentage float64 `json:"fit_percentage"`
}

// SearchRecord is one row of the append-only search log.
type SearchRecord struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Query       string    `json:"query"`
	Location    string    `json:"location"`
	ResultCount int       `json:"result_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// PostingFilter narrows cached-posting lookups.
type PostingFilter struct {
	TitleContains    string
	LocationContains string
	Limit            int
}

type PostingRepository interface {
	// UpsertBatch inserts postings, updating existing rows by job_id and
	// refreshing cached_at.
	UpsertBatch(ctx context.Context, postings []Posting) error
	GetByJobID(ctx context.Context, jobID string) (*Posting, error)
	// FetchCached returns cached postings newest-first, optionally filtered.
	FetchCached(ctx context.Context, filter PostingFilter) ([]Posting, error)
}

type SavedPostingRepository interface {
	// Save upserts the (user, job) pair, updating the score on conflict.
	Save(ctx context.Context, saved *SavedPosting) error
	ListByUser(ctx context.Context, userID int64) ([]SavedPostingWithJob, error)
	Delete(ctx context.Context, userID int64, jobID string) error
}

type SearchHistoryRepository interface {
	Add(ctx context.Context, record *SearchRecord) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]SearchRecord, error)
}

type SavedPostingUsecase interface {
	SaveJob(ctx context.Context, userID int64, jobID string, score float64) error
	ListSavedJobs(ctx context.Context, userID int64) ([]SavedPostingWithJob, error)
	UnsaveJob(ctx context.Context, userID int64, jobID string) error
}
