package domain

import "context"

// Recommendation pairs a posting with its similarity score against the
// user's profile and the skills the posting asks for that the profile lacks.
type Recommendation struct {
	Posting         Posting  `json:"job"`
	SimilarityScore float64  `json:"similarity_score"`
	FitScore        int      `json:"fit_score"` // 0-100
	FitLabel        string   `json:"fit_label"`
	SkillGaps       []string `json:"skill_gaps,omitempty"`
}

// SearchResult is what the job search pipeline returns to the handler.
type SearchResult struct {
	Jobs            []Posting        `json:"jobs"`
	Recommendations []Recommendation `json:"recommendations"`
	Stale           bool             `json:"stale"`
	Warning         string           `json:"warning,omitempty"`
}

type SearchUsecase interface {
	// SearchJobs fetches postings for the query (live API with cache
	// fallback), caches them, records the search and ranks them against
	// the user's profile.
	SearchJobs(ctx context.Context, userID int64, query, country string, maxResults int) (*SearchResult, error)
	ListCachedJobs(ctx context.Context, filter PostingFilter) ([]Posting, error)
	SearchHistory(ctx context.Context, userID int64, limit int) ([]SearchRecord, error)
}

// ---------------------------------------------------------------------------
// ATS scoring
// ---------------------------------------------------------------------------

// ATSBreakdownPart is one weighted component of the overall ATS score.
type ATSBreakdownPart struct {
	Score   float64  `json:"score"` // 0-100
	Matched []string `json:"matched,omitempty"`
	Missing []string `json:"missing,omitempty"`
	Details string   `json:"details,omitempty"`
}

// ATSScore is the full compatibility report for one posting.
type ATSScore struct {
	JobID          string             `json:"job_id"`
	JobTitle       string             `json:"job_title"`
	Company        string             `json:"company"`
	Location       string             `json:"location"`
	URL            string             `json:"url"`
	SalaryMin      float64            `json:"salary_min"`
	SalaryMax      float64            `json:"salary_max"`
	OverallScore   float64            `json:"overall_score"` // 0-100
	Interpretation string             `json:"interpretation"`
	Breakdown      map[string]ATSBreakdownPart `json:"breakdown"`
	Suggestions    []string           `json:"suggestions,omitempty"`
}

// ATSSummary aggregates a batch of ATS scores.
type ATSSummary struct {
	Average        float64 `json:"average"`
	Highest        float64 `json:"highest"`
	Lowest         float64 `json:"lowest"`
	TotalJobs      int     `json:"total_jobs"`
	ExcellentCount int     `json:"excellent_count"` // >= 80
	GoodCount      int     `json:"good_count"`      // 60-79
	FairCount      int     `json:"fair_count"`      // 40-59
	PoorCount      int     `json:"poor_count"`      // < 40
}

// ATSReport is the scored batch plus its summary; Matches holds the top
// scores in descending order.
type ATSReport struct {
	Matches []ATSScore  `json:"matches"`
	Summary ATSSummary  `json:"summary"`
	Profile *Profile    `json:"profile"`
}

type ATSUsecase interface {
	// ScoreJobs scores the user's profile against recently cached postings.
	ScoreJobs(ctx context.Context, userID int64, limit int) (*ATSReport, error)
	// ExportReport renders the report as a spreadsheet. Returns file bytes
	// and a suggested filename.
	ExportReport(ctx context.Context, userID int64, limit int) ([]byte, string, error)
}
