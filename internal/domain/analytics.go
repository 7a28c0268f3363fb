package domain

import "context"

// SalaryStats are descriptive statistics over posting salary bounds.
// Postings without any salary are excluded from the figures but still
// contribute to the overview count.
type SalaryStats struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  float64 `json:"median"`
}

// ChartDataset mirrors the Chart.js dataset shape consumed by the frontend.
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor any       `json:"backgroundColor,omitempty"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// AnalyticsOverview is the aggregate view over a batch of cached postings.
type AnalyticsOverview struct {
	JobCount             int              `json:"job_count"`
	SalaryStats          SalaryStats      `json:"salary_stats"`
	SkillDemand          map[string]int   `json:"skill_demand"`
	LocationDistribution map[string]int   `json:"location_distribution"`
	CategoryDistribution map[string]int   `json:"category_distribution"`
	Charts               map[string]ChartData `json:"charts"`
}

type AnalyticsUsecase interface {
	Overview(ctx context.Context, limit int) (*AnalyticsOverview, error)
}
