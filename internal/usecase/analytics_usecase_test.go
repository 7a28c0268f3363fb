package usecase_test

import (
	"context"
	"testing"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsOverview(t *testing.T) {
	t.Run("Should compute salary stats over min/max bounds separately", func(t *testing.T) {
		postings := new(MockPostingRepo)
		postings.On("FetchCached", mock.Anything, mock.Anything).Return([]domain.Posting{
			{JobID: "1", SalaryMin: 10, SalaryMax: 30, Location: "London", Category: "IT Jobs"},
			{JobID: "2", Location: "London", Category: "IT Jobs"}, // no salary data
			{JobID: "3", Location: "Leeds", Category: "Sales Jobs"},
		}, nil)

		uc := usecase.NewAnalyticsUsecase(postings)
		overview, err := uc.Overview(context.Background(), 100)
		require.NoError(t, err)

		// All postings count, only the two salary bounds contribute stats.
		assert.Equal(t, 3, overview.JobCount)
		assert.InDelta(t, 10.0, overview.SalaryStats.Min, 1e-9)
		assert.InDelta(t, 30.0, overview.SalaryStats.Max, 1e-9)
		assert.InDelta(t, 20.0, overview.SalaryStats.Average, 1e-9)
		assert.InDelta(t, 30.0, overview.SalaryStats.Median, 1e-9)
	})

	t.Run("Should zero salary stats when no posting has salary data", func(t *testing.T) {
		postings := new(MockPostingRepo)
		postings.On("FetchCached", mock.Anything, mock.Anything).Return([]domain.Posting{
			{JobID: "1", Location: "London"},
		}, nil)

		uc := usecase.NewAnalyticsUsecase(postings)
		overview, err := uc.Overview(context.Background(), 100)
		require.NoError(t, err)
		assert.Equal(t, domain.SalaryStats{}, overview.SalaryStats)
	})

	t.Run("Should count skills, locations and categories", func(t *testing.T) {
		postings := new(MockPostingRepo)
		postings.On("FetchCached", mock.Anything, mock.Anything).Return([]domain.Posting{
			{JobID: "1", Description: "python and docker shop using postgresql", Location: "London", Category: "IT Jobs"},
			{JobID: "2", Description: "react frontend with javascript", Location: "London", Category: "IT Jobs"},
			{JobID: "3", Description: "general admin duties", Location: "", Category: ""},
		}, nil)

		uc := usecase.NewAnalyticsUsecase(postings)
		overview, err := uc.Overview(context.Background(), 100)
		require.NoError(t, err)

		assert.Equal(t, 1, overview.SkillDemand["Python"])
		assert.Equal(t, 1, overview.SkillDemand["Docker"])
		assert.Equal(t, 1, overview.SkillDemand["React"])
		assert.NotContains(t, overview.SkillDemand, "Kubernetes")

		assert.Equal(t, 2, overview.LocationDistribution["London"])
		assert.Equal(t, 1, overview.LocationDistribution["Unknown"])
		assert.Equal(t, 2, overview.CategoryDistribution["IT Jobs"])
	})

	t.Run("Should emit Chart.js-shaped datasets", func(t *testing.T) {
		postings := new(MockPostingRepo)
		postings.On("FetchCached", mock.Anything, mock.Anything).Return([]domain.Posting{
			{JobID: "1", Description: "python", Location: "London", Category: "IT Jobs"},
		}, nil)

		uc := usecase.NewAnalyticsUsecase(postings)
		overview, err := uc.Overview(context.Background(), 100)
		require.NoError(t, err)

		require.Contains(t, overview.Charts, "skill_demand")
		require.Contains(t, overview.Charts, "location_distribution")
		require.Contains(t, overview.Charts, "category_distribution")

		chart := overview.Charts["skill_demand"]
		require.Len(t, chart.Datasets, 1)
		assert.Equal(t, "Job Count", chart.Datasets[0].Label)
		assert.Equal(t, len(chart.Labels), len(chart.Datasets[0].Data))
	})
}
