package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestATSScoreJobs(t *testing.T) {
	profile := &domain.Profile{
		UserID:     1,
		Skills:     "Python, Sql, Docker",
		Education:  "Bachelor of Science in Computer Science",
		Experience: "5 years experience developed data pipelines and managed deployments",
	}
	strongPosting := domain.Posting{
		JobID:       "2001",
		Title:       "Python Data Engineer",
		Company:     "Acme",
		Description: "We need python and sql experience with docker. Bachelor degree required. 3 years experience developed pipelines.",
		Category:    "IT Jobs",
	}
	weakPosting := domain.Posting{
		JobID:       "2002",
		Title:       "Forklift Operator",
		Company:     "Warehouse Co",
		Description: "Operate forklifts in a busy depot. Physical stamina required.",
		Category:    "Logistics",
	}

	t.Run("Should score every posting within bounds and sort descending", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, int64(1)).Return(profile, nil)
		postings := new(MockPostingRepo)
		postings.On("FetchCached", mock.Anything, mock.Anything).
			Return([]domain.Posting{weakPosting, strongPosting}, nil)

		uc := usecase.NewATSUsecase(profiles, postings)
		report, err := uc.ScoreJobs(context.Background(), 1, 50)
		require.NoError(t, err)

		require.Len(t, report.Matches, 2)
		for _, m := range report.Matches {
			assert.GreaterOrEqual(t, m.OverallScore, 0.0)
			assert.LessOrEqual(t, m.OverallScore, 100.0)
			assert.NotEmpty(t, m.Interpretation)
			assert.Contains(t, m.Breakdown, "keyword_match")
			assert.Contains(t, m.Breakdown, "skills_match")
			assert.Contains(t, m.Breakdown, "experience_match")
			assert.Contains(t, m.Breakdown, "education_match")
		}
		assert.Equal(t, "2001", report.Matches[0].JobID)
		assert.GreaterOrEqual(t, report.Matches[0].OverallScore, report.Matches[1].OverallScore)

		summary := report.Summary
		assert.Equal(t, 2, summary.TotalJobs)
		assert.Equal(t, report.Matches[0].OverallScore, summary.Highest)
		assert.Equal(t, report.Matches[1].OverallScore, summary.Lowest)
		assert.Equal(t, 2, summary.ExcellentCount+summary.GoodCount+summary.FairCount+summary.PoorCount)
	})

	t.Run("Should require a filled-in profile", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, int64(1)).
			Return(&domain.Profile{UserID: 1, Skills: "  "}, nil)

		uc := usecase.NewATSUsecase(profiles, new(MockPostingRepo))
		_, err := uc.ScoreJobs(context.Background(), 1, 50)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "complete your profile")
	})

	t.Run("Should require cached jobs", func(t *testing.T) {
		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, int64(1)).Return(profile, nil)
		postings := new(MockPostingRepo)
		postings.On("FetchCached", mock.Anything, mock.Anything).Return([]domain.Posting{}, nil)

		uc := usecase.NewATSUsecase(profiles, postings)
		_, err := uc.ScoreJobs(context.Background(), 1, 50)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Search for jobs first")
	})

	t.Run("Should rank keyword gaps by how often the posting repeats them", func(t *testing.T) {
		posting := domain.Posting{
			JobID:       "2003",
			Title:       "Golang Developer",
			Company:     "Acme",
			Description: "kafka kafka kafka redis redis terraform golang",
		}

		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, int64(1)).
			Return(&domain.Profile{UserID: 1, Skills: "Golang"}, nil)
		postings := new(MockPostingRepo)
		postings.On("FetchCached", mock.Anything, mock.Anything).
			Return([]domain.Posting{posting}, nil)

		uc := usecase.NewATSUsecase(profiles, postings)
		report, err := uc.ScoreJobs(context.Background(), 1, 50)
		require.NoError(t, err)

		keywords := report.Matches[0].Breakdown["keyword_match"]
		// 1 of 5 distinct posting keywords covered.
		assert.InDelta(t, 20.0, keywords.Score, 0.001)
		assert.Equal(t, []string{"golang"}, keywords.Matched)
		assert.Equal(t, []string{"kafka", "redis", "developer", "terraform"}, keywords.Missing)
	})

	t.Run("Should suggest missing skills", func(t *testing.T) {
		k8sPosting := strongPosting
		k8sPosting.Description += " kubernetes and aws required"

		profiles := new(MockProfileRepo)
		profiles.On("GetByUserID", mock.Anything, int64(1)).Return(profile, nil)
		postings := new(MockPostingRepo)
		postings.On("FetchCached", mock.Anything, mock.Anything).
			Return([]domain.Posting{k8sPosting}, nil)

		uc := usecase.NewATSUsecase(profiles, postings)
		report, err := uc.ScoreJobs(context.Background(), 1, 50)
		require.NoError(t, err)

		missing := report.Matches[0].Breakdown["skills_match"].Missing
		assert.Contains(t, missing, "kubernetes")
		assert.Contains(t, missing, "aws")
		assert.NotContains(t, missing, "python")
	})
}

func TestATSExportReport(t *testing.T) {
	profiles := new(MockProfileRepo)
	profiles.On("GetByUserID", mock.Anything, int64(1)).Return(&domain.Profile{
		UserID: 1,
		Skills: "Python",
	}, nil)
	postings := new(MockPostingRepo)
	postings.On("FetchCached", mock.Anything, mock.Anything).Return([]domain.Posting{
		{JobID: "2001", Title: "Python Developer", Company: "Acme", Description: "python role"},
	}, nil)

	uc := usecase.NewATSUsecase(profiles, postings)
	data, filename, err := uc.ExportReport(context.Background(), 1, 50)
	require.NoError(t, err)
	assert.Regexp(t, `^ats_report_\d{8}_\d{6}\.xlsx$`, filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("ATS Scores", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Python Developer", title)
}
