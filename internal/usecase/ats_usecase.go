package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

const (
	defaultATSLimit = 50
	topATSMatches   = 10
)

type atsUsecase struct {
	profileRepo domain.ProfileRepository
	postingRepo domain.PostingRepository
}

func NewATSUsecase(profileRepo domain.ProfileRepository, postingRepo domain.PostingRepository) domain.ATSUsecase {
	return &atsUsecase{
		profileRepo: profileRepo,
		postingRepo: postingRepo,
	}
}

// ScoreJobs evaluates the user's profile against the most recently cached
// postings and returns the top matches with summary statistics.
func (u *atsUsecase) ScoreJobs(ctx context.Context, userID int64, limit int) (*domain.ATSReport, error) {
	if limit <= 0 || limit > defaultATSLimit {
		limit = defaultATSLimit
	}

	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Please complete your profile first to get an ATS score")
		}
		return nil, apperror.Internal(err)
	}
	if strings.TrimSpace(profile.Skills) == "" {
		return nil, apperror.BadRequest("Please complete your profile first to get an ATS score")
	}

	postings, err := u.postingRepo.FetchCached(ctx, domain.PostingFilter{Limit: limit})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(postings) == 0 {
		return nil, apperror.NotFound("No jobs available for analysis. Search for jobs first.")
	}

	scores := make([]domain.ATSScore, len(postings))
	for i := range postings {
		scores[i] = scorePosting(profile, &postings[i])
	}
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].OverallScore > scores[b].OverallScore
	})

	summary := summarize(scores)

	if len(scores) > topATSMatches {
		scores = scores[:topATSMatches]
	}
	return &domain.ATSReport{
		Matches: scores,
		Summary: summary,
		Profile: profile,
	}, nil
}

func summarize(scores []domain.ATSScore) domain.ATSSummary {
	summary := domain.ATSSummary{TotalJobs: len(scores)}
	if len(scores) == 0 {
		return summary
	}

	var sum float64
	summary.Highest = scores[0].OverallScore
	summary.Lowest = scores[0].OverallScore
	for _, s := range scores {
		sum += s.OverallScore
		if s.OverallScore > summary.Highest {
			summary.Highest = s.OverallScore
		}
		if s.OverallScore < summary.Lowest {
			summary.Lowest = s.OverallScore
		}
		switch {
		case s.OverallScore >= 80:
			summary.ExcellentCount++
		case s.OverallScore >= 60:
			summary.GoodCount++
		case s.OverallScore >= 40:
			summary.FairCount++
		default:
			summary.PoorCount++
		}
	}
	summary.Average = round1(sum / float64(len(scores)))
	return summary
}

var atsExportHeaders = []string{
	"JOB TITLE", "COMPANY", "LOCATION", "OVERALL SCORE", "INTERPRETATION",
	"KEYWORDS", "SKILLS", "EXPERIENCE", "EDUCATION", "SALARY MIN", "SALARY MAX", "URL",
}

// ExportReport renders the scored batch as an Excel workbook.
func (u *atsUsecase) ExportReport(ctx context.Context, userID int64, limit int) ([]byte, string, error) {
	report, err := u.ScoreJobs(ctx, userID, limit)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheetName := "ATS Scores"
	f.SetSheetName("Sheet1", sheetName)

	for i, header := range atsExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(atsExportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, match := range report.Matches {
		values := []interface{}{
			match.JobTitle,
			match.Company,
			match.Location,
			match.OverallScore,
			match.Interpretation,
			match.Breakdown["keyword_match"].Score,
			match.Breakdown["skills_match"].Score,
			match.Breakdown["experience_match"].Score,
			match.Breakdown["education_match"].Score,
			match.SalaryMin,
			match.SalaryMax,
			match.URL,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range atsExportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("failed to write Excel file: %w", err))
	}

	filename := fmt.Sprintf("ats_report_%s.xlsx", time.Now().Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
