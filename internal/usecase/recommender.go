package usecase

import (
	"sort"
	"strings"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/internal/resume"
	"go-jobfinder-backend/pkg/textproc"
)

const topRecommendations = 10

// fitLabel buckets a 0-100 fit score.
func fitLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent Match"
	case score >= 60:
		return "Good Match"
	case score >= 40:
		return "Fair Match"
	case score >= 20:
		return "Below Average"
	default:
		return "Poor Match"
	}
}

// rankPostings scores each posting against the profile with TF-IDF cosine
// similarity and returns the top matches in descending score order. Ties
// keep the postings' incoming order.
func rankPostings(profile *domain.Profile, postings []domain.Posting) []domain.Recommendation {
	profileText := profile.MatchText()
	if strings.TrimSpace(profileText) == "" || len(postings) == 0 {
		return nil
	}

	docs := make([]string, len(postings))
	for i := range postings {
		docs[i] = postings[i].MatchText()
	}
	scores := textproc.SimilarityScores(profileText, docs)

	userSkills := make(map[string]bool)
	for _, s := range profile.SkillList() {
		userSkills[strings.ToLower(s)] = true
	}

	recs := make([]domain.Recommendation, len(postings))
	for i := range postings {
		fit := int(scores[i]*100 + 0.5)
		recs[i] = domain.Recommendation{
			Posting:         postings[i],
			SimilarityScore: scores[i],
			FitScore:        fit,
			FitLabel:        fitLabel(fit),
			SkillGaps:       skillGaps(userSkills, postings[i].Description),
		}
	}

	sort.SliceStable(recs, func(a, b int) bool {
		return recs[a].SimilarityScore > recs[b].SimilarityScore
	})
	if len(recs) > topRecommendations {
		recs = recs[:topRecommendations]
	}
	return recs
}

// skillGaps lists vocabulary skills the posting mentions that the user's
// profile lacks.
func skillGaps(userSkills map[string]bool, description string) []string {
	var gaps []string
	for _, skill := range resume.KnownSkills(description) {
		if !userSkills[strings.ToLower(skill)] {
			gaps = append(gaps, skill)
		}
	}
	return gaps
}
