package usecase

import (
	"fmt"
	"math"
	"strings"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/pkg/textproc"
)

// Overall score weights: keywords 35%, skills 35%, experience 20%,
// education 10%.
const (
	weightKeywords   = 0.35
	weightSkills     = 0.35
	weightExperience = 0.20
	weightEducation  = 0.10
)

// commonSkills are tech skills scanned for in job descriptions to derive a
// posting's skill requirements.
var commonSkills = []string{
	"python", "java", "javascript", "react", "angular", "vue", "node",
	"sql", "mysql", "postgresql", "mongodb", "aws", "azure", "docker",
	"kubernetes", "git", "agile", "scrum", "machine learning", "ai",
	"data science", "html", "css", "typescript", "c++", "c#", "php",
}

var experienceSignals = []string{
	"year", "years", "experience", "worked", "developed", "managed", "led",
}

// educationLevels ranks degrees; higher outranks lower when comparing the
// profile against a posting's stated requirement.
var educationLevels = []struct {
	degree string
	level  int
}{
	{"phd", 100},
	{"doctorate", 100},
	{"master", 80},
	{"msc", 80},
	{"mba", 80},
	{"bachelor", 60},
	{"bsc", 60},
	{"associate", 40},
	{"diploma", 30},
	{"high school", 20},
}

// scoreKeywordMatch measures how much of the posting's vocabulary the
// resume covers: |matched| / |posting keywords| * 100.
func scoreKeywordMatch(resumeText, jobText string) domain.ATSBreakdownPart {
	pct, matched, missing := textproc.OverlapScore(textproc.KeywordSet(resumeText), jobText)
	return domain.ATSBreakdownPart{
		Score:   pct,
		Matched: capList(matched, 15),
		Missing: capList(missing, 10),
	}
}

// scoreSkillsMatch checks the user's skills against the posting text, and
// the posting's required tech skills against the user's.
func scoreSkillsMatch(userSkills []string, jobText string) domain.ATSBreakdownPart {
	jobLower := strings.ToLower(jobText)

	userSet := make(map[string]bool, len(userSkills))
	var matched []string
	for _, s := range userSkills {
		lower := strings.ToLower(strings.TrimSpace(s))
		if lower == "" {
			continue
		}
		userSet[lower] = true
		if strings.Contains(jobLower, lower) {
			matched = append(matched, lower)
		}
	}

	var required, missing []string
	for _, skill := range commonSkills {
		if !strings.Contains(jobLower, skill) {
			continue
		}
		required = append(required, skill)
		if !userSet[skill] {
			missing = append(missing, skill)
		}
	}

	var pct float64
	switch {
	case len(required) > 0:
		pct = float64(len(matched)) / float64(len(required)) * 100
	case len(matched) > 0:
		pct = 100
	default:
		pct = 50
	}
	if pct > 100 {
		pct = 100
	}

	return domain.ATSBreakdownPart{
		Score:   pct,
		Matched: capList(matched, 10),
		Missing: capList(missing, 10),
	}
}

// scoreExperienceMatch compares the experience sections via cosine
// similarity when both sides actually talk about experience; otherwise a
// neutral 50.
func scoreExperienceMatch(userExperience, jobText string) domain.ATSBreakdownPart {
	if userExperience == "" || jobText == "" {
		return domain.ATSBreakdownPart{Score: 50, Details: "Unable to assess experience match"}
	}

	jobLower := strings.ToLower(jobText)
	expLower := strings.ToLower(userExperience)
	score := 50.0
	if containsAny(jobLower, experienceSignals) && containsAny(expLower, experienceSignals) {
		sims := textproc.SimilarityScores(expLower, []string{jobLower})
		score = sims[0] * 100
	}

	details := "Needs improvement"
	if score >= 70 {
		details = "Good match"
	} else if score >= 50 {
		details = "Moderate match"
	}
	return domain.ATSBreakdownPart{Score: score, Details: details}
}

// scoreEducationMatch compares the highest degree in the profile against
// the highest one the posting mentions.
func scoreEducationMatch(userEducation, jobText string) domain.ATSBreakdownPart {
	if userEducation == "" || jobText == "" {
		return domain.ATSBreakdownPart{Score: 50, Details: "No education requirements specified"}
	}

	userLevel, userDegree := highestDegree(strings.ToLower(userEducation))
	requiredLevel, requiredDegree := highestDegree(strings.ToLower(jobText))

	switch {
	case requiredLevel == 0:
		return domain.ATSBreakdownPart{Score: 80, Details: "No specific education requirement"}
	case userLevel >= requiredLevel:
		return domain.ATSBreakdownPart{Score: 100, Details: fmt.Sprintf("Meets requirement (%s)", userDegree)}
	case userLevel > 0:
		return domain.ATSBreakdownPart{
			Score:   float64(userLevel) / float64(requiredLevel) * 100,
			Details: fmt.Sprintf("Partial match (%s vs %s required)", userDegree, requiredDegree),
		}
	default:
		return domain.ATSBreakdownPart{Score: 40, Details: "Education information needed"}
	}
}

func highestDegree(text string) (int, string) {
	best, name := 0, ""
	for _, e := range educationLevels {
		if strings.Contains(text, e.degree) && e.level > best {
			best = e.level
			name = e.degree
		}
	}
	return best, name
}

// scorePosting runs the full weighted ATS evaluation of a profile against
// one posting.
func scorePosting(profile *domain.Profile, posting *domain.Posting) domain.ATSScore {
	resumeText := strings.TrimSpace(strings.Join([]string{profile.Skills, profile.Education, profile.Experience}, " "))
	jobText := strings.TrimSpace(strings.Join([]string{posting.Title, posting.Description, posting.Category}, " "))

	keywords := scoreKeywordMatch(resumeText, jobText)
	skills := scoreSkillsMatch(profile.SkillList(), jobText)
	experience := scoreExperienceMatch(profile.Experience, jobText)
	education := scoreEducationMatch(profile.Education, jobText)

	overall := keywords.Score*weightKeywords +
		skills.Score*weightSkills +
		experience.Score*weightExperience +
		education.Score*weightEducation

	var suggestions []string
	if len(keywords.Missing) > 0 {
		suggestions = append(suggestions, "Add these keywords: "+strings.Join(capList(keywords.Missing, 5), ", "))
	}
	if len(skills.Missing) > 0 {
		suggestions = append(suggestions, "Consider learning: "+strings.Join(capList(skills.Missing, 3), ", "))
	}
	if experience.Score < 60 {
		suggestions = append(suggestions, "Expand your experience section with quantifiable achievements")
	}
	if keywords.Score < 70 {
		suggestions = append(suggestions, "Tailor your resume to match job description keywords")
	}

	return domain.ATSScore{
		JobID:          posting.JobID,
		JobTitle:       posting.Title,
		Company:        posting.Company,
		Location:       posting.Location,
		URL:            posting.URL,
		SalaryMin:      posting.SalaryMin,
		SalaryMax:      posting.SalaryMax,
		OverallScore:   round1(overall),
		Interpretation: interpretScore(overall),
		Breakdown: map[string]domain.ATSBreakdownPart{
			"keyword_match":    keywords,
			"skills_match":     skills,
			"experience_match": experience,
			"education_match":  education,
		},
		Suggestions: suggestions,
	}
}

func interpretScore(score float64) string {
	switch {
	case score >= 80:
		return "Excellent Match"
	case score >= 60:
		return "Good Match"
	case score >= 40:
		return "Fair Match"
	default:
		return "Needs Improvement"
	}
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func capList(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
