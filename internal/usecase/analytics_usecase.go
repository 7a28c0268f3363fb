package usecase

import (
	"context"
	"sort"
	"strings"

	"go-jobfinder-backend/internal/domain"
	"go-jobfinder-backend/pkg/apperror"
)

const defaultAnalyticsLimit = 100

type analyticsUsecase struct {
	postingRepo domain.PostingRepository
}

func NewAnalyticsUsecase(postingRepo domain.PostingRepository) domain.AnalyticsUsecase {
	return &analyticsUsecase{postingRepo: postingRepo}
}

// Overview aggregates the most recently cached postings into market
// statistics and Chart.js-ready datasets.
func (u *analyticsUsecase) Overview(ctx context.Context, limit int) (*domain.AnalyticsOverview, error) {
	if limit <= 0 || limit > defaultAnalyticsLimit {
		limit = defaultAnalyticsLimit
	}

	postings, err := u.postingRepo.FetchCached(ctx, domain.PostingFilter{Limit: limit})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	overview := &domain.AnalyticsOverview{
		JobCount:             len(postings),
		SalaryStats:          salaryStats(postings),
		SkillDemand:          skillDemand(postings),
		LocationDistribution: countBy(postings, func(p *domain.Posting) string { return p.Location }),
		CategoryDistribution: countBy(postings, func(p *domain.Posting) string { return p.Category }),
	}
	overview.Charts = buildCharts(overview)
	return overview, nil
}

// salaryStats treats each posting's min and max bounds as separate
// observations; zero and missing bounds are skipped. The median is the
// upper of the two middle values for even-sized samples.
func salaryStats(postings []domain.Posting) domain.SalaryStats {
	var salaries []float64
	for i := range postings {
		if postings[i].SalaryMin > 0 {
			salaries = append(salaries, postings[i].SalaryMin)
		}
		if postings[i].SalaryMax > 0 {
			salaries = append(salaries, postings[i].SalaryMax)
		}
	}
	if len(salaries) == 0 {
		return domain.SalaryStats{}
	}

	sort.Float64s(salaries)
	var sum float64
	for _, s := range salaries {
		sum += s
	}
	return domain.SalaryStats{
		Average: sum / float64(len(salaries)),
		Min:     salaries[0],
		Max:     salaries[len(salaries)-1],
		Median:  salaries[len(salaries)/2],
	}
}

// skillDemandAliases maps a display skill name to the phrases that count as
// a mention of it in job descriptions.
var skillDemandAliases = []struct {
	name    string
	aliases []string
}{
	{"Python", []string{"python"}},
	{"Java", []string{"java"}},
	{"JavaScript", []string{"javascript", "js"}},
	{"React", []string{"react"}},
	{"SQL", []string{"sql", "mysql", "postgresql"}},
	{"AWS", []string{"aws", "amazon web services"}},
	{"Docker", []string{"docker"}},
	{"Machine Learning", []string{"machine learning", "ml", "tensorflow", "pytorch"}},
	{"Data Science", []string{"data science", "pandas", "numpy"}},
	{"Node.js", []string{"node", "nodejs"}},
	{"Angular", []string{"angular"}},
	{"Vue", []string{"vue"}},
	{"Django", []string{"django"}},
	{"Flask", []string{"flask"}},
	{"Spring", []string{"spring"}},
	{"MongoDB", []string{"mongodb"}},
	{"Git", []string{"git", "github"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
}

// skillDemand counts how many alias phrases of each skill appear across
// the combined description text. Skills with no mentions are omitted.
func skillDemand(postings []domain.Posting) map[string]int {
	var b strings.Builder
	for i := range postings {
		b.WriteString(strings.ToLower(postings[i].Description))
		b.WriteByte(' ')
	}
	combined := b.String()

	demand := make(map[string]int)
	for _, skill := range skillDemandAliases {
		count := 0
		for _, alias := range skill.aliases {
			if strings.Contains(combined, alias) {
				count++
			}
		}
		if count > 0 {
			demand[skill.name] = count
		}
	}
	return demand
}

func countBy(postings []domain.Posting, key func(*domain.Posting) string) map[string]int {
	counts := make(map[string]int)
	for i := range postings {
		k := key(&postings[i])
		if k == "" {
			k = "Unknown"
		}
		counts[k]++
	}
	return counts
}

var pieColors = []string{
	"rgba(255, 99, 132, 0.6)",
	"rgba(54, 162, 235, 0.6)",
	"rgba(255, 206, 86, 0.6)",
	"rgba(75, 192, 192, 0.6)",
	"rgba(153, 102, 255, 0.6)",
	"rgba(255, 159, 64, 0.6)",
	"rgba(199, 199, 199, 0.6)",
	"rgba(83, 102, 255, 0.6)",
}

// buildCharts turns the raw aggregates into Chart.js datasets: top 10
// skills as a bar chart, top 8 locations as a pie chart, top 8 categories
// as a bar chart.
func buildCharts(o *domain.AnalyticsOverview) map[string]domain.ChartData {
	charts := make(map[string]domain.ChartData)

	skills, skillCounts := topCounts(o.SkillDemand, 10)
	charts["skill_demand"] = domain.ChartData{
		Labels: skills,
		Datasets: []domain.ChartDataset{{
			Label:           "Job Count",
			Data:            skillCounts,
			BackgroundColor: "rgba(54, 162, 235, 0.6)",
		}},
	}

	locations, locationCounts := topCounts(o.LocationDistribution, 8)
	charts["location_distribution"] = domain.ChartData{
		Labels: locations,
		Datasets: []domain.ChartDataset{{
			Label:           "Jobs",
			Data:            locationCounts,
			BackgroundColor: pieColors,
		}},
	}

	categories, categoryCounts := topCounts(o.CategoryDistribution, 8)
	charts["category_distribution"] = domain.ChartData{
		Labels: categories,
		Datasets: []domain.ChartDataset{{
			Label:           "Jobs",
			Data:            categoryCounts,
			BackgroundColor: "rgba(75, 192, 192, 0.6)",
		}},
	}

	return charts
}

// topCounts orders a histogram by descending count (ties alphabetical) and
// keeps the first n entries.
func topCounts(counts map[string]int, n int) ([]string, []float64) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	values := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = float64(counts[k])
	}
	return keys, values
}
