package jobsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go-jobfinder-backend/config"
	"go-jobfinder-backend/internal/domain"
)

const maxResultsPerPage = 50

// Client fetches live job postings for a keyword/country query.
type Client interface {
	Search(ctx context.Context, query, country string, maxResults int) ([]domain.Posting, error)
}

// adzunaClient talks to the Adzuna public search API
// (GET {base}/{country}/search/{page}?app_id=...&app_key=...&what=...).
type adzunaClient struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	appKey     string
}

func NewAdzunaClient(cfg *config.Config) Client {
	return &adzunaClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    cfg.AdzunaBaseURL,
		appID:      cfg.AdzunaAppID,
		appKey:     cfg.AdzunaAppKey,
	}
}

// adzunaResult is a single posting in the Adzuna response payload. The ID
// arrives as either a string or a number depending on endpoint version.
type adzunaResult struct {
	ID          json.Number `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	SalaryMin   float64     `json:"salary_min"`
	SalaryMax   float64     `json:"salary_max"`
	RedirectURL string      `json:"redirect_url"`
	Created     string      `json:"created"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
	Category struct {
		Label string `json:"label"`
	} `json:"category"`
}

type adzunaResponse struct {
	Results []adzunaResult `json:"results"`
}

func (c *adzunaClient) Search(ctx context.Context, query, country string, maxResults int) ([]domain.Posting, error) {
	if c.appID == "" || c.appKey == "" {
		return nil, fmt.Errorf("adzuna: credentials not configured")
	}
	if maxResults < 1 || maxResults > maxResultsPerPage {
		maxResults = maxResultsPerPage
	}
	if country == "" {
		country = "us"
	}

	endpoint := fmt.Sprintf("%s/%s/search/1", c.baseURL, url.PathEscape(country))
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("results_per_page", strconv.Itoa(maxResults))
	params.Set("sort_by", "date")
	params.Set("content-type", "application/json")
	if query != "" {
		params.Set("what", query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("adzuna: unexpected status %d: %s", resp.StatusCode, body)
	}

	var payload adzunaResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("adzuna: decode response: %w", err)
	}

	postings := make([]domain.Posting, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.ID.String() == "" {
			continue
		}
		postings = append(postings, domain.Posting{
			JobID:       r.ID.String(),
			Title:       r.Title,
			Company:     companyName(r.Company.DisplayName),
			Description: r.Description,
			Location:    r.Location.DisplayName,
			SalaryMin:   r.SalaryMin,
			SalaryMax:   r.SalaryMax,
			Category:    r.Category.Label,
			URL:         r.RedirectURL,
			DatePosted:  parseCreated(r.Created),
		})
	}
	return postings, nil
}

func companyName(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}

// parseCreated parses Adzuna's created timestamp, keeping only the date,
// nil when absent or malformed.
func parseCreated(created string) *time.Time {
	if len(created) < 10 {
		return nil
	}
	t, err := time.Parse("2006-01-02", created[:10])
	if err != nil {
		return nil
	}
	return &t
}
