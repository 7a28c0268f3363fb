package jobsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-jobfinder-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"results": [
		{
			"id": 4821931337,
			"title": "Senior Go Developer",
			"description": "Build backend services in Go with Postgres.",
			"salary_min": 90000,
			"salary_max": 120000,
			"redirect_url": "https://example.com/jobs/4821931337",
			"created": "2024-11-02T08:15:00Z",
			"company": {"display_name": "Acme Corp"},
			"location": {"display_name": "Austin, TX"},
			"category": {"label": "IT Jobs"}
		},
		{
			"id": "4821931400",
			"title": "Data Analyst",
			"description": "SQL and dashboards.",
			"company": {},
			"location": {"display_name": "Remote"},
			"category": {"label": "IT Jobs"}
		}
	]
}`

func newTestClient(serverURL string) Client {
	return NewAdzunaClient(&config.Config{
		AdzunaAppID:   "test-id",
		AdzunaAppKey:  "test-key",
		AdzunaBaseURL: serverURL,
	})
}

func TestAdzunaSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/us/search/1", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-id", q.Get("app_id"))
		assert.Equal(t, "test-key", q.Get("app_key"))
		assert.Equal(t, "golang", q.Get("what"))
		assert.Equal(t, "25", q.Get("results_per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	postings, err := newTestClient(srv.URL).Search(context.Background(), "golang", "us", 25)
	require.NoError(t, err)
	require.Len(t, postings, 2)

	first := postings[0]
	assert.Equal(t, "4821931337", first.JobID)
	assert.Equal(t, "Senior Go Developer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Austin, TX", first.Location)
	assert.Equal(t, 90000.0, first.SalaryMin)
	require.NotNil(t, first.DatePosted)
	assert.Equal(t, time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC), *first.DatePosted)

	// Missing company falls back to Unknown; missing created stays nil.
	second := postings[1]
	assert.Equal(t, "Unknown", second.Company)
	assert.Nil(t, second.DatePosted)
}

func TestAdzunaSearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Search(context.Background(), "golang", "us", 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 429")
}

func TestAdzunaSearchWithoutCredentials(t *testing.T) {
	client := NewAdzunaClient(&config.Config{AdzunaBaseURL: "http://localhost:0"})
	_, err := client.Search(context.Background(), "golang", "us", 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "credentials not configured")
}
