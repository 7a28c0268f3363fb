package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpsertPostingQuery(t *testing.T) {
	t.Run("Should update on job_id conflict instead of duplicating", func(t *testing.T) {
		assert.Contains(t, upsertPostingQuery, "ON CONFLICT (job_id) DO UPDATE", "refetched postings must update the cached row")
	})

	t.Run("Should refresh cached_at on every write", func(t *testing.T) {
		// Both the insert values and the conflict branch stamp NOW().
		assert.Equal(t, 2, strings.Count(upsertPostingQuery, "NOW()"))
		assert.Contains(t, upsertPostingQuery, "cached_at   = NOW()")
	})

	t.Run("Should carry the fetched values into the updated row", func(t *testing.T) {
		for _, column := range []string{
			"title", "company", "description", "location",
			"salary_min", "salary_max", "category", "url", "date_posted",
		} {
			assert.Contains(t, upsertPostingQuery, "EXCLUDED."+column)
		}
	})

	t.Run("Should bind a placeholder for every inserted column except cached_at", func(t *testing.T) {
		assert.Equal(t, 10, strings.Count(upsertPostingQuery, "$"))
	})
}
