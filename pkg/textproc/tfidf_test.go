package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityScoresBounds(t *testing.T) {
	profile := "golang postgres docker kubernetes backend engineer"
	docs := []string{
		"backend engineer golang postgres",
		"frontend react typescript css",
		"devops docker kubernetes terraform aws",
		"",
	}
	scores := SimilarityScores(profile, docs)
	assert.Len(t, scores, len(docs))
	for i, s := range scores {
		assert.GreaterOrEqual(t, s, 0.0, "doc %d", i)
		assert.LessOrEqual(t, s, 1.0, "doc %d", i)
	}
}

func TestSimilarityScoresSelfMatch(t *testing.T) {
	text := "senior golang developer with postgres and redis experience"
	scores := SimilarityScores(text, []string{text})
	assert.InDelta(t, 1.0, scores[0], 1e-9)
}

func TestSimilarityScoresDisjointVocabulary(t *testing.T) {
	scores := SimilarityScores("golang postgres backend", []string{"pastry chef croissant baking"})
	assert.Equal(t, 0.0, scores[0])
}

func TestSimilarityScoresEmptyInputs(t *testing.T) {
	assert.Empty(t, SimilarityScores("golang", nil))

	scores := SimilarityScores("", []string{"golang developer"})
	assert.Equal(t, []float64{0}, scores)
}

func TestSimilarityScoresRelativeOrder(t *testing.T) {
	profile := "python machine learning tensorflow data science"
	docs := []string{
		"data scientist python tensorflow machine learning models",
		"python scripting for sysadmins",
		"forklift operator warehouse",
	}
	scores := SimilarityScores(profile, docs)
	assert.Greater(t, scores[0], scores[1])
	assert.Greater(t, scores[1], scores[2])
}

func TestCosineZeroMagnitude(t *testing.T) {
	assert.Equal(t, 0.0, Cosine(nil, map[string]float64{"go": 1}))
	assert.Equal(t, 0.0, Cosine(map[string]float64{"go": 0}, map[string]float64{"go": 1}))
}

func TestOverlapScore(t *testing.T) {
	profileKW := KeywordSet("golang postgres docker")
	pct, matched, missing := OverlapScore(profileKW, "golang golang kubernetes postgres terraform")

	// posting keywords: golang, kubernetes, postgres, terraform -> 2 of 4 matched
	assert.InDelta(t, 50.0, pct, 1e-9)
	assert.Equal(t, []string{"golang", "postgres"}, matched)
	// missing ordered by descending frequency, ties alphabetical
	assert.Equal(t, []string{"kubernetes", "terraform"}, missing)
}

func TestOverlapScoreMissingFrequencyOrder(t *testing.T) {
	profileKW := KeywordSet("golang")
	_, _, missing := OverlapScore(profileKW, "kafka kafka kafka redis redis postgres")
	assert.Equal(t, []string{"kafka", "redis", "postgres"}, missing)
}

func TestOverlapScoreEmptyPosting(t *testing.T) {
	pct, matched, missing := OverlapScore(KeywordSet("golang"), "")
	assert.Equal(t, 0.0, pct)
	assert.Nil(t, matched)
	assert.Nil(t, missing)
}

func TestOverlapScoreBounds(t *testing.T) {
	profileKW := KeywordSet("golang postgres docker kubernetes")
	pct, _, _ := OverlapScore(profileKW, "golang postgres docker kubernetes")
	assert.InDelta(t, 100.0, pct, 1e-9)
}

func TestTokenizePreservesTechSuffixes(t *testing.T) {
	tokens := Tokenize("Experienced in C++, C# and Node.js development.")
	assert.Contains(t, tokens, "c++")
	assert.Contains(t, tokens, "c#")
	assert.Contains(t, tokens, "node.js")
	assert.NotContains(t, tokens, "and")
}
