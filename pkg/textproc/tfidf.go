package textproc

import (
	"math"
	"sort"
)

// SimilarityScores vectorizes the profile document and each posting
// document with TF-IDF over their combined vocabulary and returns the
// cosine similarity of the profile against each posting, in input order.
// Every score lies in [0,1]; a document sharing no vocabulary with the
// profile scores 0, and the profile against itself scores 1.
func SimilarityScores(profile string, docs []string) []float64 {
	scores := make([]float64, len(docs))
	if profile == "" || len(docs) == 0 {
		return scores
	}

	corpus := make([]map[string]int, 0, len(docs)+1)
	corpus = append(corpus, TermFrequencies(profile))
	for _, d := range docs {
		corpus = append(corpus, TermFrequencies(d))
	}

	idf := inverseDocumentFrequencies(corpus)
	profileVec := tfidfVector(corpus[0], idf)
	for i := 1; i < len(corpus); i++ {
		scores[i-1] = Cosine(profileVec, tfidfVector(corpus[i], idf))
	}
	return scores
}

// inverseDocumentFrequencies computes smoothed IDF weights:
// ln((1+n)/(1+df)) + 1, so terms in every document still carry weight and
// a single-document corpus does not zero out.
func inverseDocumentFrequencies(corpus []map[string]int) map[string]float64 {
	df := make(map[string]int)
	for _, doc := range corpus {
		for term := range doc {
			df[term]++
		}
	}
	n := float64(len(corpus))
	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log((1+n)/(1+float64(count))) + 1
	}
	return idf
}

func tfidfVector(freq map[string]int, idf map[string]float64) map[string]float64 {
	vec := make(map[string]float64, len(freq))
	for term, count := range freq {
		vec[term] = float64(count) * idf[term]
	}
	return vec
}

// Cosine returns the cosine similarity of two sparse vectors, defined as 0
// when either has zero magnitude. The result is clamped to [0,1] to absorb
// floating-point drift.
func Cosine(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the smaller map for the dot product.
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, av := range a {
		if bv, ok := b[term]; ok {
			dot += av * bv
		}
	}
	magA := magnitude(a)
	magB := magnitude(b)
	if magA == 0 || magB == 0 {
		return 0
	}
	sim := dot / (magA * magB)
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

func magnitude(v map[string]float64) float64 {
	var sum float64
	for _, val := range v {
		sum += val * val
	}
	return math.Sqrt(sum)
}

// OverlapScore computes the ATS keyword-overlap percentage between a
// profile keyword set and posting text:
// |intersection| / |posting keywords| * 100, 0 when the posting has no
// extractable keywords. Missing keywords (in the posting, absent from the
// profile) come back ordered by descending frequency in the posting text.
func OverlapScore(profileKW map[string]bool, postingText string) (pct float64, matched, missing []string) {
	postingFreq := TermFrequencies(postingText)
	if len(postingFreq) == 0 {
		return 0, nil, nil
	}

	missingFreq := make(map[string]int)
	inter := 0
	for term, count := range postingFreq {
		if profileKW[term] {
			inter++
			matched = append(matched, term)
		} else {
			missingFreq[term] = count
		}
	}
	sort.Strings(matched)
	missing = rankByCount(missingFreq, len(missingFreq))

	pct = float64(inter) / float64(len(postingFreq)) * 100
	return pct, matched, missing
}

// rankByCount orders keys by descending count, ties alphabetical, keeping
// at most n entries.
func rankByCount(freq map[string]int, n int) []string {
	keys := make([]string, 0, len(freq))
	for k := range freq {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if freq[keys[i]] != freq[keys[j]] {
			return freq[keys[i]] > freq[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if n < len(keys) {
		keys = keys[:n]
	}
	return keys
}
