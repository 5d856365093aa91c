package index

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxFeatures caps the vocabulary size of a fitted vector space.
const DefaultMaxFeatures = 6000

var tokenPattern = regexp.MustCompile(`\p{L}[\p{L}\p{N}]+`)

// Vectorizer is a TF-IDF model fitted over a chunk corpus. It maps texts
// into a fixed vocabulary with smoothed inverse document frequencies.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// Artifact is the queryable result of a full index rebuild: the fitted
// vectorizer, one L2-normalized row vector per chunk, and the chunk ids in
// row order. Row order equals the insertion order of chunks into the store.
type Artifact struct {
	vectorizer *Vectorizer
	rows       [][]float64
	chunkIDs   []string
}

// Rebuild fits a TF-IDF vector space over the given chunk texts and returns
// the resulting artifact. The ids slice must parallel texts. A nil artifact
// is returned for an empty corpus; callers treat that as "no corpus".
func Rebuild(ids []string, texts []string, maxFeatures int) *Artifact {
	if len(texts) == 0 {
		return nil
	}
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}

	vectorizer := fit(texts, maxFeatures)

	rows := make([][]float64, len(texts))
	for i, text := range texts {
		rows[i] = vectorizer.Embed(text)
	}

	chunkIDs := make([]string, len(ids))
	copy(chunkIDs, ids)

	return &Artifact{
		vectorizer: vectorizer,
		rows:       rows,
		chunkIDs:   chunkIDs,
	}
}

func fit(texts []string, maxFeatures int) *Vectorizer {
	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	// Keep the most frequent terms; ties resolve lexicographically so the
	// vocabulary is stable across rebuilds of the same corpus.
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(texts))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}

	return &Vectorizer{
		vocabulary: vocabulary,
		idf:        idf,
	}
}

// Embed computes the L2-normalized TF-IDF vector for the given text.
// Tokens outside the fitted vocabulary are ignored.
func (v *Vectorizer) Embed(text string) []float64 {
	vec := make([]float64, len(v.idf))
	tf := make(map[int]int)
	for _, tok := range tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			tf[idx]++
		}
	}
	if len(tf) == 0 {
		return vec
	}

	for idx, count := range tf {
		vec[idx] = float64(count) * v.idf[idx]
	}

	norm := 0.0
	for _, value := range vec {
		norm += value * value
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Score embeds the question and returns its cosine similarity against every
// chunk row. Rows are L2-normalized, so the linear kernel is the cosine.
func (a *Artifact) Score(question string) []float64 {
	queryVec := a.vectorizer.Embed(question)
	scores := make([]float64, len(a.rows))
	for i, row := range a.rows {
		scores[i] = dot(row, queryVec)
	}
	return scores
}

// ChunkIDs returns the chunk ids in row order.
func (a *Artifact) ChunkIDs() []string {
	return a.chunkIDs
}

// Len returns the number of indexed chunks.
func (a *Artifact) Len() int {
	return len(a.rows)
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func tokenize(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, isStop := stopwords[tok]; isStop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
