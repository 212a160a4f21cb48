// Package corpus holds the tagged example-sentence collection and its
// token-overlap similarity search. This is a deliberately cheap
// bag-of-words heuristic, not semantic similarity.
package corpus

import (
	"sort"
	"strings"
)

// Example is one tagged corpus sentence. Examples are append-only at
// build time and never mutated at runtime.
type Example struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Language  string `json:"language"`
	Type      string `json:"type"`
	Context   string `json:"context"`
	Domain    string `json:"domain,omitempty"`
	Sentiment string `json:"sentiment,omitempty"`
}

// Match pairs an example with its similarity to a query sentence.
type Match struct {
	Example    Example `json:"example"`
	Similarity float64 `json:"similarity"`
}

// Index is the immutable example collection.
type Index struct {
	examples []Example
}

// NewIndex returns an index over the built-in example corpus.
func NewIndex() *Index {
	return &Index{examples: builtinExamples}
}

// NewIndexWith returns an index over a caller-supplied corpus.
func NewIndexWith(examples []Example) *Index {
	return &Index{examples: examples}
}

// Examples returns the indexed examples.
func (ix *Index) Examples() []Example {
	return ix.examples
}

// Similar returns every example whose token-overlap similarity with the
// sentence is at or above threshold, sorted descending by similarity.
func (ix *Index) Similar(sentence string, threshold float64) []Match {
	queryTokens := tokenize(sentence)
	if len(queryTokens) == 0 {
		return nil
	}

	var matches []Match
	for _, ex := range ix.examples {
		sim := overlapSimilarity(queryTokens, tokenize(ex.Text))
		if sim >= threshold {
			matches = append(matches, Match{Example: ex, Similarity: sim})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}

// overlapSimilarity counts query tokens that appear as a substring of
// (or contain) any corpus token, divided by the larger token count.
func overlapSimilarity(query, other []string) float64 {
	if len(query) == 0 || len(other) == 0 {
		return 0
	}
	matched := 0
	for _, q := range query {
		for _, o := range other {
			if strings.Contains(o, q) || strings.Contains(q, o) {
				matched++
				break
			}
		}
	}
	denom := len(query)
	if len(other) > denom {
		denom = len(other)
	}
	return float64(matched) / float64(denom)
}

func tokenize(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()[]")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
