// Package spell implements vocabulary-driven spelling correction using
// Levenshtein distance against words harvested from the knowledge base.
package spell

import (
	"reflect"
	"regexp"
	"sort"
	"strings"
)

// Correction records one corrected token.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Distance  int    `json:"distance"`
}

// tokenRe matches word cores: letters/digits plus inner apostrophe or
// hyphen. Everything between matches (whitespace, punctuation) is
// preserved verbatim by CorrectText.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}][\p{L}\p{N}'-]*`)

// BuildVocabulary walks an arbitrary nested structure (maps, slices,
// structs, strings) and collects every lower-cased word token found in
// string-valued fields.
func BuildVocabulary(v any) map[string]struct{} {
	vocab := make(map[string]struct{})
	collectStrings(reflect.ValueOf(v), vocab, 0)
	return vocab
}

const maxWalkDepth = 16

func collectStrings(val reflect.Value, vocab map[string]struct{}, depth int) {
	if !val.IsValid() || depth > maxWalkDepth {
		return
	}
	switch val.Kind() {
	case reflect.String:
		for _, tok := range tokenRe.FindAllString(val.String(), -1) {
			vocab[strings.ToLower(tok)] = struct{}{}
		}
	case reflect.Pointer, reflect.Interface:
		if !val.IsNil() {
			collectStrings(val.Elem(), vocab, depth+1)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			collectStrings(val.Index(i), vocab, depth+1)
		}
	case reflect.Map:
		for _, k := range val.MapKeys() {
			collectStrings(k, vocab, depth+1)
			collectStrings(val.MapIndex(k), vocab, depth+1)
		}
	case reflect.Struct:
		for i := 0; i < val.NumField(); i++ {
			if val.Type().Field(i).IsExported() {
				collectStrings(val.Field(i), vocab, depth+1)
			}
		}
	}
}

// CorrectToken corrects a single token against the vocabulary. A token
// already in the vocabulary is returned unchanged. Otherwise the full
// vocabulary is scanned for the minimum-distance candidate within
// maxDist, with a length-difference prune.
//
// Tie-break among equidistant candidates is deterministic: the shorter
// candidate wins, then the lexicographically smaller one.
func CorrectToken(token string, vocab map[string]struct{}, maxDist int) (corrected string, changed bool, distance int) {
	lower := strings.ToLower(token)
	if lower == "" || maxDist <= 0 {
		return token, false, 0
	}
	if _, ok := vocab[lower]; ok {
		return token, false, 0
	}

	best := ""
	bestDist := maxDist + 1
	for cand := range vocab {
		diff := len(cand) - len(lower)
		if diff < 0 {
			diff = -diff
		}
		if diff > maxDist {
			continue
		}
		d := Distance(lower, cand)
		if d < bestDist || (d == bestDist && better(cand, best)) {
			best = cand
			bestDist = d
		}
	}

	if best == "" || bestDist > maxDist {
		return token, false, 0
	}
	return best, true, bestDist
}

// better reports whether a beats b under the tie-break rule.
func better(a, b string) bool {
	if b == "" {
		return true
	}
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// CorrectText corrects every word token in text, preserving inter-token
// whitespace and punctuation verbatim.
func CorrectText(text string, vocab map[string]struct{}, maxDist int) (string, []Correction) {
	if text == "" || len(vocab) == 0 {
		return text, nil
	}

	var corrections []Correction
	out := tokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		corrected, changed, dist := CorrectToken(tok, vocab, maxDist)
		if !changed {
			return tok
		}
		corrections = append(corrections, Correction{
			Original:  tok,
			Corrected: corrected,
			Distance:  dist,
		})
		return corrected
	})
	return out, corrections
}

// Distance is the Levenshtein edit distance between two strings,
// computed over bytes with the standard two-row dynamic program.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// Words returns the vocabulary in sorted order, mainly for diagnostics.
func Words(vocab map[string]struct{}) []string {
	words := make([]string, 0, len(vocab))
	for w := range vocab {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}
