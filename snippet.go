package nalar

import (
	"strings"
	"unicode"
)

// snippetMaxLen is the approximate maximum character length for an
// answer snippet.
const snippetMaxLen = 300

// answerSnippet returns the 1-2 sentences of content most relevant to
// the query, by significant-word overlap. Empty when nothing overlaps.
func answerSnippet(content, queryText string) string {
	queryWords := significantWords(queryText)
	if len(queryWords) == 0 || content == "" {
		return ""
	}

	sentences := splitSentences(content)
	if len(sentences) == 0 {
		return ""
	}

	scores := make([]int, len(sentences))
	for i, s := range sentences {
		for w := range significantWords(s) {
			if queryWords[w] {
				scores[i]++
			}
		}
	}

	bestIdx := 0
	for i, sc := range scores {
		if sc > scores[bestIdx] {
			bestIdx = i
		}
	}
	if scores[bestIdx] == 0 {
		return ""
	}

	result := sentences[bestIdx]

	// Pull in the better-scoring adjacent sentence when it still fits.
	if len(result) < snippetMaxLen && len(sentences) > 1 {
		adjIdx, adjScore := -1, 0
		for _, delta := range []int{1, -1} {
			adj := bestIdx + delta
			if adj >= 0 && adj < len(sentences) && scores[adj] > adjScore {
				adjScore = scores[adj]
				adjIdx = adj
			}
		}
		if adjIdx >= 0 && adjScore > 0 {
			combined := result + " " + sentences[adjIdx]
			if adjIdx < bestIdx {
				combined = sentences[adjIdx] + " " + result
			}
			if len(combined) <= snippetMaxLen {
				result = combined
			}
		}
	}
	return result
}

// significantWords returns the lowercased words of 4+ characters,
// excluding filler words in both languages.
func significantWords(text string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(w) >= 4 && !fillerWords[w] {
			words[w] = true
		}
	}
	return words
}

// splitSentences splits at sentence-final punctuation followed by
// whitespace or end of string.
func splitSentences(text string) []string {
	var sentences []string
	var cur strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		cur.WriteRune(runes[i])
		if runes[i] == '.' || runes[i] == '?' || runes[i] == '!' {
			if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
				if s := strings.TrimSpace(cur.String()); s != "" {
					sentences = append(sentences, s)
				}
				cur.Reset()
			}
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// fillerWords are common words in both languages excluded from snippet
// relevance scoring.
var fillerWords = map[string]bool{
	// Indonesian
	"yang": true, "dengan": true, "untuk": true, "adalah": true,
	"dari": true, "pada": true, "atau": true, "juga": true,
	"saya": true, "kamu": true, "anda": true, "sudah": true,
	"akan": true, "bisa": true, "tidak": true, "dalam": true,
	// English
	"that": true, "this": true, "with": true, "from": true,
	"have": true, "been": true, "were": true, "they": true,
	"will": true, "would": true, "about": true, "which": true,
	"there": true, "then": true, "than": true, "what": true,
	"your": true, "more": true, "some": true, "such": true,
}
