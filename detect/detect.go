// Package detect implements the lexicon-driven sentiment scorer and the
// keyword/character-frequency language detector.
package detect

import (
	"strings"
)

// SentimentResult is the outcome of sentiment scoring.
type SentimentResult struct {
	Label      string         `json:"label"` // "positive", "negative", "neutral"
	Confidence float64        `json:"confidence"`
	Scores     map[string]int `json:"scores"` // matched word counts per label
}

// LanguageResult is the outcome of language detection.
type LanguageResult struct {
	Code       string             `json:"code"` // "id" or "en"
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
	Details    map[string]float64 `json:"details"` // per-heuristic contributions
}

var positiveWords = []string{
	// Indonesian
	"bagus", "baik", "hebat", "keren", "mantap", "senang", "suka",
	"gembira", "bahagia", "puas", "mudah", "membantu", "terima kasih",
	"makasih", "luar biasa", "berhasil",
	// English
	"good", "great", "awesome", "nice", "excellent", "happy", "love",
	"helpful", "easy", "thanks", "amazing", "wonderful",
}

var negativeWords = []string{
	// Indonesian
	"buruk", "jelek", "parah", "sulit", "susah", "sedih", "kecewa",
	"marah", "benci", "gagal", "lambat", "bingung", "rusak",
	// English
	"bad", "poor", "awful", "terrible", "sad", "angry", "hate",
	"difficult", "hard", "slow", "broken", "confusing", "fail",
}

// Sentiment scores text against fixed positive/negative keyword lists.
// The label is the majority of per-word substring matches; confidence
// is matched words over total words, zero (and "neutral") when nothing
// matches.
func Sentiment(text string) SentimentResult {
	words := strings.Fields(strings.ToLower(text))
	scores := map[string]int{"positive": 0, "negative": 0}
	if len(words) == 0 {
		return SentimentResult{Label: "neutral", Scores: scores}
	}

	for _, w := range words {
		w = strings.Trim(w, ".,;:!?\"'()[]")
		if matchesAny(w, positiveWords) {
			scores["positive"]++
		}
		if matchesAny(w, negativeWords) {
			scores["negative"]++
		}
	}

	matched := scores["positive"] + scores["negative"]
	if matched == 0 {
		return SentimentResult{Label: "neutral", Scores: scores}
	}

	label := "neutral"
	switch {
	case scores["positive"] > scores["negative"]:
		label = "positive"
	case scores["negative"] > scores["positive"]:
		label = "negative"
	}

	confidence := float64(matched) / float64(len(words))
	if confidence > 1 {
		confidence = 1
	}
	return SentimentResult{Label: label, Confidence: confidence, Scores: scores}
}

// matchesAny reports whether word matches any keyword by substring in
// either direction, so "membantu" matches the keyword "bantu"-family
// entries and short keywords still hit inflected forms.
func matchesAny(word string, keywords []string) bool {
	if word == "" {
		return false
	}
	for _, k := range keywords {
		if word == k || (len(k) >= 4 && strings.Contains(word, k)) {
			return true
		}
	}
	return false
}

// weighted keyword tables per language. Higher weight = stronger signal.
var languageKeywords = map[string]map[string]float64{
	"id": {
		"yang": 3, "dan": 3, "tidak": 3, "adalah": 3, "dengan": 3,
		"saya": 2, "kamu": 2, "apa": 2, "itu": 2, "ini": 2, "di": 1,
		"untuk": 2, "bagaimana": 3, "kenapa": 3, "sudah": 2, "bisa": 2,
		"akan": 1, "atau": 1, "juga": 2, "dari": 1, "ke": 1, "pada": 1,
	},
	"en": {
		"the": 3, "is": 2, "are": 2, "and": 2, "not": 2, "with": 2,
		"you": 2, "what": 3, "that": 2, "this": 2, "for": 1, "how": 3,
		"why": 3, "can": 2, "will": 1, "or": 1, "also": 2, "from": 1,
		"to": 1, "of": 2, "in": 1, "do": 2, "does": 3, "about": 2,
	},
}

// Language detects "id" vs "en" using weighted keyword hits, a
// character-frequency adjustment, and an average-word-length heuristic.
// Very short inputs (<3 tokens) get a widened (reduced) confidence.
func Language(text string) LanguageResult {
	words := strings.Fields(strings.ToLower(text))
	scores := map[string]float64{"id": 0, "en": 0}
	details := make(map[string]float64)
	if len(words) == 0 {
		return LanguageResult{Code: "id", Scores: scores, Details: details}
	}

	for _, w := range words {
		w = strings.Trim(w, ".,;:!?\"'()[]")
		for lang, table := range languageKeywords {
			if weight, ok := table[w]; ok {
				scores[lang] += weight
			}
		}
	}
	details["keywords_id"] = scores["id"]
	details["keywords_en"] = scores["en"]

	// Character-frequency adjustment: Indonesian text runs unusually
	// heavy on 'a'; English on 'e'. Weighted lightly relative to
	// keyword evidence.
	aFreq, eFreq := charFrequencies(text)
	if aFreq > 0.12 {
		scores["id"] += 1.5
		details["char_freq_id"] = 1.5
	}
	if eFreq > 0.10 {
		scores["en"] += 1.5
		details["char_freq_en"] = 1.5
	}

	// Average word length: Indonesian words trend longer due to
	// affixation (me-, ber-, -kan, -nya).
	avgLen := averageWordLength(words)
	details["avg_word_len"] = avgLen
	if avgLen > 6.0 {
		scores["id"] += 1
	} else if avgLen < 4.0 {
		scores["en"] += 1
	}

	total := scores["id"] + scores["en"]
	if total == 0 {
		return LanguageResult{Code: "id", Confidence: 0.3, Scores: scores, Details: details}
	}

	code := "id"
	if scores["en"] > scores["id"] {
		code = "en"
	}
	confidence := scores[code] / total

	// Short inputs carry weak evidence; widen the uncertainty band.
	if len(words) < 3 {
		confidence *= 0.6
	}
	if confidence > 1 {
		confidence = 1
	}
	return LanguageResult{Code: code, Confidence: confidence, Scores: scores, Details: details}
}

func charFrequencies(text string) (aFreq, eFreq float64) {
	var letters, aCount, eCount int
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			letters++
			switch r {
			case 'a':
				aCount++
			case 'e':
				eCount++
			}
		}
	}
	if letters == 0 {
		return 0, 0
	}
	return float64(aCount) / float64(letters), float64(eCount) / float64(letters)
}

func averageWordLength(words []string) float64 {
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len(w)
	}
	return float64(total) / float64(len(words))
}
