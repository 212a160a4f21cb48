// Package lexicon is the static bilingual dictionary backing the NLU
// pipeline: canonical forms, variants, synonyms, lemmas, and sentiment
// polarity for Indonesian and English vocabulary.
package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Entry is one dictionary record, keyed by (language, canonical form).
// Entries are immutable after store construction.
type Entry struct {
	Canonical    string
	Definition   string
	Category     string
	PartOfSpeech string
	Lemma        string
	Variants     []string
	Synonyms     []string
	Polarity     int     // -1 negative, 0 neutral, +1 positive
	Intensity    float64 // 0..1, meaningful when Polarity != 0
	Register     string  // "formal", "informal", ""
}

// Meaning is the lookup result for a single word.
type Meaning struct {
	Word         string  `json:"word"`
	Definition   string  `json:"definition"`
	Category     string  `json:"category,omitempty"`
	PartOfSpeech string  `json:"part_of_speech,omitempty"`
	Polarity     int     `json:"polarity"`
	Intensity    float64 `json:"intensity"`
	Confidence   float64 `json:"confidence"`
	Known        bool    `json:"known"`
}

// Store holds the dictionary, indexed per language by canonical form.
type Store struct {
	byLang map[string]map[string]*Entry
	order  map[string][]*Entry // declaration order, for variant scans
}

// NewStore returns a store loaded with the built-in bilingual dictionary.
func NewStore() *Store {
	s := &Store{
		byLang: make(map[string]map[string]*Entry),
		order:  make(map[string][]*Entry),
	}
	for lang, entries := range builtinEntries {
		for i := range entries {
			s.add(lang, &entries[i])
		}
	}
	return s
}

func (s *Store) add(lang string, e *Entry) {
	m, ok := s.byLang[lang]
	if !ok {
		m = make(map[string]*Entry)
		s.byLang[lang] = m
	}
	m[e.Canonical] = e
	s.order[lang] = append(s.order[lang], e)
}

// lookup finds an entry by exact canonical match, then by variant scan
// in declaration order.
func (s *Store) lookup(word, lang string) *Entry {
	w := Fold(word)
	if e, ok := s.byLang[lang][w]; ok {
		return e
	}
	for _, e := range s.order[lang] {
		for _, v := range e.Variants {
			if v == w {
				return e
			}
		}
	}
	return nil
}

// Meaning resolves a word to its dictionary meaning. Unknown words get
// a sentinel meaning with zero confidence, never an error.
func (s *Store) Meaning(word, lang string) Meaning {
	e := s.lookup(word, lang)
	if e == nil {
		return Meaning{Word: Fold(word), Definition: "unknown", Confidence: 0}
	}
	return Meaning{
		Word:         e.Canonical,
		Definition:   e.Definition,
		Category:     e.Category,
		PartOfSpeech: e.PartOfSpeech,
		Polarity:     e.Polarity,
		Intensity:    e.Intensity,
		Confidence:   0.9,
		Known:        true,
	}
}

// Lemma returns the base form of a word, or the folded word itself when
// no lemma is recorded.
func (s *Store) Lemma(word, lang string) string {
	e := s.lookup(word, lang)
	if e == nil {
		return Fold(word)
	}
	if e.Lemma != "" {
		return e.Lemma
	}
	return e.Canonical
}

// Synonyms returns the synonym list for a word, nil when unknown.
func (s *Store) Synonyms(word, lang string) []string {
	e := s.lookup(word, lang)
	if e == nil {
		return nil
	}
	return e.Synonyms
}

// Variants returns the recorded surface variants for a word.
func (s *Store) Variants(word, lang string) []string {
	e := s.lookup(word, lang)
	if e == nil {
		return nil
	}
	return e.Variants
}

// Normalize maps a word to its canonical dictionary form: diacritics
// folded, lower-cased, and variants collapsed onto the canonical entry.
func (s *Store) Normalize(word, lang string) string {
	e := s.lookup(word, lang)
	if e == nil {
		return Fold(word)
	}
	return e.Canonical
}

// Known reports whether a word has a dictionary entry.
func (s *Store) Known(word, lang string) bool {
	return s.lookup(word, lang) != nil
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases a word and strips combining diacritical marks, so
// "Café" and "cafe" collapse to the same key.
func Fold(word string) string {
	folded, _, err := transform.String(foldTransformer, word)
	if err != nil {
		folded = word
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
