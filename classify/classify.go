// Package classify scores utterances against a fixed taxonomy of
// intents, entity types, and sentence types. All tables are compiled at
// startup and iterated in declaration order so tie-breaks are
// reproducible.
package classify

import (
	"regexp"
	"strings"
)

// IntentResult is the winning intent with its full score table.
type IntentResult struct {
	Intent     string             `json:"intent"`
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
}

// Entity is a typed span extracted from an utterance.
type Entity struct {
	Type       string  `json:"type"` // PERSON, LOCATION, DATE, TIME, ORGANIZATION, SKILL, PRODUCT, TOPIC
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Context    string  `json:"context"`
}

// SentenceTypeResult is the winning sentence type with all scores.
type SentenceTypeResult struct {
	Type       string             `json:"type"` // "interrogative", "imperative", "exclamatory", "declarative"
	Confidence float64            `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
}

// scoring weights per evidence kind.
const (
	exampleWeight = 0.3
	triggerWeight = 0.4

	entityConfidence = 0.85
)

type contextRule struct {
	match  func(lower string) bool
	weight float64
}

type intentDef struct {
	name     string
	examples []string
	triggers []*regexp.Regexp
	rules    []contextRule
}

type entityDef struct {
	typ     string
	re      *regexp.Regexp
	context string
	// group selects the submatch to report; 0 reports the whole match.
	group int
}

type sentenceTypeDef struct {
	name  string
	score func(text, lower string) float64
}

// Classifier evaluates the static intent/entity/sentence-type tables.
type Classifier struct {
	intents       []intentDef
	entities      []entityDef
	sentenceTypes []sentenceTypeDef
}

// New compiles the built-in taxonomy.
func New() *Classifier {
	return &Classifier{
		intents:       buildIntents(),
		entities:      buildEntities(),
		sentenceTypes: buildSentenceTypes(),
	}
}

// Intent scores every registered intent against the utterance and
// returns the maximum. Ties go to the earlier declaration. Empty input
// yields the zero-confidence "unknown" intent.
func (c *Classifier) Intent(text string) IntentResult {
	lower := strings.ToLower(strings.TrimSpace(text))
	scores := make(map[string]float64, len(c.intents))
	if lower == "" {
		return IntentResult{Intent: "unknown", Scores: scores}
	}

	best := ""
	bestScore := 0.0
	for _, def := range c.intents {
		score := 0.0
		for _, ex := range def.examples {
			if strings.Contains(lower, ex) {
				score += exampleWeight
			}
		}
		for _, re := range def.triggers {
			if re.MatchString(lower) {
				score += triggerWeight
			}
		}
		for _, rule := range def.rules {
			if rule.match(lower) {
				score += rule.weight
			}
		}
		if score > 1 {
			score = 1
		}
		scores[def.name] = score
		if score > bestScore {
			bestScore = score
			best = def.name
		}
	}

	if best == "" {
		return IntentResult{Intent: "unknown", Scores: scores}
	}
	return IntentResult{Intent: best, Confidence: bestScore, Scores: scores}
}

// Entities extracts every entity-pattern match with constant confidence
// and the type's declared default context.
func (c *Classifier) Entities(text string) []Entity {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []Entity
	for _, def := range c.entities {
		for _, m := range def.re.FindAllStringSubmatch(text, -1) {
			value := m[0]
			if def.group > 0 && def.group < len(m) {
				value = m[def.group]
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			out = append(out, Entity{
				Type:       def.typ,
				Value:      value,
				Confidence: entityConfidence,
				Context:    def.context,
			})
		}
	}
	return out
}

// SentenceType applies independent per-type heuristics and picks the
// max-scoring type; declarative is the fallback.
func (c *Classifier) SentenceType(text string) SentenceTypeResult {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	scores := make(map[string]float64, len(c.sentenceTypes))
	if trimmed == "" {
		return SentenceTypeResult{Type: "declarative", Scores: scores}
	}

	best := "declarative"
	bestScore := 0.0
	for _, def := range c.sentenceTypes {
		score := def.score(trimmed, lower)
		if score > 1 {
			score = 1
		}
		scores[def.name] = score
		if score > bestScore {
			bestScore = score
			best = def.name
		}
	}
	return SentenceTypeResult{Type: best, Confidence: bestScore, Scores: scores}
}
