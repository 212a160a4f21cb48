// Package coref resolves pronouns against antecedents drawn from recent
// conversation turns.
package coref

import (
	"regexp"
	"strings"
	"unicode"
)

// Turn is one prior conversation message with any entities attached to
// it when it was processed.
type Turn struct {
	Content  string
	Entities []string
}

// ContextProvider supplies recent conversation turns, most-recent-first.
// Adapters over chronologically stored conversations must reverse their
// order before returning.
type ContextProvider interface {
	RecentTurns(n int) []Turn
}

// pronouns per language; closed lists, matched as whole words,
// case-insensitive.
var pronounSets = map[string][]string{
	"id": {"dia", "ia", "beliau", "mereka", "itu"},
	"en": {"he", "she", "it", "they", "him", "her", "them"},
}

// Resolver substitutes pronouns with the most recent antecedent found
// in conversation context.
type Resolver struct {
	pronouns map[string]bool
	window   int
	wordRe   *regexp.Regexp
}

// NewResolver returns a resolver for the given language ("id" or "en";
// anything else gets the union of both pronoun sets). window is the
// number of recent turns scanned for antecedents.
func NewResolver(lang string, window int) *Resolver {
	if window <= 0 {
		window = 5
	}
	pronouns := make(map[string]bool)
	if set, ok := pronounSets[lang]; ok {
		for _, p := range set {
			pronouns[p] = true
		}
	} else {
		for _, set := range pronounSets {
			for _, p := range set {
				pronouns[p] = true
			}
		}
	}
	return &Resolver{
		pronouns: pronouns,
		window:   window,
		wordRe:   regexp.MustCompile(`[\p{L}][\p{L}'-]*`),
	}
}

// Resolve replaces every qualifying pronoun in message with the single
// most recent antecedent from context. The mapping records pronoun →
// antecedent for each substitution. A nil provider, provider failure,
// or absent antecedent degrades to a no-op.
func (r *Resolver) Resolve(message string, provider ContextProvider) (resolved string, mapping map[string]string) {
	resolved = message
	if message == "" || provider == nil {
		return resolved, nil
	}
	if !r.containsPronoun(message) {
		return resolved, nil
	}

	antecedent := r.firstAntecedent(provider)
	if antecedent == "" {
		return resolved, nil
	}

	mapping = make(map[string]string)
	resolved = r.wordRe.ReplaceAllStringFunc(message, func(w string) string {
		if r.pronouns[strings.ToLower(w)] {
			mapping[strings.ToLower(w)] = antecedent
			return antecedent
		}
		return w
	})
	if len(mapping) == 0 {
		mapping = nil
	}
	return resolved, mapping
}

func (r *Resolver) containsPronoun(message string) bool {
	for _, w := range r.wordRe.FindAllString(message, -1) {
		if r.pronouns[strings.ToLower(w)] {
			return true
		}
	}
	return false
}

// firstAntecedent scans recent turns most-recent-first, preferring
// attached entities over the capitalized-word heuristic within each
// turn. Provider panics are swallowed; resolution degrades to a no-op.
func (r *Resolver) firstAntecedent(provider ContextProvider) (antecedent string) {
	defer func() {
		if recover() != nil {
			antecedent = ""
		}
	}()

	for _, turn := range provider.RecentTurns(r.window) {
		if len(turn.Entities) > 0 {
			return turn.Entities[0]
		}
		if name := firstCapitalizedWord(turn.Content); name != "" {
			return name
		}
	}
	return ""
}

// firstCapitalizedWord returns the first non-sentence-initial
// capitalized word in text, a cheap stand-in for a named entity.
func firstCapitalizedWord(text string) string {
	words := strings.Fields(text)
	for i, w := range words {
		clean := strings.Trim(w, ".,;:!?\"'()[]")
		if clean == "" {
			continue
		}
		runes := []rune(clean)
		if !unicode.IsUpper(runes[0]) || !unicode.IsLower(runes[len(runes)-1]) {
			continue
		}
		// Skip the sentence-initial word: capitalization there carries
		// no entity signal.
		if i == 0 {
			continue
		}
		return clean
	}
	return ""
}

// TurnHistory is a minimal in-memory ContextProvider for callers without
// a conversation store. Append adds turns in chronological order.
type TurnHistory struct {
	turns []Turn
}

// Append records a turn as the newest entry.
func (h *TurnHistory) Append(t Turn) {
	h.turns = append(h.turns, t)
}

// RecentTurns returns up to n turns, most-recent-first.
func (h *TurnHistory) RecentTurns(n int) []Turn {
	if n <= 0 || len(h.turns) == 0 {
		return nil
	}
	if n > len(h.turns) {
		n = len(h.turns)
	}
	out := make([]Turn, 0, n)
	for i := len(h.turns) - 1; i >= len(h.turns)-n; i-- {
		out = append(out, h.turns[i])
	}
	return out
}
