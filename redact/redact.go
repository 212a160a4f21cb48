// Package redact scans text for personally identifiable information and
// rewrites matched literals with type-specific placeholders before any
// downstream processing sees them.
package redact

import (
	"regexp"
	"strings"
)

// Match is one detected PII substring.
type Match struct {
	Type   string `json:"type"` // "email", "phone", "card", "id_number"
	Value  string `json:"value"`
	Offset int    `json:"offset"`
}

// Options controls redaction behavior.
type Options struct {
	// Whitelist exempts matched literals from redaction when it returns
	// true. Nil means nothing is whitelisted.
	Whitelist func(value string) bool

	// ReplaceMap overrides the placeholder per PII type.
	ReplaceMap map[string]string
}

// pattern order is fixed; matches are reported in declaration order.
var patterns = []struct {
	typ string
	re  *regexp.Regexp
}{
	{"email", regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)},
	{"card", regexp.MustCompile(`\b\d{4}[ -]?\d{4}[ -]?\d{4}[ -]?\d{4}\b`)},
	{"phone", regexp.MustCompile(`(?:\+62|62|0)8\d{7,11}\b|\+\d{9,14}\b`)},
	{"id_number", regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b|\b\d{16}\b`)},
}

var defaultPlaceholders = map[string]string{
	"email":     "[REDACTED_EMAIL]",
	"card":      "[REDACTED_CARD]",
	"phone":     "[REDACTED_PHONE]",
	"id_number": "[REDACTED_ID]",
}

// Detect reports every PII match in text not exempted by the whitelist.
// Empty input yields an empty match list, never an error.
func Detect(text string, whitelist func(string) bool) []Match {
	if text == "" {
		return nil
	}

	var matches []Match
	seen := make(map[string]bool)
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			value := text[loc[0]:loc[1]]
			if whitelist != nil && whitelist(value) {
				continue
			}
			// One record per (type, literal); redaction replaces every
			// occurrence of the literal anyway.
			key := p.typ + "\x00" + value
			if seen[key] {
				continue
			}
			seen[key] = true
			matches = append(matches, Match{Type: p.typ, Value: value, Offset: loc[0]})
		}
	}
	return matches
}

// Redact replaces every occurrence of each detected literal with its
// type placeholder. Replacement is literal-substring based, not a
// pattern re-scan, so redacting already-redacted text is a no-op.
func Redact(text string, opts Options) (string, []Match) {
	matches := Detect(text, opts.Whitelist)
	out := text
	for _, m := range matches {
		placeholder := defaultPlaceholders[m.Type]
		if p, ok := opts.ReplaceMap[m.Type]; ok {
			placeholder = p
		}
		out = strings.ReplaceAll(out, m.Value, placeholder)
	}
	return out, matches
}
