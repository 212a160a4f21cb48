// Package kb defines the knowledge-base document consumed by the NLU
// pipeline and the query engine, plus loaders for the file formats the
// assistant accepts (JSON, YAML, uploaded spreadsheets and PDFs).
package kb

import (
	"sort"
	"strings"
)

// Document is the structured knowledge base. Every section is optional;
// an absent section simply disables the corresponding retrieval path.
type Document struct {
	Profile        map[string]string `json:"profile,omitempty" yaml:"profile,omitempty"`
	Cards          []Card            `json:"cards,omitempty" yaml:"cards,omitempty"`
	Certificates   []string          `json:"certificates,omitempty" yaml:"certificates,omitempty"`
	Collaborations []string          `json:"collaborations,omitempty" yaml:"collaborations,omitempty"`
	Interests      []string          `json:"interests,omitempty" yaml:"interests,omitempty"`
	SoftSkills     []string          `json:"softskills,omitempty" yaml:"softskills,omitempty"`
	AI             map[string]string `json:"ai,omitempty" yaml:"ai,omitempty"`
	UploadedData   []Upload          `json:"uploadedData,omitempty" yaml:"uploadedData,omitempty"`
}

// Card is a single portfolio/help card.
type Card struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Upload is a unit of user-uploaded content (spreadsheet row group,
// PDF text, pasted notes) that joins the retrievable corpus.
type Upload struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
}

// Entry is a flattened question/answer view over one document section,
// the unit the query engine matches against.
type Entry struct {
	Source   string
	Question string
	Answer   string
}

// Empty reports whether the document has no retrievable content.
func (d *Document) Empty() bool {
	if d == nil {
		return true
	}
	return len(d.Profile) == 0 && len(d.Cards) == 0 && len(d.Certificates) == 0 &&
		len(d.Collaborations) == 0 && len(d.Interests) == 0 && len(d.SoftSkills) == 0 &&
		len(d.AI) == 0 && len(d.UploadedData) == 0
}

// Entries flattens every populated section into query-engine entries.
// Map-backed sections are emitted in sorted key order so downstream
// ranking is reproducible.
func (d *Document) Entries() []Entry {
	if d == nil {
		return nil
	}
	var out []Entry

	for _, k := range sortedKeys(d.Profile) {
		out = append(out, Entry{Source: "profile", Question: k, Answer: d.Profile[k]})
	}
	for _, c := range d.Cards {
		answer := c.Title
		if c.Description != "" {
			answer = c.Title + ": " + c.Description
		}
		if len(c.Tags) > 0 {
			answer += " (" + strings.Join(c.Tags, ", ") + ")"
		}
		out = append(out, Entry{Source: "cards", Question: c.Title, Answer: answer})
	}
	for _, section := range []struct {
		name  string
		items []string
	}{
		{"certificates", d.Certificates},
		{"collaborations", d.Collaborations},
		{"interests", d.Interests},
		{"softskills", d.SoftSkills},
	} {
		for _, item := range section.items {
			out = append(out, Entry{Source: section.name, Question: item, Answer: item})
		}
	}
	for _, k := range sortedKeys(d.AI) {
		out = append(out, Entry{Source: "ai", Question: k, Answer: d.AI[k]})
	}
	for _, u := range d.UploadedData {
		out = append(out, Entry{Source: "uploaded", Question: u.Name, Answer: u.Content})
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
