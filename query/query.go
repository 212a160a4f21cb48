// Package query runs multi-strategy ranked search over the knowledge
// base: exact keyword overlap, synonym expansion, fuzzy edit-distance
// matching, and related-concept lookup, fused into one deduplicated
// ranked list behind a TTL cache.
package query

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/rizkyfauzan/nalar/kb"
	"github.com/rizkyfauzan/nalar/lexicon"
	"github.com/rizkyfauzan/nalar/spell"
)

// Search depths. Quick skips the fuzzy strategy; comprehensive adds
// related-concept lookup on top of standard.
const (
	DepthQuick         = "quick"
	DepthStandard      = "standard"
	DepthComprehensive = "comprehensive"
)

// Result is one ranked answer candidate.
type Result struct {
	Source    string  `json:"source"`
	Question  string  `json:"question"`
	Answer    string  `json:"answer"`
	Score     float64 `json:"score"`
	MatchType string  `json:"match_type"` // "exact", "synonym", "fuzzy", "related"
}

// Options configures a single query.
type Options struct {
	Depth      string
	Threshold  float64
	MaxResults int
	UseCache   bool
	Language   string
}

// strategy score constants.
const (
	exactBase       = 0.9
	synonymScore    = 0.8
	relatedScore    = 0.65
	exactMinOverlap = 0.6
	dedupePrefixLen = 50
)

// Engine runs ranked retrieval. Static lookup tables are read-only;
// the cache is the only mutable state and is safe for concurrent use.
type Engine struct {
	lex     *lexicon.Store
	related map[string][]string
	cache   *ttlCache
}

// New returns an engine using the given lexical store for synonym
// expansion and the built-in topic map for related-concept search.
func New(lex *lexicon.Store) *Engine {
	return &Engine{
		lex:     lex,
		related: relatedTopics,
		cache:   newTTLCache(defaultTTL),
	}
}

// Cache exposes the engine's cache for invalidation and test clocks.
func (e *Engine) Cache() *ttlCache {
	return e.cache
}

// Query runs the strategy set selected by opts.Depth over the document
// and returns a deduplicated, descending-ranked, truncated result list.
// Results are cached per (query, depth) for the cache TTL.
func (e *Engine) Query(text string, doc *kb.Document, opts Options) []Result {
	if strings.TrimSpace(text) == "" || doc.Empty() {
		return nil
	}
	if opts.Depth == "" {
		opts.Depth = DepthStandard
	}
	if opts.Threshold <= 0 {
		opts.Threshold = 0.6
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = 5
	}
	if opts.Language == "" {
		opts.Language = "id"
	}

	cacheKey := text + "\x00" + opts.Depth
	if opts.UseCache {
		if cached, ok := e.cache.get(cacheKey); ok {
			slog.Debug("query: cache hit", "depth", opts.Depth)
			return cached
		}
	}

	entries := doc.Entries()
	tokens := significantTokens(text)

	var candidates []Result
	candidates = append(candidates, e.exactSearch(tokens, entries)...)
	candidates = append(candidates, e.synonymSearch(tokens, entries, opts.Language)...)
	if opts.Depth != DepthQuick {
		candidates = append(candidates, e.fuzzySearch(text, entries, opts.Threshold)...)
	}
	if opts.Depth == DepthComprehensive {
		candidates = append(candidates, e.relatedSearch(tokens, entries)...)
	}

	results := rank(candidates, opts.MaxResults)
	if opts.UseCache {
		e.cache.put(cacheKey, results)
	}
	slog.Debug("query: search complete",
		"depth", opts.Depth, "candidates", len(candidates), "results", len(results))
	return results
}

// exactSearch keeps entries whose question+answer text covers at least
// 60% of the query tokens; score grows with coverage from 0.9 to 1.0.
func (e *Engine) exactSearch(tokens []string, entries []kb.Entry) []Result {
	if len(tokens) == 0 {
		return nil
	}
	var out []Result
	for _, entry := range entries {
		haystack := strings.ToLower(entry.Question + " " + entry.Answer)
		matched := 0
		for _, tok := range tokens {
			if strings.Contains(haystack, tok) {
				matched++
			}
		}
		ratio := float64(matched) / float64(len(tokens))
		if ratio >= exactMinOverlap {
			score := exactBase + (1.0-exactBase)*ratio
			if score > 1 {
				score = 1
			}
			out = append(out, Result{
				Source: entry.Source, Question: entry.Question, Answer: entry.Answer,
				Score: score, MatchType: "exact",
			})
		}
	}
	return out
}

// synonymSearch expands query tokens through the lexical store's
// synonyms and lemmas, then substring-matches the expanded set.
func (e *Engine) synonymSearch(tokens []string, entries []kb.Entry, lang string) []Result {
	expanded := make(map[string]bool)
	for _, tok := range tokens {
		for _, syn := range e.lex.Synonyms(tok, lang) {
			expanded[syn] = true
		}
		if lemma := e.lex.Lemma(tok, lang); lemma != tok {
			expanded[lemma] = true
		}
	}
	if len(expanded) == 0 {
		return nil
	}

	terms := make([]string, 0, len(expanded))
	for t := range expanded {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	var out []Result
	for _, entry := range entries {
		haystack := strings.ToLower(entry.Question + " " + entry.Answer)
		for _, term := range terms {
			if strings.Contains(haystack, term) {
				out = append(out, Result{
					Source: entry.Source, Question: entry.Question, Answer: entry.Answer,
					Score: synonymScore, MatchType: "synonym",
				})
				break
			}
		}
	}
	return out
}

// fuzzySearch keeps entries whose question is within normalized edit
// distance of the query: similarity (maxLen-dist)/maxLen >= threshold.
func (e *Engine) fuzzySearch(text string, entries []kb.Entry, threshold float64) []Result {
	q := strings.ToLower(strings.TrimSpace(text))
	var out []Result
	for _, entry := range entries {
		question := strings.ToLower(entry.Question)
		maxLen := len(q)
		if len(question) > maxLen {
			maxLen = len(question)
		}
		if maxLen == 0 {
			continue
		}
		dist := spell.Distance(q, question)
		sim := float64(maxLen-dist) / float64(maxLen)
		if sim >= threshold {
			out = append(out, Result{
				Source: entry.Source, Question: entry.Question, Answer: entry.Answer,
				Score: sim, MatchType: "fuzzy",
			})
		}
	}
	return out
}

// relatedSearch maps query tokens through the static topic map and
// matches entries against the related terms.
func (e *Engine) relatedSearch(tokens []string, entries []kb.Entry) []Result {
	terms := make(map[string]bool)
	for _, tok := range tokens {
		for topic, related := range e.related {
			if tok == topic || strings.Contains(tok, topic) {
				for _, r := range related {
					terms[r] = true
				}
			}
		}
	}
	if len(terms) == 0 {
		return nil
	}

	var out []Result
	for _, entry := range entries {
		haystack := strings.ToLower(entry.Question + " " + entry.Answer)
		for term := range terms {
			if strings.Contains(haystack, term) {
				out = append(out, Result{
					Source: entry.Source, Question: entry.Question, Answer: entry.Answer,
					Score: relatedScore, MatchType: "related",
				})
				break
			}
		}
	}
	return out
}

// rank deduplicates candidates by answer prefix (keep-first), sorts
// descending by score, and truncates.
func rank(candidates []Result, maxResults int) []Result {
	seen := make(map[string]bool, len(candidates))
	deduped := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		key := c.Answer
		if len(key) > dedupePrefixLen {
			key = key[:dedupePrefixLen]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, c)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Score > deduped[j].Score
	})
	if len(deduped) > maxResults {
		deduped = deduped[:maxResults]
	}
	return deduped
}

// significantTokens lower-cases, strips punctuation, and drops stop
// words and one-letter tokens.
func significantTokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	var tokens []string
	seen := make(map[string]bool)
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()[]")
		if len(f) < 2 || stopWords[f] || seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}

var stopWords = map[string]bool{
	// Indonesian
	"yang": true, "dan": true, "di": true, "ke": true, "dari": true,
	"itu": true, "ini": true, "apa": true, "adalah": true, "dengan": true,
	"untuk": true, "pada": true, "atau": true, "juga": true, "saya": true,
	"kamu": true, "anda": true, "bisa": true, "akan": true, "sudah": true,
	// English
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"is": true, "are": true, "was": true, "to": true, "of": true,
	"in": true, "on": true, "at": true, "for": true, "with": true,
	"what": true, "how": true, "why": true, "you": true, "your": true,
}

// relatedTopics is the static topic → related-terms map for the
// comprehensive search depth.
var relatedTopics = map[string][]string{
	"ai":         {"machine learning", "nlp", "deep learning", "kecerdasan buatan"},
	"kecerdasan": {"ai", "machine learning", "nlp"},
	"web":        {"javascript", "react", "html", "css", "frontend", "backend"},
	"javascript": {"react", "node", "web", "frontend"},
	"data":       {"data science", "statistika", "machine learning", "sql"},
	"belajar":    {"kursus", "tutorial", "latihan", "materi"},
	"proyek":     {"portofolio", "aplikasi", "website"},
}
