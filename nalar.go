// Package nalar is a rule-based NLU and knowledge-retrieval engine for
// a bilingual (Indonesian/English) help assistant. It redacts PII,
// resolves pronouns against conversation history, corrects spelling
// from the knowledge-base vocabulary, classifies intent and sentence
// type, extracts entities, and retrieves ranked answers from the
// knowledge base and the concept graph.
package nalar

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rizkyfauzan/nalar/classify"
	"github.com/rizkyfauzan/nalar/coref"
	"github.com/rizkyfauzan/nalar/corpus"
	"github.com/rizkyfauzan/nalar/detect"
	"github.com/rizkyfauzan/nalar/graph"
	"github.com/rizkyfauzan/nalar/kb"
	"github.com/rizkyfauzan/nalar/lexicon"
	"github.com/rizkyfauzan/nalar/query"
	"github.com/rizkyfauzan/nalar/redact"
	"github.com/rizkyfauzan/nalar/spell"
)

// Engine is the main entry point. All methods are pure in-memory
// computation and safe for concurrent use; the only shared mutable
// state is the query cache, which locks internally.
type Engine interface {
	// Process runs the full NLU pipeline over one utterance. It always
	// returns a well-formed result, never an error: malformed input
	// yields a low-confidence result.
	Process(text string, opts ...ProcessOption) *Result

	// Query runs multi-strategy ranked retrieval over the knowledge base.
	Query(text string, opts ...QueryOption) []QueryMatch

	// Answer composes a knowledge-graph answer for a free-text question.
	// A miss is a valid zero-confidence result.
	Answer(question string) graph.Answer

	// KB returns the loaded knowledge-base document.
	KB() *kb.Document

	// Graph returns the concept graph snapshot.
	Graph() *graph.Graph
}

// Option configures engine construction, mainly to inject in-memory
// datasets instead of loading from the configured paths.
type Option func(*engine)

// WithDocument uses the given knowledge base instead of loading KBPath.
func WithDocument(doc *kb.Document) Option {
	return func(e *engine) { e.doc = doc }
}

// WithGraph uses the given graph instead of loading GraphPath.
func WithGraph(g *graph.Graph) Option {
	return func(e *engine) { e.kg = g }
}

// WithCorpus replaces the built-in example corpus.
func WithCorpus(ix *corpus.Index) Option {
	return func(e *engine) { e.corpusIx = ix }
}

type engine struct {
	cfg        Config
	doc        *kb.Document
	vocab      map[string]struct{}
	lex        *lexicon.Store
	corpusIx   *corpus.Index
	classifier *classify.Classifier
	kg         *graph.Graph
	qe         *query.Engine
	resolvers  map[string]*coref.Resolver
}

// New creates an engine from the configuration, loading the knowledge
// base and graph from the configured paths unless overridden by options.
func New(cfg Config, opts ...Option) (Engine, error) {
	cfg.applyDefaults()
	e := &engine{cfg: cfg}
	for _, o := range opts {
		o(e)
	}

	if e.doc == nil {
		if cfg.KBPath != "" {
			doc, err := kb.Load(cfg.KBPath)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrKBLoad, err)
			}
			e.doc = doc
		} else {
			e.doc = &kb.Document{}
		}
	}
	if e.kg == nil {
		if cfg.GraphPath != "" {
			g, err := graph.Load(cfg.GraphPath)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrGraphLoad, err)
			}
			e.kg = g
		} else {
			e.kg = graph.Default()
		}
	}
	if e.corpusIx == nil {
		e.corpusIx = corpus.NewIndex()
	}

	e.lex = lexicon.NewStore()
	e.classifier = classify.New()
	e.qe = query.New(e.lex)
	e.vocab = spell.BuildVocabulary(e.doc)
	e.resolvers = map[string]*coref.Resolver{
		"id": coref.NewResolver("id", cfg.ContextWindow),
		"en": coref.NewResolver("en", cfg.ContextWindow),
	}

	slog.Debug("nalar: engine ready",
		"kb_entries", len(e.doc.Entries()), "vocab", len(e.vocab), "graph_nodes", e.kg.Len())
	return e, nil
}

// ProcessOption overrides pipeline defaults for a single call.
type ProcessOption func(*processOptions)

type processOptions struct {
	language       string
	includeLexical bool
	includeCorpus  bool
	includeNLU     bool
	threshold      float64
	spellMaxDist   int
	vocab          map[string]struct{}
	context        coref.ContextProvider
	pii            redact.Options
}

// WithLanguage overrides the analysis language for this call.
func WithLanguage(lang string) ProcessOption {
	return func(o *processOptions) { o.language = lang }
}

// WithThreshold overrides the corpus similarity threshold.
func WithThreshold(t float64) ProcessOption {
	return func(o *processOptions) { o.threshold = t }
}

// WithVocabulary overrides the spell-correction vocabulary. An empty
// vocabulary disables correction.
func WithVocabulary(vocab map[string]struct{}) ProcessOption {
	return func(o *processOptions) { o.vocab = vocab }
}

// WithContext supplies conversation history for coreference resolution.
func WithContext(p coref.ContextProvider) ProcessOption {
	return func(o *processOptions) { o.context = p }
}

// WithPII overrides the redaction whitelist and placeholder map.
func WithPII(opts redact.Options) ProcessOption {
	return func(o *processOptions) { o.pii = opts }
}

// WithSpellMaxDist overrides the maximum correction edit distance.
func WithSpellMaxDist(n int) ProcessOption {
	return func(o *processOptions) { o.spellMaxDist = n }
}

// WithoutLexical skips the lexical analysis stage.
func WithoutLexical() ProcessOption {
	return func(o *processOptions) { o.includeLexical = false }
}

// WithoutCorpus skips the corpus similarity stage.
func WithoutCorpus() ProcessOption {
	return func(o *processOptions) { o.includeCorpus = false }
}

// WithoutNLU skips intent, entity, and sentence-type classification.
func WithoutNLU() ProcessOption {
	return func(o *processOptions) { o.includeNLU = false }
}

// Process runs the pipeline: redact, resolve, correct, normalize,
// detect, then the enabled analysis components, and integrates their
// confidences into one score. A failing stage contributes nothing; the
// rest of the pipeline proceeds.
func (e *engine) Process(text string, opts ...ProcessOption) *Result {
	o := processOptions{
		language:       e.cfg.Language,
		includeLexical: e.cfg.IncludeLexical,
		includeCorpus:  e.cfg.IncludeCorpus,
		includeNLU:     e.cfg.IncludeNLU,
		threshold:      e.cfg.Threshold,
		spellMaxDist:   e.cfg.SpellMaxDist,
		vocab:          e.vocab,
	}
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{Original: text}
	current := text

	guard("redact", func() {
		redacted, detections := redact.Redact(current, o.pii)
		current = redacted
		res.Detections = detections
	})

	if o.context != nil {
		guard("coref", func() {
			resolver := e.resolvers[o.language]
			if resolver == nil {
				resolver = coref.NewResolver(o.language, e.cfg.ContextWindow)
			}
			resolved, mapping := resolver.Resolve(current, o.context)
			current = resolved
			res.CorefMapping = mapping
		})
	}

	if len(o.vocab) > 0 {
		guard("spell", func() {
			corrected, corrections := spell.CorrectText(current, o.vocab, o.spellMaxDist)
			current = corrected
			res.SpellCorrections = corrections
		})
	}

	normalized := strings.ToLower(strings.TrimSpace(current))
	res.Normalized = normalized

	var contributions []float64

	guard("detect", func() {
		res.Sentiment = detect.Sentiment(normalized)
		res.Language = detect.Language(normalized)
		contributions = append(contributions, res.Sentiment.Confidence, res.Language.Confidence)
	})

	if o.includeLexical {
		guard("lexical", func() {
			la := e.analyzeLexical(normalized, o.language)
			res.Lexical = &la
			contributions = append(contributions, la.Richness)
		})
	}

	if o.includeCorpus {
		guard("corpus", func() {
			res.CorpusMatches = e.corpusIx.Similar(normalized, o.threshold)
			top := 0.0
			if len(res.CorpusMatches) > 0 {
				top = res.CorpusMatches[0].Similarity
			}
			contributions = append(contributions, top)
		})
	}

	if o.includeNLU {
		guard("nlu", func() {
			intent := e.classifier.Intent(normalized)
			res.Intent = &intent
			// Entity patterns key off capitalization, so they run on the
			// pre-normalization text.
			res.Entities = e.classifier.Entities(current)
			st := e.classifier.SentenceType(current)
			res.SentenceType = &st
			contributions = append(contributions, intent.Confidence)
		})
	}

	if len(contributions) > 0 {
		sum := 0.0
		for _, c := range contributions {
			sum += c
		}
		res.Confidence = sum / float64(len(contributions))
	}
	if res.Confidence > 1 {
		res.Confidence = 1
	}
	res.ReadyToRespond = res.Confidence > 0.5
	res.ResponseApproach = approachFor(res)
	res.Recommendations = recommendationsFor(res, o)
	return res
}

// guard isolates one pipeline stage: a panic inside the stage is logged
// and the stage's contribution is simply absent.
func guard(stage string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("pipeline stage failed", "stage", stage, "panic", r)
		}
	}()
	fn()
}

func (e *engine) analyzeLexical(normalized, lang string) LexicalAnalysis {
	var la LexicalAnalysis
	for _, tok := range strings.Fields(normalized) {
		tok = strings.Trim(tok, ".,;:!?\"'()[]")
		if tok == "" {
			continue
		}
		la.Total++
		m := e.lex.Meaning(tok, lang)
		la.Meanings = append(la.Meanings, m)
		if m.Known {
			la.Known++
		}
	}
	if la.Total > 0 {
		la.Richness = float64(la.Known) / float64(la.Total)
	}
	if la.Richness > 1 {
		la.Richness = 1
	}
	return la
}

func approachFor(res *Result) string {
	if res.Intent != nil {
		switch res.Intent.Intent {
		case "ask_question":
			return "answer_question"
		case "request_information":
			return "provide_information"
		case "greeting":
			return "reciprocate_greeting"
		case "request_help":
			return "offer_help"
		}
	}
	if len(res.CorpusMatches) > 0 {
		return "reference_corpus"
	}
	return "general_response"
}

func recommendationsFor(res *Result, o processOptions) []string {
	var recs []string
	if o.includeNLU && res.Intent != nil && res.Intent.Confidence < 0.7 {
		recs = append(recs, "clarify_intent")
	}
	if o.includeCorpus && len(res.CorpusMatches) == 0 {
		recs = append(recs, "no_corpus_match")
	}
	if o.includeLexical && res.Lexical != nil && res.Lexical.Richness < 0.3 {
		recs = append(recs, "low_lexical_richness")
	}
	if o.includeNLU && len(res.Entities) == 0 {
		recs = append(recs, "no_entities")
	}
	return recs
}

// QueryOption overrides retrieval defaults for a single call.
type QueryOption func(*queryOptions)

type queryOptions struct {
	depth      string
	threshold  float64
	maxResults int
	useCache   bool
}

// WithDepth sets the search depth: "quick", "standard", or
// "comprehensive".
func WithDepth(depth string) QueryOption {
	return func(o *queryOptions) { o.depth = depth }
}

// WithFuzzyThreshold sets the minimum fuzzy-match similarity.
func WithFuzzyThreshold(t float64) QueryOption {
	return func(o *queryOptions) { o.threshold = t }
}

// WithMaxResults caps the result list.
func WithMaxResults(n int) QueryOption {
	return func(o *queryOptions) { o.maxResults = n }
}

// WithCache toggles the result cache for this call.
func WithCache(use bool) QueryOption {
	return func(o *queryOptions) { o.useCache = use }
}

// Query runs ranked retrieval over the knowledge base. Long answers
// carry a snippet of their most relevant sentences.
func (e *engine) Query(text string, opts ...QueryOption) []QueryMatch {
	o := queryOptions{
		depth:      e.cfg.Depth,
		threshold:  e.cfg.QueryThreshold,
		maxResults: e.cfg.MaxResults,
		useCache:   e.cfg.UseCache,
	}
	for _, opt := range opts {
		opt(&o)
	}

	results := e.qe.Query(text, e.doc, query.Options{
		Depth:      o.depth,
		Threshold:  o.threshold,
		MaxResults: o.maxResults,
		UseCache:   o.useCache,
		Language:   e.cfg.Language,
	})

	out := make([]QueryMatch, 0, len(results))
	for _, r := range results {
		m := QueryMatch{Result: r}
		if len(r.Answer) > snippetMaxLen {
			m.Snippet = answerSnippet(r.Answer, text)
		}
		out = append(out, m)
	}
	return out
}

// Answer composes a knowledge-graph answer for a free-text question.
func (e *engine) Answer(question string) graph.Answer {
	return e.kg.AnswerQuestion(question)
}

// KB returns the loaded knowledge-base document.
func (e *engine) KB() *kb.Document {
	return e.doc
}

// Graph returns the concept graph snapshot.
func (e *engine) Graph() *graph.Graph {
	return e.kg
}
