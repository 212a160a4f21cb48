package nalar

import (
	"github.com/rizkyfauzan/nalar/classify"
	"github.com/rizkyfauzan/nalar/corpus"
	"github.com/rizkyfauzan/nalar/detect"
	"github.com/rizkyfauzan/nalar/lexicon"
	"github.com/rizkyfauzan/nalar/query"
	"github.com/rizkyfauzan/nalar/redact"
	"github.com/rizkyfauzan/nalar/spell"
)

// Result is the structured outcome of one pipeline run. It is
// constructed fresh per call and never mutated after return.
type Result struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`

	Detections       []redact.Match     `json:"detections,omitempty"`
	CorefMapping     map[string]string  `json:"coref_mapping,omitempty"`
	SpellCorrections []spell.Correction `json:"spell_corrections,omitempty"`

	Sentiment detect.SentimentResult `json:"sentiment"`
	Language  detect.LanguageResult  `json:"language"`

	Lexical       *LexicalAnalysis `json:"lexical,omitempty"`
	CorpusMatches []corpus.Match   `json:"corpus_matches,omitempty"`

	Intent       *classify.IntentResult       `json:"intent,omitempty"`
	Entities     []classify.Entity            `json:"entities,omitempty"`
	SentenceType *classify.SentenceTypeResult `json:"sentence_type,omitempty"`

	Confidence       float64  `json:"confidence"`
	ReadyToRespond   bool     `json:"ready_to_respond"`
	ResponseApproach string   `json:"response_approach"`
	Recommendations  []string `json:"recommendations,omitempty"`
}

// LexicalAnalysis summarizes per-word dictionary lookups over the
// normalized utterance. Richness is the known-word ratio.
type LexicalAnalysis struct {
	Meanings []lexicon.Meaning `json:"meanings,omitempty"`
	Known    int               `json:"known"`
	Total    int               `json:"total"`
	Richness float64           `json:"richness"`
}

// QueryMatch is one ranked retrieval result, with a snippet of the most
// relevant sentences when the full answer is long.
type QueryMatch struct {
	query.Result
	Snippet string `json:"snippet,omitempty"`
}
