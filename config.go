package nalar

// Config holds all configuration for the nalar engine.
type Config struct {
	// Language is the primary analysis language ("id" or "en").
	Language string `json:"language" yaml:"language"`

	// Component toggles for the NLU pipeline.
	IncludeLexical bool `json:"include_lexical" yaml:"include_lexical"`
	IncludeCorpus  bool `json:"include_corpus" yaml:"include_corpus"`
	IncludeNLU     bool `json:"include_nlu" yaml:"include_nlu"`

	// Threshold is the minimum corpus similarity kept by the pipeline.
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// QueryThreshold is the minimum fuzzy similarity kept by the query
	// engine.
	QueryThreshold float64 `json:"query_threshold" yaml:"query_threshold"`

	// SpellMaxDist is the maximum edit distance for spell correction.
	SpellMaxDist int `json:"spell_max_dist" yaml:"spell_max_dist"`

	// ContextWindow is the number of recent turns scanned for
	// coreference antecedents.
	ContextWindow int `json:"context_window" yaml:"context_window"`

	// Query defaults.
	Depth      string `json:"depth" yaml:"depth"` // quick, standard, comprehensive
	MaxResults int    `json:"max_results" yaml:"max_results"`
	UseCache   bool   `json:"use_cache" yaml:"use_cache"`

	// Data file paths. Empty paths fall back to the built-in datasets
	// (empty knowledge base, default graph).
	KBPath    string `json:"kb_path" yaml:"kb_path"`
	GraphPath string `json:"graph_path" yaml:"graph_path"`

	// StorePath is the optional interaction-log database, consumed by
	// the server and CLI. The pipeline itself never touches it.
	StorePath string `json:"store_path" yaml:"store_path"`
}

// DefaultConfig returns a Config with every pipeline component enabled.
func DefaultConfig() Config {
	return Config{
		Language:       "id",
		IncludeLexical: true,
		IncludeCorpus:  true,
		IncludeNLU:     true,
		Threshold:      0.3,
		QueryThreshold: 0.6,
		SpellMaxDist:   2,
		ContextWindow:  5,
		Depth:          "standard",
		MaxResults:     5,
		UseCache:       true,
	}
}

// applyDefaults fills zero values so a partially specified Config still
// yields a working engine.
func (c *Config) applyDefaults() {
	if c.Language == "" {
		c.Language = "id"
	}
	if c.Threshold <= 0 {
		c.Threshold = 0.3
	}
	if c.QueryThreshold <= 0 {
		c.QueryThreshold = 0.6
	}
	if c.SpellMaxDist <= 0 {
		c.SpellMaxDist = 2
	}
	if c.ContextWindow <= 0 {
		c.ContextWindow = 5
	}
	if c.Depth == "" {
		c.Depth = "standard"
	}
	if c.MaxResults <= 0 {
		c.MaxResults = 5
	}
}
