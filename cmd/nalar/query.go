package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rizkyfauzan/nalar"
)

var (
	queryDepth      string
	queryMax        int
	queryThreshold  float64
	queryNoCache    bool
	answerAsConcept bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search the knowledge base with ranked multi-strategy retrieval",
	Long: `Search the knowledge base and print ranked matches as JSON. Depth
controls the strategy set: "quick" skips fuzzy matching,
"comprehensive" adds related-topic expansion.

Examples:
  nalar query "pengalaman kerja"
  nalar query --depth comprehensive --max 10 "belajar web"
  nalar query --answer "kecerdasan buatan"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		engine, _, err := newEngine()
		if err != nil {
			return err
		}

		if answerAsConcept {
			return printJSON(engine.Answer(text))
		}

		var opts []nalar.QueryOption
		if queryDepth != "" {
			opts = append(opts, nalar.WithDepth(queryDepth))
		}
		if queryMax > 0 {
			opts = append(opts, nalar.WithMaxResults(queryMax))
		}
		if queryThreshold > 0 {
			opts = append(opts, nalar.WithFuzzyThreshold(queryThreshold))
		}
		if queryNoCache {
			opts = append(opts, nalar.WithCache(false))
		}

		return printJSON(engine.Query(text, opts...))
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryDepth, "depth", "", "search depth: quick, standard, comprehensive")
	queryCmd.Flags().IntVar(&queryMax, "max", 0, "maximum number of results")
	queryCmd.Flags().Float64Var(&queryThreshold, "threshold", 0, "minimum fuzzy-match similarity (0..1)")
	queryCmd.Flags().BoolVar(&queryNoCache, "no-cache", false, "bypass the result cache")
	queryCmd.Flags().BoolVar(&answerAsConcept, "answer", false, "answer from the concept graph instead of the knowledge base")
	rootCmd.AddCommand(queryCmd)
}
