package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rizkyfauzan/nalar/store"
)

var askCmd = &cobra.Command{
	Use:   "ask [text]",
	Short: "Run the full NLU pipeline over one utterance",
	Long: `Run the full pipeline over one utterance and print the structured
result as JSON: redaction, spell correction, sentiment, language,
lexical analysis, corpus matches, intent, entities, and sentence type.

Examples:
  nalar ask "Apa itu kecerdasan buatan?"
  nalar ask --language en "how do I learn golang"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		engine, cfg, err := newEngine()
		if err != nil {
			return err
		}

		res := engine.Process(text)

		if cfg.StorePath != "" {
			st, err := store.Open(cfg.StorePath)
			if err != nil {
				return err
			}
			defer st.Close()
			logged := store.Interaction{
				Kind:       "nlu",
				Input:      text,
				Output:     res.Normalized,
				Language:   res.Language.Code,
				Sentiment:  res.Sentiment.Label,
				Confidence: res.Confidence,
				Approach:   res.ResponseApproach,
			}
			if res.Intent != nil {
				logged.Intent = res.Intent.Intent
			}
			if err := st.LogInteraction(context.Background(), logged); err != nil {
				slog.Warn("logging interaction", "error", err)
			}
		}

		return printJSON(res)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
