package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rizkyfauzan/nalar/redact"
)

var redactCmd = &cobra.Command{
	Use:   "redact [text]",
	Short: "Detect and redact PII in one utterance",
	Long: `Replace emails, phone numbers, ID numbers, and addresses with typed
placeholders and print the redacted text with the detection list.

Example:
  nalar redact "email saya budi@example.com, hp 08123456789"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		redacted, detections := redact.Redact(text, redact.Options{})
		return printJSON(map[string]interface{}{
			"redacted":   redacted,
			"detections": detections,
		})
	},
}

func init() {
	rootCmd.AddCommand(redactCmd)
}
