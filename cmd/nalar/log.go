package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rizkyfauzan/nalar/store"
)

var (
	logLimit int
	logStats bool
	logPrune time.Duration
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Inspect the interaction log",
	Long: `Print recent interactions from the configured store as JSON.

Examples:
  nalar log --config nalar.yaml
  nalar log --stats
  nalar log --prune 720h`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadEngineConfig()
		if err != nil {
			return err
		}
		if cfg.StorePath == "" {
			return errors.New("no store_path configured (set it in the config file or NALAR_STORE_PATH)")
		}

		st, err := store.Open(cfg.StorePath)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()

		if logPrune > 0 {
			removed, err := st.Prune(ctx, time.Now().Add(-logPrune))
			if err != nil {
				return err
			}
			fmt.Printf("pruned %d interactions older than %s\n", removed, logPrune)
			return nil
		}

		if logStats {
			stats, err := st.Stats(ctx)
			if err != nil {
				return err
			}
			return printJSON(stats)
		}

		recent, err := st.Recent(ctx, logLimit)
		if err != nil {
			return err
		}
		return printJSON(recent)
	},
}

func init() {
	logCmd.Flags().IntVar(&logLimit, "limit", 20, "number of interactions to show")
	logCmd.Flags().BoolVar(&logStats, "stats", false, "print aggregate stats instead of rows")
	logCmd.Flags().DurationVar(&logPrune, "prune", 0, "delete interactions older than this duration")
	rootCmd.AddCommand(logCmd)
}
