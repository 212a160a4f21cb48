package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rizkyfauzan/nalar"
)

var (
	cfgFile  string
	language string
)

var rootCmd = &cobra.Command{
	Use:   "nalar",
	Short: "Rule-based NLU and knowledge retrieval for a bilingual help assistant",
	Long: `Nalar analyzes Indonesian and English utterances: it redacts PII,
corrects spelling against the knowledge base, classifies intent and
sentence type, and retrieves ranked answers from the knowledge base
and the concept graph.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "analysis language (id or en)")
}

// loadEngineConfig builds the effective config: file, then NALAR_* env,
// then flags, in increasing precedence.
func loadEngineConfig() (nalar.Config, error) {
	cfg := nalar.DefaultConfig()
	if cfgFile != "" {
		data, err := os.ReadFile(cfgFile)
		if err != nil {
			return cfg, err
		}
		switch strings.ToLower(filepath.Ext(cfgFile)) {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing yaml config: %w", err)
			}
		default:
			if err := json.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing json config: %w", err)
			}
		}
	}

	if v := os.Getenv("NALAR_KB_PATH"); v != "" {
		cfg.KBPath = v
	}
	if v := os.Getenv("NALAR_GRAPH_PATH"); v != "" {
		cfg.GraphPath = v
	}
	if v := os.Getenv("NALAR_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if language != "" {
		cfg.Language = language
	}
	return cfg, nil
}

func newEngine() (nalar.Engine, nalar.Config, error) {
	cfg, err := loadEngineConfig()
	if err != nil {
		return nil, cfg, err
	}
	engine, err := nalar.New(cfg)
	if err != nil {
		return nil, cfg, err
	}
	return engine, cfg, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
