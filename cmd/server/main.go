package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rizkyfauzan/nalar"
	"github.com/rizkyfauzan/nalar/store"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (JSON or YAML)")
	addr := flag.String("addr", ":8080", "Listen address")
	flag.Parse()

	// Structured JSON logging.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfg := nalar.DefaultConfig()
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			slog.Error("loading config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}

	// Override from environment variables.
	if v := os.Getenv("NALAR_LANGUAGE"); v != "" {
		cfg.Language = v
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

	apiKey := os.Getenv("NALAR_API_KEY")
	corsOrigins := os.Getenv("NALAR_CORS_ORIGINS")

	engine, err := nalar.New(cfg)
	if err != nil {
		slog.Error("creating engine", "error", err)
		os.Exit(1)
	}

	var st *store.Store
	if cfg.StorePath != "" {
		st, err = store.Open(cfg.StorePath)
		if err != nil {
			slog.Error("opening interaction log", "path", cfg.StorePath, "error", err)
			os.Exit(1)
		}
		defer st.Close()
	}

	h := newHandler(engine, st)
	mux := http.NewServeMux()

	mux.HandleFunc("POST /nlu", h.handleNLU)
	mux.HandleFunc("POST /query", h.handleQuery)
	mux.HandleFunc("POST /answer", h.handleAnswer)
	mux.HandleFunc("GET /stats", h.handleStats)
	mux.HandleFunc("GET /healthz", h.handleHealth)

	// Middleware chain: recovery -> request-id -> cors -> auth -> logging -> mux
	var handler http.Handler = mux
	handler = logMiddleware(handler)
	handler = authMiddleware(apiKey, handler)
	handler = corsMiddleware(corsOrigins, handler)
	handler = requestIDMiddleware(handler)
	handler = recoveryMiddleware(handler)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on SIGTERM/SIGINT.
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", *addr, "language", cfg.Language)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

// loadConfig decodes a JSON or YAML config file, chosen by extension.
func loadConfig(path string, cfg *nalar.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing yaml config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing json config: %w", err)
		}
	}
	return nil
}
