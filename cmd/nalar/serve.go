package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/rizkyfauzan/nalar"
)

var serveAddr string

// serveCmd runs a bare development server. The production binary in
// cmd/server adds auth, CORS, request ids, and interaction logging.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the NLU and retrieval API over HTTP (development mode)",
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

		engine, cfg, err := newEngine()
		if err != nil {
			return err
		}

		mux := http.NewServeMux()
		mux.HandleFunc("POST /nlu", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Text string `json:"text"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
				serveError(w, "text is required")
				return
			}
			serveJSON(w, engine.Process(req.Text))
		})
		mux.HandleFunc("POST /query", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Text  string `json:"text"`
				Depth string `json:"depth,omitempty"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
				serveError(w, "text is required")
				return
			}
			var opts []nalar.QueryOption
			if req.Depth != "" {
				opts = append(opts, nalar.WithDepth(req.Depth))
			}
			serveJSON(w, map[string]interface{}{"results": engine.Query(req.Text, opts...)})
		})
		mux.HandleFunc("POST /answer", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Question string `json:"question"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
				serveError(w, "question is required")
				return
			}
			serveJSON(w, engine.Answer(req.Question))
		})
		mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
			serveJSON(w, map[string]string{"status": "ok"})
		})

		slog.Info("dev server starting", "addr", serveAddr, "language", cfg.Language)
		return http.ListenAndServe(serveAddr, mux)
	},
}

func serveJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func serveError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
