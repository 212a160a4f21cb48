package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rizkyfauzan/nalar"
	"github.com/rizkyfauzan/nalar/store"
)

type handler struct {
	engine nalar.Engine
	store  *store.Store // nil when no interaction log is configured
}

func newHandler(e nalar.Engine, st *store.Store) *handler {
	return &handler{engine: e, store: st}
}

// POST /nlu
func (h *handler) handleNLU(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		Language string `json:"language,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	var opts []nalar.ProcessOption
	if req.Language != "" {
		opts = append(opts, nalar.WithLanguage(req.Language))
	}

	res := h.engine.Process(req.Text, opts...)

	h.log(r, store.Interaction{
		Kind:       "nlu",
		Input:      req.Text,
		Output:     res.Normalized,
		Intent:     intentOf(res),
		Language:   res.Language.Code,
		Sentiment:  res.Sentiment.Label,
		Confidence: res.Confidence,
		Approach:   res.ResponseApproach,
	})

	writeJSON(w, http.StatusOK, res)
}

// POST /query
func (h *handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text       string  `json:"text"`
		Depth      string  `json:"depth,omitempty"`
		MaxResults int     `json:"max_results,omitempty"`
		Threshold  float64 `json:"threshold,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	// Bound parameters.
	if req.MaxResults < 0 || req.MaxResults > 100 {
		req.MaxResults = 0 // use default
	}
	if req.Threshold < 0 || req.Threshold > 1 {
		req.Threshold = 0 // use default
	}

	var opts []nalar.QueryOption
	if req.Depth != "" {
		opts = append(opts, nalar.WithDepth(req.Depth))
	}
	if req.MaxResults > 0 {
		opts = append(opts, nalar.WithMaxResults(req.MaxResults))
	}
	if req.Threshold > 0 {
		opts = append(opts, nalar.WithFuzzyThreshold(req.Threshold))
	}

	matches := h.engine.Query(req.Text, opts...)

	logged := store.Interaction{Kind: "query", Input: req.Text}
	if len(matches) > 0 {
		logged.Output = matches[0].Answer
		logged.Confidence = matches[0].Score
	}
	h.log(r, logged)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results": matches,
	})
}

// POST /answer
func (h *handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	ans := h.engine.Answer(req.Question)

	h.log(r, store.Interaction{
		Kind:       "answer",
		Input:      req.Question,
		Output:     ans.Answer,
		Confidence: ans.Confidence,
	})

	writeJSON(w, http.StatusOK, ans)
}

// GET /stats
func (h *handler) handleStats(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "interaction log not configured")
		return
	}
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read stats")
		slog.Error("stats error", "error", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// GET /healthz
func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// log appends an interaction to the configured log. Logging failures are
// reported but never fail the request.
func (h *handler) log(r *http.Request, in store.Interaction) {
	if h.store == nil {
		return
	}
	if err := h.store.LogInteraction(r.Context(), in); err != nil {
		slog.Warn("logging interaction", "kind", in.Kind, "error", err)
	}
}

func intentOf(res *nalar.Result) string {
	if res.Intent == nil {
		return ""
	}
	return res.Intent.Intent
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": fmt.Sprintf("%s", msg)})
}
