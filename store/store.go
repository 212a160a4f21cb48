// Package store persists the interaction log: every processed message
// and answered query, with confidence and routing metadata, in a local
// SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Interaction is one row of the interaction log.
type Interaction struct {
	ID         int64   `json:"id"`
	Kind       string  `json:"kind"` // "nlu", "query", "answer"
	Input      string  `json:"input"`
	Output     string  `json:"output"`
	Intent     string  `json:"intent,omitempty"`
	Language   string  `json:"language,omitempty"`
	Sentiment  string  `json:"sentiment,omitempty"`
	Confidence float64 `json:"confidence"`
	Approach   string  `json:"approach,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// Stats holds aggregate counts over the log.
type Stats struct {
	Total         int            `json:"total"`
	ByKind        map[string]int `json:"by_kind"`
	AvgConfidence float64        `json:"avg_confidence"`
}

// Store wraps the SQLite database holding the interaction log.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the log database at the given path and
// applies the schema.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	// Connection pool settings for SQLite.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LogInteraction appends one interaction to the log.
func (s *Store) LogInteraction(ctx context.Context, in Interaction) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO interactions (kind, input, output, intent, language, sentiment, confidence, approach)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, in.Kind, in.Input, in.Output, in.Intent, in.Language, in.Sentiment, in.Confidence, in.Approach)
	if err != nil {
		return fmt.Errorf("logging interaction: %w", err)
	}
	return nil
}

// Recent returns the latest n interactions, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Interaction, error) {
	if n <= 0 {
		n = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, input, output, intent, language, sentiment, confidence, approach, created_at
		FROM interactions ORDER BY id DESC LIMIT ?
	`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Interaction
	for rows.Next() {
		var in Interaction
		var intent, language, sentiment, approach sql.NullString
		if err := rows.Scan(&in.ID, &in.Kind, &in.Input, &in.Output,
			&intent, &language, &sentiment, &in.Confidence, &approach, &in.CreatedAt); err != nil {
			return nil, err
		}
		in.Intent = intent.String
		in.Language = language.String
		in.Sentiment = sentiment.String
		in.Approach = approach.String
		out = append(out, in)
	}
	return out, rows.Err()
}

// Stats aggregates the log: total rows, per-kind counts, and the mean
// confidence across all interactions.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{ByKind: make(map[string]int)}

	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(AVG(confidence), 0) FROM interactions")
	if err := row.Scan(&stats.Total, &stats.AvgConfidence); err != nil {
		return nil, fmt.Errorf("counting interactions: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT kind, COUNT(*) FROM interactions GROUP BY kind")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		stats.ByKind[kind] = count
	}
	return stats, rows.Err()
}

// Prune deletes log rows older than the cutoff and reports how many
// were removed.
func (s *Store) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM interactions WHERE created_at < ?",
		before.UTC().Format("2006-01-02 15:04:05"))
	if err != nil {
		return 0, fmt.Errorf("pruning interactions: %w", err)
	}
	return res.RowsAffected()
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS interactions (
    id INTEGER PRIMARY KEY,
    kind TEXT NOT NULL,
    input TEXT NOT NULL,
    output TEXT,
    intent TEXT,
    language TEXT,
    sentiment TEXT,
    confidence REAL DEFAULT 0,
    approach TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_interactions_kind ON interactions(kind);
CREATE INDEX IF NOT EXISTS idx_interactions_created ON interactions(created_at);
`
