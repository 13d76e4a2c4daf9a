// Package store holds the process-lifetime task collection and the
// per-conversation suggestion buffers. The task store is backed by an
// in-memory SQLite database: rows never touch disk, but AUTOINCREMENT gives
// us monotonic ids that survive deletes, and the single-connection setup
// serializes mutations.
package store

import (
	"context"
	"database/sql"
	"fmt"

	embedsql "github.com/ldi/tasktalk/embed/sql"
	_ "modernc.org/sqlite"
)

type Store struct {
	*sql.DB
	Suggestions *SuggestionBuffer
}

// Open creates a fresh in-memory task store. Every Store owns its own
// database; two stores never share tasks.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// A single connection keeps the in-memory database alive and gives us
	// single-writer semantics.
	db.SetMaxOpenConns(1)

	return &Store{
		DB:          db,
		Suggestions: NewSuggestionBuffer(),
	}, nil
}

func (s *Store) Migrate(ctx context.Context, schema string) error {
	if _, err := s.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func (s *Store) Init(ctx context.Context) error {
	return s.Migrate(ctx, embedsql.Schema)
}
