// Package postgres serves the task and board area from a PostgreSQL
// pool. It is an overlay backend: the remaining areas stay with the
// embedded database via storage.Compose.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// Store implements the task and board storage areas over pgx.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// Connect opens a pool against the given DSN and ensures the schema.
func Connect(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty postgres dsn")
	}
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	s := &Store{pool: pool, logger: logger}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the pool.
func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS boards (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            color TEXT NOT NULL DEFAULT '#3B82F6',
            is_default BOOLEAN NOT NULL DEFAULT FALSE,
            is_archived BOOLEAN NOT NULL DEFAULT FALSE,
            columns JSONB NOT NULL DEFAULT '[]',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );`,
		`CREATE TABLE IF NOT EXISTS tasks (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL,
            board_id BIGINT NOT NULL DEFAULT 0,
            sprint_id BIGINT NOT NULL DEFAULT 0,
            epic_id BIGINT NOT NULL DEFAULT 0,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'new',
            priority INT NOT NULL DEFAULT 2,
            assignee_id BIGINT NOT NULL DEFAULT 0,
            creator_id BIGINT NOT NULL DEFAULT 0,
            due_date TIMESTAMPTZ,
            tags JSONB NOT NULL DEFAULT '[]',
            checklist JSONB NOT NULL DEFAULT '[]',
            comments JSONB NOT NULL DEFAULT '[]',
            is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
            story_points DOUBLE PRECISION NOT NULL DEFAULT 0,
            estimated_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
            actual_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_company ON tasks(company_id);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_company_status ON tasks(company_id, status);`,
		`CREATE TABLE IF NOT EXISTS sprints (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL,
            name TEXT NOT NULL,
            goal TEXT NOT NULL DEFAULT '',
            start_date TIMESTAMPTZ,
            end_date TIMESTAMPTZ,
            status TEXT NOT NULL DEFAULT 'planning',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );`,
		`CREATE TABLE IF NOT EXISTS epics (
            id BIGSERIAL PRIMARY KEY,
            company_id BIGINT NOT NULL,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            color TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'active',
            start_date TIMESTAMPTZ,
            end_date TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );`,
	}

	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("postgres migration failed: %w", err)
		}
	}
	return nil
}

// jsonValue marshals a slice for a JSONB column; nil becomes []. A
// string parameter reaches the server as jsonb text, where []byte would
// be taken for bytea.
func jsonValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return "[]"
	}
	return string(b)
}

func fromJSON[E any](raw []byte) []E {
	if len(raw) == 0 {
		return nil
	}
	var out []E
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
