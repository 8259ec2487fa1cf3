package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the five content tables if they do not exist.
// Child tables carry ON DELETE CASCADE foreign keys; the reconciler
// still deletes children explicitly inside its transaction so the reset
// does not depend on declared cascades alone.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				user_id TEXT NOT NULL,
				title VARCHAR(255) NOT NULL,
				doc_type VARCHAR(10) NOT NULL,
				main_topic TEXT NOT NULL,
				status VARCHAR(50) NOT NULL DEFAULT 'configured',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Projects),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_user_id_idx ON %s (user_id, created_at DESC)`,
			tables.Projects, tables.Projects),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				project_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				"index" INTEGER NOT NULL,
				title VARCHAR(255) NOT NULL,
				content TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (project_id, "index")
			)`, tables.Sections, tables.Projects),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				section_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				version INTEGER NOT NULL,
				prompt TEXT NOT NULL,
				old_content TEXT,
				new_content TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (section_id, version)
			)`, tables.Revisions, tables.Sections),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				section_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				is_like BOOLEAN NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Feedback, tables.Sections),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id TEXT PRIMARY KEY,
				section_id TEXT NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				comment TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Comments, tables.Sections),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
