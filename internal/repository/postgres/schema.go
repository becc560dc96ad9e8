package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the docs and doc_versions tables and their
// constraints if they do not exist yet. The slug unique index and the
// (doc_id, version) unique index are load-bearing: they are the backstop
// that turns concurrent-create races into conflicts instead of corruption.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id uuid PRIMARY KEY,
				slug text NOT NULL,
				current_version_id uuid,
				title text NOT NULL,
				summary text NOT NULL,
				project text,
				created_at timestamptz NOT NULL DEFAULT now(),
				updated_at timestamptz NOT NULL DEFAULT now()
			)
		`, tables.Docs),
		fmt.Sprintf(`
			CREATE UNIQUE INDEX IF NOT EXISTS %s_slug_unique ON %s (slug)
		`, tables.Docs, tables.Docs),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_updated_at_idx ON %s (updated_at)
		`, tables.Docs, tables.Docs),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id uuid PRIMARY KEY,
				doc_id uuid NOT NULL REFERENCES %s (id) ON DELETE CASCADE,
				version integer NOT NULL,
				title text NOT NULL,
				summary text NOT NULL,
				content text NOT NULL,
				created_at timestamptz NOT NULL DEFAULT now()
			)
		`, tables.DocVersions, tables.Docs),
		fmt.Sprintf(`
			CREATE UNIQUE INDEX IF NOT EXISTS %s_doc_id_version_unique ON %s (doc_id, version)
		`, tables.DocVersions, tables.DocVersions),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
