package store

import (
	"context"
	"fmt"
)

// The membres directory is administered out-of-band; only the two tables this
// service writes to are bootstrapped here. Both statements are idempotent so
// EnsureSchema is safe to run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS chantiers (
		id SERIAL PRIMARY KEY,
		membre_id INTEGER NOT NULL,
		resume_texte TEXT NOT NULL,
		audio_url TEXT,
		date_creation TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id SERIAL PRIMARY KEY,
		membre_id INTEGER NOT NULL,
		type_doc TEXT NOT NULL,
		contenu_json TEXT NOT NULL,
		statut TEXT NOT NULL DEFAULT 'BROUILLON',
		date_creation TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema creates the journal and document tables if they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			s.logger.Error(ctx, "failed to ensure schema", err)
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}
