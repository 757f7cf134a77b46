package store

import (
	"context"
	"fmt"
	"time"
)

// JournalEntry is a persisted site-visit report (a chantier row). Entries are
// immutable once created.
type JournalEntry struct {
	ID        int64     `db:"id"`
	MemberID  int64     `db:"membre_id"`
	Summary   string    `db:"resume_texte"`
	AudioURL  string    `db:"audio_url"`
	CreatedAt time.Time `db:"date_creation"`
}

const sqlCreateJournalEntry = `
INSERT INTO chantiers (membre_id, resume_texte, audio_url)
VALUES ($1, $2, $3)
RETURNING id, membre_id, resume_texte, audio_url, date_creation`

func (s *Store) CreateJournalEntry(ctx context.Context, memberID int64, summary, audioURL string) (JournalEntry, error) {
	var entry JournalEntry
	err := s.db.GetContext(ctx, &entry, sqlCreateJournalEntry, memberID, summary, audioURL)
	if err != nil {
		s.logger.Error(ctx, "failed to create journal entry", err)
		return JournalEntry{}, fmt.Errorf("failed to create journal entry: %w", err)
	}
	return entry, nil
}
