package store

import (
	"context"
	"fmt"
	"time"
)

// Document statuses. New documents always start as drafts; later workflow
// (sending, invoicing) is owned by other tools reading the same table.
const DocumentStatusDraft = "BROUILLON"

// Document is a persisted commercial artifact: a quote, a payment reminder or
// a material order, with the classifier's structured details as JSON content.
type Document struct {
	ID        int64     `db:"id"`
	MemberID  int64     `db:"membre_id"`
	Type      string    `db:"type_doc"`
	Content   string    `db:"contenu_json"`
	Status    string    `db:"statut"`
	CreatedAt time.Time `db:"date_creation"`
}

const sqlCreateDocument = `
INSERT INTO documents (membre_id, type_doc, contenu_json, statut)
VALUES ($1, $2, $3, $4)
RETURNING id, membre_id, type_doc, contenu_json, statut, date_creation`

func (s *Store) CreateDocument(ctx context.Context, memberID int64, docType, content string) (Document, error) {
	var doc Document
	err := s.db.GetContext(ctx, &doc, sqlCreateDocument, memberID, docType, content, DocumentStatusDraft)
	if err != nil {
		s.logger.Error(ctx, "failed to create document", err)
		return Document{}, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}
