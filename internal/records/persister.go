package records

import (
	"bati-server/internal/classify"
	"bati-server/internal/identity"
	"bati-server/internal/observability"
	"bati-server/internal/store"
	"context"
	"fmt"
)

// RecordStore defines the writes the persister needs.
type RecordStore interface {
	CreateJournalEntry(ctx context.Context, memberID int64, summary, audioURL string) (store.JournalEntry, error)
	CreateDocument(ctx context.Context, memberID int64, docType, content string) (store.Document, error)
}

// Persister routes a classification result to the right record type. Unknown
// callers produce no rows at all: for them the recording reference is the only
// trace of the call.
type Persister struct {
	store  RecordStore
	logger *observability.Logger
}

func New(store RecordStore, logger *observability.Logger) *Persister {
	return &Persister{store: store, logger: logger}
}

// Persist writes at most one record for the call. Each record is a single
// INSERT, so a call's write is atomic: the row exists completely or not at all.
func (p *Persister) Persist(ctx context.Context, caller identity.Caller, result classify.Result, recordingURL string) error {
	if !caller.Known() {
		p.logger.Info(ctx, "caller not in the member directory, skipping persistence")
		return nil
	}

	memberID := caller.Member.ID

	switch result.Category {
	case classify.CategorySiteReport:
		entry, err := p.store.CreateJournalEntry(ctx, memberID, result.Summary, recordingURL)
		if err != nil {
			return fmt.Errorf("failed to persist journal entry: %w", err)
		}
		ctx = observability.WithFields(ctx, observability.Field{Key: "journal_entry_id", Value: entry.ID})
		p.logger.Info(ctx, "journal entry created")
		return nil

	case classify.CategoryQuote, classify.CategoryPaymentReminder, classify.CategoryMaterialOrder:
		doc, err := p.store.CreateDocument(ctx, memberID, string(result.Category), string(result.Details))
		if err != nil {
			return fmt.Errorf("failed to persist document: %w", err)
		}
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "document_id", Value: doc.ID},
			observability.Field{Key: "document_type", Value: doc.Type},
		)
		p.logger.Info(ctx, "draft document created")
		return nil

	default:
		// MESSAGE and AUTRE: the recording itself is the record.
		p.logger.Info(ctx, "category requires no record, keeping recording only")
		return nil
	}
}
