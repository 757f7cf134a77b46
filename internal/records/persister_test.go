package records

import (
	"bati-server/internal/classify"
	"bati-server/internal/identity"
	"bati-server/internal/observability"
	"bati-server/internal/store"
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type fakeRecordStore struct {
	journalEntries []store.JournalEntry
	documents      []store.Document
	journalErr     error
	documentErr    error
}

func (f *fakeRecordStore) CreateJournalEntry(ctx context.Context, memberID int64, summary, audioURL string) (store.JournalEntry, error) {
	if f.journalErr != nil {
		return store.JournalEntry{}, f.journalErr
	}
	entry := store.JournalEntry{ID: int64(len(f.journalEntries) + 1), MemberID: memberID, Summary: summary, AudioURL: audioURL}
	f.journalEntries = append(f.journalEntries, entry)
	return entry, nil
}

func (f *fakeRecordStore) CreateDocument(ctx context.Context, memberID int64, docType, content string) (store.Document, error) {
	if f.documentErr != nil {
		return store.Document{}, f.documentErr
	}
	doc := store.Document{ID: int64(len(f.documents) + 1), MemberID: memberID, Type: docType, Content: content, Status: store.DocumentStatusDraft}
	f.documents = append(f.documents, doc)
	return doc, nil
}

func knownCaller() identity.Caller {
	return identity.Caller{
		Phone:  "+33612345678",
		Member: &store.Member{ID: 7, CompanyName: "Bati-Plâtre 57", Phone: "+33612345678"},
	}
}

func TestPersister_Persist(t *testing.T) {
	const recordingURL = "https://api.twilio.com/recordings/RE123"

	tests := []struct {
		name          string
		caller        identity.Caller
		result        classify.Result
		wantJournal   int
		wantDocuments int
		wantDocType   string
	}{
		{
			name:        "site report creates one journal entry",
			caller:      knownCaller(),
			result:      classify.Result{Category: classify.CategorySiteReport, Summary: "Plafond posé"},
			wantJournal: 1,
		},
		{
			name:          "quote request creates one draft document",
			caller:        knownCaller(),
			result:        classify.Result{Category: classify.CategoryQuote, Details: json.RawMessage(`{"client":"Dupont"}`)},
			wantDocuments: 1,
			wantDocType:   "DEVIS",
		},
		{
			name:          "payment reminder creates one draft document",
			caller:        knownCaller(),
			result:        classify.Result{Category: classify.CategoryPaymentReminder, Details: json.RawMessage(`{}`)},
			wantDocuments: 1,
			wantDocType:   "RAPPEL",
		},
		{
			name:          "material order creates one draft document",
			caller:        knownCaller(),
			result:        classify.Result{Category: classify.CategoryMaterialOrder, Details: json.RawMessage(`{}`)},
			wantDocuments: 1,
			wantDocType:   "COMMANDE",
		},
		{
			name:   "client message writes nothing",
			caller: knownCaller(),
			result: classify.Result{Category: classify.CategoryClientMessage},
		},
		{
			name:   "unclassified writes nothing",
			caller: knownCaller(),
			result: classify.Result{Category: classify.CategoryUnclassified},
		},
		{
			name:   "unknown caller writes nothing regardless of category",
			caller: identity.Caller{Phone: "+33788888888"},
			result: classify.Result{Category: classify.CategorySiteReport, Summary: "Un rapport"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recordStore := &fakeRecordStore{}
			persister := New(recordStore, observability.NewLogger())

			if err := persister.Persist(context.Background(), tt.caller, tt.result, recordingURL); err != nil {
				t.Fatalf("Persist() error = %v", err)
			}

			if len(recordStore.journalEntries) != tt.wantJournal {
				t.Errorf("journal entries = %d, want %d", len(recordStore.journalEntries), tt.wantJournal)
			}
			if len(recordStore.documents) != tt.wantDocuments {
				t.Errorf("documents = %d, want %d", len(recordStore.documents), tt.wantDocuments)
			}
			if tt.wantJournal == 1 && recordStore.journalEntries[0].AudioURL != recordingURL {
				t.Errorf("AudioURL = %q, want %q", recordStore.journalEntries[0].AudioURL, recordingURL)
			}
			if tt.wantDocuments == 1 {
				doc := recordStore.documents[0]
				if doc.Type != tt.wantDocType {
					t.Errorf("document type = %q, want %q", doc.Type, tt.wantDocType)
				}
				if doc.Status != store.DocumentStatusDraft {
					t.Errorf("document status = %q, want draft", doc.Status)
				}
			}
		})
	}
}

func TestPersister_StoreFailure(t *testing.T) {
	recordStore := &fakeRecordStore{journalErr: errors.New("connection reset")}
	persister := New(recordStore, observability.NewLogger())

	err := persister.Persist(context.Background(), knownCaller(),
		classify.Result{Category: classify.CategorySiteReport, Summary: "Un rapport"}, "https://rec")
	if err == nil {
		t.Fatal("expected an error when the store write fails")
	}
}
