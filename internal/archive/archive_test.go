package archive_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/akilimali/parapheur/internal/archive"
	"github.com/akilimali/parapheur/internal/config"
	"github.com/akilimali/parapheur/internal/documents"
	"github.com/akilimali/parapheur/internal/profiles"
	"github.com/akilimali/parapheur/internal/storage"
	"github.com/akilimali/parapheur/internal/workflow"
	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testStorage(t *testing.T) storage.System {
	t.Helper()
	sys, err := storage.New(&config.StorageConfig{BasePath: t.TempDir()}, testLogger())
	if err != nil {
		t.Fatalf("storage.New() failed: %v", err)
	}
	return sys
}

func testDocument() *documents.Document {
	return &documents.Document{
		ID:           uuid.MustParse("10000000-0000-0000-0000-000000000001"),
		Title:        "Relevé de notes L2 Info",
		DocumentType: documents.TypeReleveNotes,
		Filename:     "releve.pdf",
		ContentType:  "text/plain",
		StorageKey:   "documents/test/releve.pdf",
		Status:       documents.StatusPendingSignature,
	}
}

func testAttestations() []workflow.Attestation {
	return []workflow.Attestation{
		{
			SignerID:   uuid.New(),
			SignerName: "Albert Kalume",
			Role:       profiles.RoleSAF,
			Text:       "OK SIGNÉ",
			SignedAt:   time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC),
		},
		{
			SignerID:   uuid.New(),
			SignerName: "Emile Tshisekedi",
			Role:       profiles.RoleDoyen,
			Text:       "Vu et approuvé",
			SignedAt:   time.Date(2026, 3, 13, 14, 0, 0, 0, time.UTC),
		},
	}
}

func TestFinalize_ArchivesOriginal(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()
	doc := testDocument()

	if err := store.Store(ctx, doc.StorageKey, []byte("original content")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	fin := archive.New(store, testLogger())
	key, err := fin.Finalize(ctx, doc, testAttestations())
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	wantKey := "archive/10000000-0000-0000-0000-000000000001/signe_releve.pdf"
	if key != wantKey {
		t.Errorf("Finalize() key = %q, want %q", key, wantKey)
	}

	data, err := store.Retrieve(ctx, key)
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}
	if string(data) != "original content" {
		t.Errorf("artifact = %q, want the original bytes for non-PDF content", data)
	}
}

func TestFinalize_Idempotent(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()
	doc := testDocument()

	if err := store.Store(ctx, doc.StorageKey, []byte("original content")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	fin := archive.New(store, testLogger())
	first, err := fin.Finalize(ctx, doc, testAttestations())
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	// Remove the original; a retry must find the existing artifact
	// without touching the source again.
	if err := store.Delete(ctx, doc.StorageKey); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	second, err := fin.Finalize(ctx, doc, testAttestations())
	if err != nil {
		t.Fatalf("Finalize() retry failed: %v", err)
	}
	if second != first {
		t.Errorf("Finalize() retry key = %q, want %q", second, first)
	}
}

func TestFinalize_MissingOriginal(t *testing.T) {
	store := testStorage(t)
	fin := archive.New(store, testLogger())

	_, err := fin.Finalize(context.Background(), testDocument(), testAttestations())
	if err == nil {
		t.Fatal("Finalize() succeeded with no stored original, want error")
	}
}

func TestFinalize_CorruptPDFArchivedUnstamped(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()
	doc := testDocument()
	doc.ContentType = "application/pdf"

	// Not a parsable PDF: stamping fails and the original is archived.
	if err := store.Store(ctx, doc.StorageKey, []byte("not a pdf")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	fin := archive.New(store, testLogger())
	key, err := fin.Finalize(ctx, doc, testAttestations())
	if err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	data, err := store.Retrieve(ctx, key)
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}
	if string(data) != "not a pdf" {
		t.Errorf("artifact = %q, want the unstamped original", data)
	}
}
