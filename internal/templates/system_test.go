package templates_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/akilimali/parapheur/internal/config"
	"github.com/akilimali/parapheur/internal/documents"
	"github.com/akilimali/parapheur/internal/storage"
	"github.com/akilimali/parapheur/internal/templates"
	"github.com/akilimali/parapheur/pkg/pagination"
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

// fakeDocuments records the create command instead of persisting it.
type fakeDocuments struct {
	created *documents.CreateCommand
}

func (f *fakeDocuments) List(context.Context, pagination.PageRequest, documents.Filters) (*pagination.PageResult[documents.Document], error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocuments) Find(context.Context, uuid.UUID) (*documents.Document, error) {
	return nil, documents.ErrNotFound
}

func (f *fakeDocuments) Create(_ context.Context, cmd documents.CreateCommand) (*documents.Document, error) {
	f.created = &cmd
	return &documents.Document{
		ID:           uuid.New(),
		Title:        cmd.Title,
		Description:  cmd.Description,
		DocumentType: cmd.DocumentType,
		Filename:     cmd.Filename,
		ContentType:  cmd.ContentType,
		SizeBytes:    cmd.SizeBytes,
		Status:       documents.StatusDraft,
		CreatedBy:    cmd.CreatedBy,
	}, nil
}

func (f *fakeDocuments) Update(context.Context, uuid.UUID, documents.UpdateCommand) (*documents.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocuments) Content(context.Context, uuid.UUID) (*documents.Document, []byte, error) {
	return nil, nil, errors.New("not implemented")
}

func (f *fakeDocuments) Artifact(context.Context, uuid.UUID) (*documents.Document, []byte, error) {
	return nil, nil, errors.New("not implemented")
}

func (f *fakeDocuments) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

func TestList_SortedWithAvailability(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()

	if err := store.Store(ctx, "templates/releve_notes.pdf", []byte("template")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	sys := templates.New(store, &fakeDocuments{}, testLogger())
	list, err := sys.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}

	if len(list) != 4 {
		t.Fatalf("List() = %d templates, want 4", len(list))
	}

	for i := 1; i < len(list); i++ {
		if list[i-1].DocumentType > list[i].DocumentType {
			t.Errorf("List() not sorted: %s before %s", list[i-1].DocumentType, list[i].DocumentType)
		}
	}

	for _, tmpl := range list {
		wantAvailable := tmpl.DocumentType == documents.TypeReleveNotes
		if tmpl.Available != wantAvailable {
			t.Errorf("%s available = %v, want %v", tmpl.DocumentType, tmpl.Available, wantAvailable)
		}
	}
}

func TestFind(t *testing.T) {
	sys := templates.New(testStorage(t), &fakeDocuments{}, testLogger())

	tmpl, err := sys.Find(context.Background(), documents.TypeLettreHonoraires)
	if err != nil {
		t.Fatalf("Find() failed: %v", err)
	}
	if tmpl.StorageKey != "templates/lettre_honoraires.pdf" {
		t.Errorf("StorageKey = %q, want templates/lettre_honoraires.pdf", tmpl.StorageKey)
	}
	if tmpl.Available {
		t.Error("Available = true with empty storage")
	}

	_, err = sys.Find(context.Background(), documents.DocumentType("memo_interne"))
	if !errors.Is(err, templates.ErrNotFound) {
		t.Errorf("Find() error = %v, want ErrNotFound", err)
	}
}

func TestGenerate(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()
	creator := uuid.New()

	if err := store.Store(ctx, "templates/releve_notes.pdf", []byte("template bytes")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	docs := &fakeDocuments{}
	sys := templates.New(store, docs, testLogger())

	doc, err := sys.Generate(ctx, templates.GenerateCommand{
		DocumentType: documents.TypeReleveNotes,
		Title:        "Relevé de notes - Mbuyi Tshiala",
		Values: map[string]string{
			"{{nom_etudiant}}": "Mbuyi Tshiala",
			"{{faculte}}":      "Sciences",
		},
		CreatedBy: creator,
	})
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	if doc.Status != documents.StatusDraft {
		t.Errorf("Status = %s, want draft", doc.Status)
	}
	if docs.created == nil {
		t.Fatal("Generate() did not create a document")
	}
	if docs.created.ContentType != "application/pdf" {
		t.Errorf("ContentType = %q, want application/pdf", docs.created.ContentType)
	}
	if !strings.HasPrefix(docs.created.Filename, "releve_notes_") || !strings.HasSuffix(docs.created.Filename, ".pdf") {
		t.Errorf("Filename = %q, want releve_notes_<timestamp>.pdf", docs.created.Filename)
	}
	if string(docs.created.Data) != "template bytes" {
		t.Errorf("Data = %q, want the template bytes", docs.created.Data)
	}
	if docs.created.CreatedBy != creator {
		t.Errorf("CreatedBy = %s, want %s", docs.created.CreatedBy, creator)
	}

	// Placeholder values travel on the description in sorted key order.
	if docs.created.Description == nil {
		t.Fatal("Description = nil, want rendered values")
	}
	desc := *docs.created.Description
	if !strings.Contains(desc, "{{faculte}}: Sciences") || !strings.Contains(desc, "{{nom_etudiant}}: Mbuyi Tshiala") {
		t.Errorf("Description = %q, want rendered placeholder values", desc)
	}
	if strings.Index(desc, "{{faculte}}") > strings.Index(desc, "{{nom_etudiant}}") {
		t.Errorf("Description = %q, want keys in sorted order", desc)
	}
}

func TestGenerate_MissingTemplateFile(t *testing.T) {
	sys := templates.New(testStorage(t), &fakeDocuments{}, testLogger())

	_, err := sys.Generate(context.Background(), templates.GenerateCommand{
		DocumentType: documents.TypePVConseil,
		Title:        "PV du conseil de mars",
		CreatedBy:    uuid.New(),
	})
	if !errors.Is(err, templates.ErrUnavailable) {
		t.Errorf("Generate() error = %v, want ErrUnavailable", err)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found error", templates.ErrNotFound, http.StatusNotFound},
		{"unavailable error", templates.ErrUnavailable, http.StatusConflict},
		{"unknown error", errors.New("unknown error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := templates.MapHTTPStatus(tt.err); got != tt.wantStatus {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
