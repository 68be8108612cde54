package storage_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/akilimali/parapheur/internal/config"
	"github.com/akilimali/parapheur/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testSystem(t *testing.T) (storage.System, string) {
	t.Helper()
	dir := t.TempDir()
	sys, err := storage.New(&config.StorageConfig{BasePath: dir}, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return sys, dir
}

func TestNew_EmptyBasePath(t *testing.T) {
	_, err := storage.New(&config.StorageConfig{}, testLogger())
	if err == nil {
		t.Fatal("New() succeeded with empty base_path, want error")
	}
}

func TestNew_CreatesBaseDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "blobs")

	if _, err := storage.New(&config.StorageConfig{BasePath: base}, testLogger()); err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := os.Stat(base); err != nil {
		t.Errorf("base directory not created: %v", err)
	}
}

func TestStore_Retrieve_RoundTrip(t *testing.T) {
	sys, _ := testSystem(t)
	ctx := context.Background()

	key := "documents/abc/releve.pdf"
	data := []byte("%PDF-1.4 fake content")

	if err := sys.Store(ctx, key, data); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	got, err := sys.Retrieve(ctx, key)
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("Retrieve() = %q, want %q", got, data)
	}
}

func TestStore_OverwritesExisting(t *testing.T) {
	sys, _ := testSystem(t)
	ctx := context.Background()

	key := "archive/doc/signe_releve.pdf"
	if err := sys.Store(ctx, key, []byte("first")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if err := sys.Store(ctx, key, []byte("second")); err != nil {
		t.Fatalf("Store() overwrite failed: %v", err)
	}

	got, err := sys.Retrieve(ctx, key)
	if err != nil {
		t.Fatalf("Retrieve() failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Retrieve() = %q, want %q", got, "second")
	}
}

func TestRetrieve_NotFound(t *testing.T) {
	sys, _ := testSystem(t)

	_, err := sys.Retrieve(context.Background(), "missing/file.pdf")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() error = %v, want ErrNotFound", err)
	}
}

func TestValidate(t *testing.T) {
	sys, _ := testSystem(t)
	ctx := context.Background()

	exists, err := sys.Validate(ctx, "templates/releve_notes.pdf")
	if err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if exists {
		t.Error("Validate() = true for missing key")
	}

	if err := sys.Store(ctx, "templates/releve_notes.pdf", []byte("template")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	exists, err = sys.Validate(ctx, "templates/releve_notes.pdf")
	if err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
	if !exists {
		t.Error("Validate() = false for stored key")
	}
}

func TestDelete_Idempotent(t *testing.T) {
	sys, _ := testSystem(t)
	ctx := context.Background()

	key := "documents/xyz/lettre.pdf"
	if err := sys.Store(ctx, key, []byte("content")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}

	if err := sys.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := sys.Delete(ctx, key); err != nil {
		t.Errorf("Delete() on missing key = %v, want nil", err)
	}
}

func TestDelete_RemovesEmptyParent(t *testing.T) {
	sys, dir := testSystem(t)
	ctx := context.Background()

	key := "documents/solo/only.pdf"
	if err := sys.Store(ctx, key, []byte("content")); err != nil {
		t.Fatalf("Store() failed: %v", err)
	}
	if err := sys.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "documents", "solo")); !errors.Is(err, os.ErrNotExist) {
		t.Error("empty parent directory not cleaned up")
	}
}

func TestInvalidKeys(t *testing.T) {
	sys, _ := testSystem(t)
	ctx := context.Background()

	keys := []string{
		"",
		"../escape.pdf",
		"documents/../../escape.pdf",
		"/etc/passwd",
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			if err := sys.Store(ctx, key, []byte("x")); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Store(%q) error = %v, want ErrInvalidKey", key, err)
			}
			if _, err := sys.Retrieve(ctx, key); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Retrieve(%q) error = %v, want ErrInvalidKey", key, err)
			}
			if err := sys.Delete(ctx, key); !errors.Is(err, storage.ErrInvalidKey) {
				t.Errorf("Delete(%q) error = %v, want ErrInvalidKey", key, err)
			}
		})
	}
}
