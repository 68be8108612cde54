package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/akilimali/parapheur/internal/config"
	"github.com/akilimali/parapheur/internal/storage"
)

// seedTemplates copies PDF template files from a directory into blob
// storage under the templates/ prefix, keyed by filename. The template
// catalog expects one file per document type (releve_notes.pdf,
// lettre_honoraires.pdf, pv_conseil.pdf, correspondance.pdf).
func seedTemplates(ctx context.Context, cfg *config.StorageConfig, dir string, logger *slog.Logger) error {
	store, err := storage.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read template directory: %w", err)
	}

	seeded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".pdf") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read template %s: %w", entry.Name(), err)
		}

		key := "templates/" + entry.Name()
		if err := store.Store(ctx, key, data); err != nil {
			return fmt.Errorf("store template %s: %w", key, err)
		}

		seeded++
	}

	if seeded == 0 {
		return fmt.Errorf("no PDF templates found in %s", dir)
	}

	fmt.Printf("%d templates seeded\n", seeded)
	return nil
}
