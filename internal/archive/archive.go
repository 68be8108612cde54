// Package archive produces the finalized, attestation-stamped artifact
// for a fully signed document and stores it under a stable archive key.
// It implements the workflow engine's finalizer contract.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/akilimali/parapheur/internal/documents"
	"github.com/akilimali/parapheur/internal/storage"
	"github.com/akilimali/parapheur/internal/workflow"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

type archiver struct {
	storage storage.System
	logger  *slog.Logger
}

// New creates the archive finalizer backed by blob storage.
func New(storage storage.System, logger *slog.Logger) workflow.Finalizer {
	return &archiver{
		storage: storage,
		logger:  logger.With("system", "archive"),
	}
}

// Finalize stamps the attestation chain onto the document and archives
// the result. The archive key is derived from the document ID alone, so
// a retry after a partial earlier failure finds the existing artifact
// and returns it without duplicating work.
func (a *archiver) Finalize(ctx context.Context, doc *documents.Document, attestations []workflow.Attestation) (string, error) {
	key := artifactKey(doc)

	exists, err := a.storage.Validate(ctx, key)
	if err != nil {
		return "", fmt.Errorf("validate artifact key: %w", err)
	}
	if exists {
		a.logger.Info("artifact already archived", "document_id", doc.ID, "artifact_key", key)
		return key, nil
	}

	data, err := a.storage.Retrieve(ctx, doc.StorageKey)
	if err != nil {
		return "", fmt.Errorf("retrieve original: %w", err)
	}

	if doc.ContentType == "application/pdf" {
		stamped, err := stampAttestations(data, attestations)
		if err != nil {
			// The attestation chain is already recorded in the database;
			// archive the original rather than block completion.
			a.logger.Warn("attestation stamping failed; archiving unstamped copy",
				"document_id", doc.ID,
				"error", err,
			)
		} else {
			data = stamped
		}
	}

	if err := a.storage.Store(ctx, key, data); err != nil {
		return "", fmt.Errorf("store artifact: %w", err)
	}

	a.logger.Info("artifact archived",
		"document_id", doc.ID,
		"artifact_key", key,
		"attestations", len(attestations),
	)
	return key, nil
}

func artifactKey(doc *documents.Document) string {
	return fmt.Sprintf("archive/%s/signe_%s", doc.ID.String(), doc.Filename)
}

// stampAttestations renders the ordered attestation lines as a footer
// stamp on every page of the PDF.
func stampAttestations(data []byte, attestations []workflow.Attestation) ([]byte, error) {
	lines := make([]string, 0, len(attestations))
	for _, att := range attestations {
		lines = append(lines, fmt.Sprintf("%s (%s) - %s - %s",
			att.SignerName,
			att.Role,
			att.Text,
			att.SignedAt.Format("02/01/2006 15:04"),
		))
	}

	wm, err := api.TextWatermark(
		strings.Join(lines, "\n"),
		"points:8, pos:bc, off:0 10, rot:0, op:0.9",
		true,
		false,
		types.POINTS,
	)
	if err != nil {
		return nil, fmt.Errorf("build stamp: %w", err)
	}

	var out bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(data), &out, nil, wm, nil); err != nil {
		return nil, fmt.Errorf("apply stamp: %w", err)
	}

	return out.Bytes(), nil
}
