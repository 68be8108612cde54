package templates

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/akilimali/parapheur/internal/documents"
	"github.com/akilimali/parapheur/internal/storage"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// System defines the template catalog operations.
type System interface {
	List(ctx context.Context) ([]Template, error)
	Find(ctx context.Context, documentType documents.DocumentType) (*Template, error)
	Generate(ctx context.Context, cmd GenerateCommand) (*documents.Document, error)
}

type system struct {
	storage storage.System
	docs    documents.System
	logger  *slog.Logger
}

// New creates the template system backed by blob storage and the
// document repository.
func New(storage storage.System, docs documents.System, logger *slog.Logger) System {
	return &system{
		storage: storage,
		docs:    docs,
		logger:  logger.With("system", "templates"),
	}
}

// List returns the catalog ordered by document type, with availability
// reflecting whether the template file is present in storage.
func (s *system) List(ctx context.Context) ([]Template, error) {
	templates := make([]Template, 0, len(catalog))
	for _, tmpl := range catalog {
		exists, err := s.storage.Validate(ctx, tmpl.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("validate template %s: %w", tmpl.StorageKey, err)
		}
		tmpl.Available = exists
		templates = append(templates, tmpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].DocumentType < templates[j].DocumentType
	})
	return templates, nil
}

func (s *system) Find(ctx context.Context, documentType documents.DocumentType) (*Template, error) {
	tmpl, ok := catalog[documentType]
	if !ok {
		return nil, ErrNotFound
	}

	exists, err := s.storage.Validate(ctx, tmpl.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("validate template %s: %w", tmpl.StorageKey, err)
	}
	tmpl.Available = exists

	return &tmpl, nil
}

// Generate creates a draft document from the template file. The
// placeholder values are kept on the draft's description so the chain
// carries them; the template bytes are copied as uploaded.
func (s *system) Generate(ctx context.Context, cmd GenerateCommand) (*documents.Document, error) {
	tmpl, ok := catalog[cmd.DocumentType]
	if !ok {
		return nil, ErrNotFound
	}

	data, err := s.storage.Retrieve(ctx, tmpl.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("retrieve template: %w", err)
	}

	var pageCount *int
	if count, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration()); err == nil {
		pageCount = &count
	}

	description := cmd.Description
	if len(cmd.Values) > 0 {
		rendered := renderValues(cmd.Values)
		if description != nil {
			rendered = *description + "\n" + rendered
		}
		description = &rendered
	}

	doc, err := s.docs.Create(ctx, documents.CreateCommand{
		Title:        cmd.Title,
		Description:  description,
		DocumentType: cmd.DocumentType,
		Filename:     generatedFilename(cmd.DocumentType),
		ContentType:  "application/pdf",
		SizeBytes:    int64(len(data)),
		PageCount:    pageCount,
		CreatedBy:    cmd.CreatedBy,
		Data:         data,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("document generated from template",
		"document_id", doc.ID,
		"type", cmd.DocumentType,
		"template", tmpl.StorageKey,
	)
	return doc, nil
}

func renderValues(values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, values[k]))
	}
	return strings.Join(lines, "\n")
}

func generatedFilename(documentType documents.DocumentType) string {
	return fmt.Sprintf("%s_%s.pdf", documentType, time.Now().UTC().Format("20060102_150405"))
}
