// Package documents provides administrative document upload, storage,
// and management. Documents carry a type that determines their signature
// chain, plus lifecycle status driven by the workflow engine.
package documents

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DocumentType identifies the administrative category of a document and
// selects its signature chain.
type DocumentType string

const (
	TypeReleveNotes      DocumentType = "releve_notes"
	TypeLettreHonoraires DocumentType = "lettre_honoraires"
	TypePVConseil        DocumentType = "pv_conseil"
	TypeCorrespondance   DocumentType = "correspondance"
)

// DocumentTypes lists every recognized document type.
var DocumentTypes = []DocumentType{
	TypeReleveNotes,
	TypeLettreHonoraires,
	TypePVConseil,
	TypeCorrespondance,
}

// Validate reports whether the document type is recognized.
func (t DocumentType) Validate() error {
	for _, dt := range DocumentTypes {
		if t == dt {
			return nil
		}
	}
	return fmt.Errorf("unknown document type: %s", t)
}

// Status represents a document's position in its signature lifecycle.
type Status string

const (
	StatusDraft            Status = "draft"
	StatusPendingSignature Status = "pending_signature"
	StatusCompleted        Status = "completed"
	StatusRejected         Status = "rejected"
)

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// Document represents a stored administrative document with metadata.
// StorageKey locates the original upload; ArtifactKey locates the
// attestation-stamped copy produced at workflow completion.
type Document struct {
	ID            uuid.UUID    `json:"id"`
	Title         string       `json:"title"`
	Description   *string      `json:"description,omitempty"`
	DocumentType  DocumentType `json:"document_type"`
	Filename      string       `json:"filename"`
	ContentType   string       `json:"content_type"`
	SizeBytes     int64        `json:"size_bytes"`
	PageCount     *int         `json:"page_count,omitempty"`
	StorageKey    string       `json:"storage_key"`
	ArtifactKey   *string      `json:"artifact_key,omitempty"`
	Status        Status       `json:"status"`
	CurrentSigner *uuid.UUID   `json:"current_signer,omitempty"`
	CreatedBy     uuid.UUID    `json:"created_by"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// CreateCommand contains the data required to register a new document.
// Data holds the raw file bytes to be stored.
type CreateCommand struct {
	Title        string `validate:"required"`
	Description  *string
	DocumentType DocumentType `validate:"required"`
	Filename     string       `validate:"required"`
	ContentType  string
	SizeBytes    int64
	PageCount    *int
	CreatedBy    uuid.UUID `validate:"required"`
	Data         []byte
}

// UpdateCommand contains the fields that can be modified on a draft.
// Only drafts accept edits; the stored file is immutable.
type UpdateCommand struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description,omitempty"`
}
