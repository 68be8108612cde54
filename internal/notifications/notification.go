// Package notifications persists and serves in-app workflow event
// notifications. Delivery is best-effort: the workflow engine treats
// failures here as log-only.
package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Kind categorizes a notification event.
type Kind string

const (
	KindSignatureRequired Kind = "signature_required"
	KindDocumentRejected  Kind = "document_rejected"
	KindDocumentCompleted Kind = "document_completed"
)

// Notification is one event delivered to a user's inbox.
type Notification struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Kind       Kind       `json:"kind"`
	Title      string     `json:"title"`
	Message    string     `json:"message"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	Read       bool       `json:"read"`
	CreatedAt  time.Time  `json:"created_at"`
}
