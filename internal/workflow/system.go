package workflow

import (
	"context"
	"time"

	"github.com/akilimali/parapheur/internal/documents"
	"github.com/akilimali/parapheur/internal/profiles"
	"github.com/google/uuid"
)

// Notification kinds emitted by the engine.
const (
	KindSignatureRequired = "signature_required"
	KindDocumentRejected  = "document_rejected"
	KindDocumentCompleted = "document_completed"
)

// Documents reads document records for workflow preconditions.
// Satisfied by documents.System.
type Documents interface {
	Find(ctx context.Context, id uuid.UUID) (*documents.Document, error)
}

// Directory resolves acting users and role membership. ActiveByRole must
// return a stable order (ascending profile ID) so signer binding is
// reproducible when a role has several holders. Satisfied by
// profiles.System.
type Directory interface {
	Find(ctx context.Context, id uuid.UUID) (*profiles.Profile, error)
	ActiveByRole(ctx context.Context, role profiles.Role) ([]profiles.Profile, error)
}

// Notifier delivers workflow events to users. Delivery failures never
// roll back a workflow transition; the engine logs and continues.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind string, documentID uuid.UUID, title, message string) error
}

// Finalizer produces the archived, attestation-stamped artifact once
// every step is signed. Implementations must be idempotent per document:
// repeated calls return the same artifact key without duplicating work.
type Finalizer interface {
	Finalize(ctx context.Context, doc *documents.Document, attestations []Attestation) (string, error)
}

// Store persists signature steps and applies document transitions as
// conditional updates. Every mutation that carries a state precondition
// returns ErrInvalidState when the precondition no longer holds, which
// is how concurrent callers lose the race instead of double-advancing.
type Store interface {
	Steps(ctx context.Context, documentID uuid.UUID) ([]Step, error)
	StepViews(ctx context.Context, documentID uuid.UUID) ([]StepView, error)

	// InitializeChain inserts the steps and moves the document from
	// draft to pending_signature with the first signer, atomically.
	InitializeChain(ctx context.Context, documentID uuid.UUID, steps []Step) error

	// SignStep transitions the step from pending to signed and moves
	// current_signer from the acting signer to next (or clears it when
	// next is nil, leaving the document pending_signature until
	// finalization lands). Both updates commit in one transaction: the
	// chain never holds a signed step alongside a stale document.
	SignStep(ctx context.Context, documentID uuid.UUID, order int, comment string, at time.Time, from uuid.UUID, next *uuid.UUID) error

	// RejectStep transitions the step from pending to rejected and the
	// document to rejected with no current signer, in one transaction.
	RejectStep(ctx context.Context, documentID uuid.UUID, order int, reason string, at time.Time, from uuid.UUID) error

	// Complete transitions a signerless pending_signature document to
	// completed and records the artifact key.
	Complete(ctx context.Context, documentID uuid.UUID, artifactKey string) error
}

// System defines the workflow engine operations. Every mutating call
// takes the acting user explicitly; the engine holds no ambient user
// context.
type System interface {
	Initialize(ctx context.Context, documentID, actingUserID uuid.UUID) (*View, error)
	Sign(ctx context.Context, documentID, actingUserID uuid.UUID, comment string) (*View, error)
	Reject(ctx context.Context, documentID, actingUserID uuid.UUID, reason string) (*View, error)
	RetryFinalize(ctx context.Context, documentID uuid.UUID) (*View, error)
	Get(ctx context.Context, documentID uuid.UUID) (*View, error)
}
