// Package workflow implements the sequential signature workflow engine.
// It builds approval chains from configured templates, binds each step to
// a concrete signer through the role directory, and advances documents
// through sign, reject, and finalize transitions with at-most-once
// advancement guarantees.
package workflow

import (
	"time"

	"github.com/akilimali/parapheur/internal/profiles"
	"github.com/google/uuid"
)

// StepState represents the state of a single signature step.
type StepState string

const (
	StepPending  StepState = "pending"
	StepSigned   StepState = "signed"
	StepRejected StepState = "rejected"
)

// Step is one slot in a document's approval chain. The signer is bound
// once at initialization and never re-resolved, so the chain records who
// was asked to sign, not who currently holds the role.
type Step struct {
	DocumentID uuid.UUID     `json:"document_id"`
	Order      int           `json:"order"`
	Role       profiles.Role `json:"role"`
	SignerID   uuid.UUID     `json:"signer_id"`
	State      StepState     `json:"state"`
	Comment    *string       `json:"comment,omitempty"`
	ActedAt    *time.Time    `json:"acted_at,omitempty"`
}

// StepView is a Step joined with its signer's display name for chain
// projections.
type StepView struct {
	Order      int           `json:"order"`
	Role       profiles.Role `json:"role"`
	SignerID   uuid.UUID     `json:"signer_id"`
	SignerName string        `json:"signer_name"`
	State      StepState     `json:"state"`
	Comment    *string       `json:"comment,omitempty"`
	ActedAt    *time.Time    `json:"acted_at,omitempty"`
}

// Attestation is the recorded acknowledgement of one signed step,
// passed in chain order to the finalizer.
type Attestation struct {
	SignerID   uuid.UUID     `json:"signer_id"`
	SignerName string        `json:"signer_name"`
	Role       profiles.Role `json:"role"`
	Text       string        `json:"text"`
	SignedAt   time.Time     `json:"signed_at"`
}
