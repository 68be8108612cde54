package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akilimali/parapheur/internal/config"
	"github.com/akilimali/parapheur/internal/documents"
	"github.com/akilimali/parapheur/internal/profiles"
	"github.com/google/uuid"
)

type engine struct {
	docs      Documents
	store     Store
	directory Directory
	notifier  Notifier
	finalizer Finalizer
	cfg       *config.WorkflowConfig
	logger    *slog.Logger
}

// NewEngine creates the workflow engine. The chain configuration is
// treated as immutable for the engine's lifetime.
func NewEngine(docs Documents, store Store, directory Directory, notifier Notifier, finalizer Finalizer, cfg *config.WorkflowConfig, logger *slog.Logger) System {
	return &engine{
		docs:      docs,
		store:     store,
		directory: directory,
		notifier:  notifier,
		finalizer: finalizer,
		cfg:       cfg,
		logger:    logger.With("system", "workflow"),
	}
}

// Initialize builds the approval chain for a draft and submits it for
// signature. An unrecognized document type creates no steps and leaves
// the document in draft; a chain whose every step resolved to no signer
// does the same.
func (e *engine) Initialize(ctx context.Context, documentID, actingUserID uuid.UUID) (*View, error) {
	doc, err := e.findDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if doc.Status != documents.StatusDraft {
		return nil, fmt.Errorf("%w: document is %s", ErrInvalidState, doc.Status)
	}

	creator, err := e.directory.Find(ctx, doc.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve creator: %v", ErrDependency, err)
	}

	template, ok := e.cfg.Chains[string(doc.DocumentType)]
	if !ok {
		e.logger.Warn("no chain configured for document type; document stays draft",
			"document_id", documentID,
			"type", doc.DocumentType,
		)
		return e.Get(ctx, documentID)
	}

	steps, err := e.buildChain(ctx, doc, creator.Role, template)
	if err != nil {
		return nil, err
	}

	if len(steps) == 0 {
		e.logger.Warn("chain resolved to zero steps; document stays draft",
			"document_id", documentID,
			"type", doc.DocumentType,
		)
		return e.Get(ctx, documentID)
	}

	if err := e.store.InitializeChain(ctx, documentID, steps); err != nil {
		return nil, err
	}

	e.logger.Info("workflow initialized",
		"document_id", documentID,
		"type", doc.DocumentType,
		"steps", len(steps),
		"first_signer", steps[0].SignerID,
	)

	e.notify(ctx, steps[0].SignerID, KindSignatureRequired, documentID,
		"Signature requise",
		fmt.Sprintf("Le document %q attend votre signature.", doc.Title),
	)

	return e.Get(ctx, documentID)
}

// buildChain resolves each template step to a bound signer. Order
// numbers are assigned sequentially to created steps only, so omitted
// steps leave no gaps.
func (e *engine) buildChain(ctx context.Context, doc *documents.Document, creatorRole profiles.Role, template []config.ChainStep) ([]Step, error) {
	steps := make([]Step, 0, len(template))

	for _, ts := range template {
		role := profiles.Role(ts.Role)
		if ts.Role == config.RoleCreator {
			role = creatorRole
		}

		holders, err := e.directory.ActiveByRole(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("%w: resolve role %s: %v", ErrDependency, role, err)
		}

		if len(holders) == 0 {
			if !ts.Optional && e.cfg.MissingSignerPolicy == config.MissingSignerFail {
				return nil, fmt.Errorf("%w: %s", ErrNoSigner, role)
			}
			e.logger.Warn("chain step omitted: no active signer for role",
				"document_id", doc.ID,
				"role", role,
				"optional", ts.Optional,
			)
			continue
		}

		// First holder wins; the directory returns ascending profile IDs.
		steps = append(steps, Step{
			DocumentID: doc.ID,
			Order:      len(steps) + 1,
			Role:       role,
			SignerID:   holders[0].ID,
			State:      StepPending,
		})
	}

	return steps, nil
}

// Sign records the acting user's attestation on the active step and
// advances the chain. The step and document updates commit in one
// conditional transaction, so of two concurrent calls referencing the
// same active step exactly one succeeds.
func (e *engine) Sign(ctx context.Context, documentID, actingUserID uuid.UUID, comment string) (*View, error) {
	doc, active, steps, err := e.activeStep(ctx, documentID, actingUserID)
	if err != nil {
		return nil, err
	}

	if comment == "" {
		comment = e.cfg.Attestation
	}

	var next *Step
	for i := range steps {
		if steps[i].State == StepPending && steps[i].Order > active.Order {
			next = &steps[i]
			break
		}
	}

	var nextSigner *uuid.UUID
	if next != nil {
		nextSigner = &next.SignerID
	}

	now := time.Now().UTC()
	if err := e.store.SignStep(ctx, documentID, active.Order, comment, now, actingUserID, nextSigner); err != nil {
		return nil, err
	}

	if next != nil {
		e.logger.Info("step signed, chain advanced",
			"document_id", documentID,
			"order", active.Order,
			"next_signer", next.SignerID,
		)

		e.notify(ctx, next.SignerID, KindSignatureRequired, documentID,
			"Signature requise",
			fmt.Sprintf("Le document %q attend votre signature.", doc.Title),
		)

		return e.Get(ctx, documentID)
	}

	e.logger.Info("final step signed", "document_id", documentID, "order", active.Order)

	if err := e.finalize(ctx, documentID); err != nil {
		return nil, err
	}

	return e.Get(ctx, documentID)
}

// Reject marks the active step rejected and terminates the workflow.
// Later steps are left pending but unreachable.
func (e *engine) Reject(ctx context.Context, documentID, actingUserID uuid.UUID, reason string) (*View, error) {
	doc, active, _, err := e.activeStep(ctx, documentID, actingUserID)
	if err != nil {
		return nil, err
	}

	if reason == "" {
		reason = "Aucune raison spécifiée"
	}

	now := time.Now().UTC()
	if err := e.store.RejectStep(ctx, documentID, active.Order, reason, now, actingUserID); err != nil {
		return nil, err
	}

	e.logger.Info("document rejected",
		"document_id", documentID,
		"order", active.Order,
		"signer", actingUserID,
	)

	e.notify(ctx, doc.CreatedBy, KindDocumentRejected, documentID,
		"Document rejeté",
		fmt.Sprintf("Le document %q a été rejeté: %s", doc.Title, reason),
	)

	return e.Get(ctx, documentID)
}

// RetryFinalize re-runs finalization for a document whose steps are all
// signed but whose completion did not land. Calling it on an already
// completed document is a no-op returning the current chain view.
func (e *engine) RetryFinalize(ctx context.Context, documentID uuid.UUID) (*View, error) {
	doc, err := e.findDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if doc.Status == documents.StatusCompleted {
		return e.Get(ctx, documentID)
	}

	if doc.Status != documents.StatusPendingSignature || doc.CurrentSigner != nil {
		return nil, fmt.Errorf("%w: document is not awaiting finalization", ErrInvalidState)
	}

	steps, err := e.store.Steps(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load steps: %w", err)
	}

	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: document has no signature steps", ErrInvalidState)
	}
	for _, step := range steps {
		if step.State != StepSigned {
			return nil, fmt.Errorf("%w: step %d is %s", ErrInvalidState, step.Order, step.State)
		}
	}

	if err := e.finalize(ctx, documentID); err != nil {
		return nil, err
	}

	return e.Get(ctx, documentID)
}

// Get returns the chain projection for a document.
func (e *engine) Get(ctx context.Context, documentID uuid.UUID) (*View, error) {
	doc, err := e.findDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	views, err := e.store.StepViews(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load step views: %w", err)
	}

	return buildView(doc, views), nil
}

// activeStep loads the document and its chain, verifying the document
// accepts signer actions and the acting user is the bound signer. The
// active step is the first non-signed step in order; it must be
// pending — any other state below a pending step means the chain was
// already terminated and no further step may act.
func (e *engine) activeStep(ctx context.Context, documentID, actingUserID uuid.UUID) (*documents.Document, *Step, []Step, error) {
	doc, err := e.findDocument(ctx, documentID)
	if err != nil {
		return nil, nil, nil, err
	}

	if doc.Status != documents.StatusPendingSignature {
		return nil, nil, nil, fmt.Errorf("%w: document is %s", ErrInvalidState, doc.Status)
	}

	steps, err := e.store.Steps(ctx, documentID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load steps: %w", err)
	}

	var active *Step
	for i := range steps {
		if steps[i].State == StepSigned {
			continue
		}
		if steps[i].State != StepPending {
			return nil, nil, nil, fmt.Errorf("%w: step %d is %s", ErrInvalidState, steps[i].Order, steps[i].State)
		}
		active = &steps[i]
		break
	}

	if active == nil {
		return nil, nil, nil, fmt.Errorf("%w: no active step", ErrInvalidState)
	}

	if active.SignerID != actingUserID {
		return nil, nil, nil, fmt.Errorf("%w: step %d is bound to another signer", ErrUnauthorized, active.Order)
	}

	return doc, active, steps, nil
}

// finalize produces the archived artifact and commits completion. On
// finalizer failure the document stays pending_signature with no active
// signer, which is the recoverable state RetryFinalize targets.
func (e *engine) finalize(ctx context.Context, documentID uuid.UUID) error {
	doc, err := e.findDocument(ctx, documentID)
	if err != nil {
		return err
	}

	views, err := e.store.StepViews(ctx, documentID)
	if err != nil {
		return fmt.Errorf("load step views: %w", err)
	}

	attestations := make([]Attestation, 0, len(views))
	for _, v := range views {
		att := Attestation{
			SignerID:   v.SignerID,
			SignerName: v.SignerName,
			Role:       v.Role,
			Text:       e.cfg.Attestation,
			SignedAt:   time.Now().UTC(),
		}
		if v.Comment != nil {
			att.Text = *v.Comment
		}
		if v.ActedAt != nil {
			att.SignedAt = *v.ActedAt
		}
		attestations = append(attestations, att)
	}

	artifactKey, err := e.finalizer.Finalize(ctx, doc, attestations)
	if err != nil {
		e.logger.Error("finalization failed; document awaits retry",
			"document_id", documentID,
			"error", err,
		)
		return fmt.Errorf("%w: finalize: %v", ErrDependency, err)
	}

	if err := e.store.Complete(ctx, documentID, artifactKey); err != nil {
		return err
	}

	e.logger.Info("document completed",
		"document_id", documentID,
		"artifact_key", artifactKey,
	)

	e.notifyDownloadRoles(ctx, doc)
	return nil
}

// notifyDownloadRoles tells every active holder of the configured
// retrieval roles that the finalized artifact is available.
func (e *engine) notifyDownloadRoles(ctx context.Context, doc *documents.Document) {
	message := fmt.Sprintf("Le document %q est maintenant disponible en téléchargement.", doc.Title)

	for _, role := range e.cfg.DownloadRoles {
		holders, err := e.directory.ActiveByRole(ctx, profiles.Role(role))
		if err != nil {
			e.logger.Error("completion notification: role resolution failed", "role", role, "error", err)
			continue
		}

		for _, holder := range holders {
			e.notify(ctx, holder.ID, KindDocumentCompleted, doc.ID, "Document finalisé disponible", message)
		}
	}
}

// notify delivers a workflow event; failures are logged, never propagated.
func (e *engine) notify(ctx context.Context, userID uuid.UUID, kind string, documentID uuid.UUID, title, message string) {
	if err := e.notifier.Notify(ctx, userID, kind, documentID, title, message); err != nil {
		e.logger.Error("notification delivery failed",
			"user_id", userID,
			"kind", kind,
			"document_id", documentID,
			"error", err,
		)
	}
}

// findDocument translates document lookups into workflow error kinds.
func (e *engine) findDocument(ctx context.Context, documentID uuid.UUID) (*documents.Document, error) {
	doc, err := e.docs.Find(ctx, documentID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}
	return doc, nil
}
