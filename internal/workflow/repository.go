package workflow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akilimali/parapheur/internal/documents"
	"github.com/akilimali/parapheur/pkg/repository"
	"github.com/google/uuid"
)

type store struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStore creates the SQL-backed workflow store. Conditional updates
// carry their state preconditions in the WHERE clause, so a stale
// caller affects zero rows and receives ErrInvalidState.
func NewStore(db *sql.DB, logger *slog.Logger) Store {
	return &store{
		db:     db,
		logger: logger.With("system", "workflow-store"),
	}
}

func scanStep(s repository.Scanner) (Step, error) {
	var step Step
	err := s.Scan(
		&step.DocumentID,
		&step.Order,
		&step.Role,
		&step.SignerID,
		&step.State,
		&step.Comment,
		&step.ActedAt,
	)
	return step, err
}

func scanStepView(s repository.Scanner) (StepView, error) {
	var (
		view      StepView
		firstName string
		lastName  string
	)
	err := s.Scan(
		&view.Order,
		&view.Role,
		&view.SignerID,
		&firstName,
		&lastName,
		&view.State,
		&view.Comment,
		&view.ActedAt,
	)
	view.SignerName = firstName + " " + lastName
	return view, err
}

func (s *store) Steps(ctx context.Context, documentID uuid.UUID) ([]Step, error) {
	q := `SELECT document_id, signature_order, role, signer_id, state, comment, acted_at
		FROM signatures
		WHERE document_id = $1
		ORDER BY signature_order ASC`

	return repository.QueryMany(ctx, s.db, q, []any{documentID}, scanStep)
}

func (s *store) StepViews(ctx context.Context, documentID uuid.UUID) ([]StepView, error) {
	q := `SELECT sig.signature_order, sig.role, sig.signer_id, p.first_name, p.last_name,
			sig.state, sig.comment, sig.acted_at
		FROM signatures sig
		JOIN profiles p ON p.id = sig.signer_id
		WHERE sig.document_id = $1
		ORDER BY sig.signature_order ASC`

	return repository.QueryMany(ctx, s.db, q, []any{documentID}, scanStepView)
}

func (s *store) InitializeChain(ctx context.Context, documentID uuid.UUID, steps []Step) error {
	if len(steps) == 0 {
		return fmt.Errorf("%w: empty chain", ErrValidation)
	}

	insert := `INSERT INTO signatures(document_id, signature_order, role, signer_id, state)
		VALUES ($1, $2, $3, $4, $5)`
	activate := `UPDATE documents SET status = $2, current_signer = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4`

	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		for _, step := range steps {
			if _, err := tx.ExecContext(ctx, insert,
				documentID, step.Order, step.Role, step.SignerID, step.State,
			); err != nil {
				return struct{}{}, fmt.Errorf("insert step %d: %w", step.Order, err)
			}
		}

		err := repository.ExecExpectOne(ctx, tx, activate,
			documentID, documents.StatusPendingSignature, steps[0].SignerID, documents.StatusDraft,
		)
		return struct{}{}, err
	})

	return s.mapConditional(err)
}

func (s *store) SignStep(ctx context.Context, documentID uuid.UUID, order int, comment string, at time.Time, from uuid.UUID, next *uuid.UUID) error {
	sign := `UPDATE signatures SET state = $4, comment = $5, acted_at = $6
		WHERE document_id = $1 AND signature_order = $2 AND state = $3`
	advance := `UPDATE documents SET current_signer = $3, updated_at = NOW()
		WHERE id = $1 AND status = $4 AND current_signer = $2`
	clear := `UPDATE documents SET current_signer = NULL, updated_at = NOW()
		WHERE id = $1 AND status = $3 AND current_signer = $2`

	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(ctx, tx, sign,
			documentID, order, StepPending, StepSigned, comment, at,
		); err != nil {
			return struct{}{}, err
		}

		if next != nil {
			err := repository.ExecExpectOne(ctx, tx, advance,
				documentID, from, *next, documents.StatusPendingSignature,
			)
			return struct{}{}, err
		}

		err := repository.ExecExpectOne(ctx, tx, clear,
			documentID, from, documents.StatusPendingSignature,
		)
		return struct{}{}, err
	})

	return s.mapConditional(err)
}

func (s *store) RejectStep(ctx context.Context, documentID uuid.UUID, order int, reason string, at time.Time, from uuid.UUID) error {
	reject := `UPDATE signatures SET state = $4, comment = $5, acted_at = $6
		WHERE document_id = $1 AND signature_order = $2 AND state = $3`
	terminate := `UPDATE documents SET status = $3, current_signer = NULL, updated_at = NOW()
		WHERE id = $1 AND status = $4 AND current_signer = $2`

	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(ctx, tx, reject,
			documentID, order, StepPending, StepRejected, reason, at,
		); err != nil {
			return struct{}{}, err
		}

		err := repository.ExecExpectOne(ctx, tx, terminate,
			documentID, from, documents.StatusRejected, documents.StatusPendingSignature,
		)
		return struct{}{}, err
	})

	return s.mapConditional(err)
}

func (s *store) Complete(ctx context.Context, documentID uuid.UUID, artifactKey string) error {
	q := `UPDATE documents SET status = $3, artifact_key = $2, updated_at = NOW()
		WHERE id = $1 AND status = $4 AND current_signer IS NULL`

	err := repository.ExecExpectOne(ctx, s.db, q,
		documentID, artifactKey, documents.StatusCompleted, documents.StatusPendingSignature,
	)
	return s.mapConditional(err)
}

// mapConditional treats a zero-row conditional update as a lost race:
// the precondition no longer held when the statement ran.
func (s *store) mapConditional(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: state changed concurrently", ErrInvalidState)
	}
	return err
}
