package notifications

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/akilimali/parapheur/pkg/pagination"
	"github.com/akilimali/parapheur/pkg/query"
	"github.com/akilimali/parapheur/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a notification repository backed by the database.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "notifications"),
		pagination: pagination,
	}
}

func (r *repo) Notify(ctx context.Context, userID uuid.UUID, kind string, documentID uuid.UUID, title, message string) error {
	q := `INSERT INTO notifications(user_id, kind, title, message, document_id)
		VALUES ($1, $2, $3, $4, $5)`

	var docID *uuid.UUID
	if documentID != uuid.Nil {
		docID = &documentID
	}

	if _, err := r.db.ExecContext(ctx, q, userID, kind, title, message, docID); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	r.logger.Debug("notification stored", "user_id", userID, "kind", kind, "document_id", documentID)
	return nil
}

func (r *repo) List(ctx context.Context, userID uuid.UUID, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Notification], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("UserId", userID)

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count notifications: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	results, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}

	result := pagination.NewPageResult(results, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	q := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`

	var count int
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func (r *repo) MarkRead(ctx context.Context, id, userID uuid.UUID) (*Notification, error) {
	q := `UPDATE notifications SET read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, kind, title, message, document_id, read, created_at`

	notification, err := repository.QueryOne(ctx, r.db, q, []any{id, userID}, scanNotification)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &notification, nil
}

func (r *repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	q := `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`

	result, err := r.db.ExecContext(ctx, q, userID)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return affected, nil
}
