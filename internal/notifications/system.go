package notifications

import (
	"context"

	"github.com/akilimali/parapheur/pkg/pagination"
	"github.com/google/uuid"
)

// System defines notification operations. Notify matches the workflow
// engine's sink contract, so the repository plugs straight into the
// engine as its notifier.
type System interface {
	Notify(ctx context.Context, userID uuid.UUID, kind string, documentID uuid.UUID, title, message string) error
	List(ctx context.Context, userID uuid.UUID, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Notification], error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) (*Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
