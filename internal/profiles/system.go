package profiles

import (
	"context"

	"github.com/akilimali/parapheur/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the profile management operations.
//
// ActiveByRole is the role-directory contract consumed by the workflow
// engine: it returns every active profile holding a role, ordered by id
// ascending. The ordering is the deterministic tie-break used when a
// role has multiple holders, so workflow initialization is reproducible.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Profile], error)
	Find(ctx context.Context, id uuid.UUID) (*Profile, error)
	ActiveByRole(ctx context.Context, role Role) ([]Profile, error)
	Create(ctx context.Context, cmd CreateCommand) (*Profile, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Profile, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
