package profiles

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

// New creates a profile repository backed by the database.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "profiles"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Profile], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "FirstName", "LastName", "Email")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count profiles: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	results, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanProfile)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}

	result := pagination.NewPageResult(results, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Profile, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		BuildSingle("Id", id)

	profile, err := repository.QueryOne(ctx, r.db, q, args, scanProfile)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &profile, nil
}

// ActiveByRole returns active profiles holding the role, ordered by id
// ascending. The first entry is the canonical signer when workflow
// initialization must pick a single holder.
func (r *repo) ActiveByRole(ctx context.Context, role Role) ([]Profile, error) {
	active := true
	q, args := query.
		NewBuilder(projection, query.SortField{Field: "Id"}).
		WhereEquals("Role", role).
		WhereEquals("IsActive", active).
		Build()

	results, err := repository.QueryMany(ctx, r.db, q, args, scanProfile)
	if err != nil {
		return nil, fmt.Errorf("query active profiles by role: %w", err)
	}

	return results, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Profile, error) {
	if err := cmd.Role.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, cmd.Role)
	}

	q := `INSERT INTO profiles(first_name, last_name, email, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, first_name, last_name, email, role, is_active, created_at, updated_at`

	profile, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Profile, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			cmd.FirstName, cmd.LastName, cmd.Email, cmd.Role,
		}, scanProfile)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("profile created", "id", profile.ID, "email", profile.Email, "role", profile.Role)
	return &profile, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Profile, error) {
	if err := cmd.Role.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, cmd.Role)
	}

	q := `UPDATE profiles
		SET first_name = $2, last_name = $3, email = $4, role = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, role, is_active, created_at, updated_at`

	profile, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Profile, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.FirstName, cmd.LastName, cmd.Email, cmd.Role,
		}, scanProfile)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("profile updated", "id", profile.ID, "role", profile.Role)
	return &profile, nil
}

func (r *repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*Profile, error) {
	q := `UPDATE profiles SET is_active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, role, is_active, created_at, updated_at`

	profile, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Profile, error) {
		return repository.QueryOne(ctx, tx, q, []any{id, active}, scanProfile)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("profile activation changed", "id", id, "active", active)
	return &profile, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM profiles WHERE id = $1`

	if err := repository.ExecExpectOne(ctx, r.db, q, id); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("profile deleted", "id", id)
	return nil
}
