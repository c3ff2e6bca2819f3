package repository

import (
	"context"

	"user-access-management/go-backend/internal/domain/entity"
)

// UserRepository defines the persistence contract for the user aggregate.
// All lookups exclude soft-deleted rows; Add and Update stage mutations
// that become visible only after the owning UnitOfWork commits.
type UserRepository interface {
	// GetByEmail returns the non-deleted user holding the normalized email,
	// or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByID returns the non-deleted user with the given id, or nil.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// Add stages a new aggregate for insertion. Uniqueness violations
	// surface at commit time as a conflict.
	Add(ctx context.Context, u *entity.User) error
	// Update stages the current aggregate state for persistence.
	Update(ctx context.Context, u *entity.User) error
	// List returns non-deleted users ordered by id ascending,
	// skipping (pageNumber-1)*pageSize rows and returning at most pageSize.
	List(ctx context.Context, pageNumber, pageSize int) ([]*entity.User, error)
	// Count returns the total number of non-deleted users. Under concurrent
	// writes it need not be point-in-time consistent with List.
	Count(ctx context.Context) (int, error)
}

// UnitOfWork is the transactional boundary for staged aggregate writes.
// One instance serves exactly one request; it is not shared.
type UnitOfWork interface {
	// SaveChanges flushes staged mutations atomically and returns the
	// number of affected rows. A failure leaves no partial effects.
	SaveChanges(ctx context.Context) (int, error)
	// BeginTransaction opens an explicit transaction; a no-op when one is
	// already open.
	BeginTransaction(ctx context.Context) error
	// Commit saves pending changes first, then commits; on any failure it
	// rolls back and returns the error. Safe with no open transaction.
	Commit(ctx context.Context) error
	// Rollback discards staged mutations and releases the transaction.
	// Safe with no open transaction.
	Rollback(ctx context.Context) error
}
