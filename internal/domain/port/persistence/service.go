package persistence

import (
	"context"

	"github.com/matheusvbd/crudapi/internal/domain/entity"
	"github.com/google/uuid"
)

// Service exposes the persistence operations the CRUD controller delegates
// to, parameterized over the entity type. Implementations participate in the
// caller's unit of work through the transaction carried in ctx.
type Service[E entity.Identifiable] interface {
	// GetAll fetches every entity in the collection
	GetAll(ctx context.Context) ([]E, error)

	// GetByID fetches one entity, returning ErrNotFound when absent
	GetByID(ctx context.Context, id uuid.UUID) (E, error)

	// Exists reports whether an entity with the given identifier is present.
	// A targeted query, not a collection scan.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Add persists a new entity
	Add(ctx context.Context, e E) error

	// Update replaces the stored entity identified by id, returning
	// ErrConcurrencyConflict when the row is gone or was changed underneath
	Update(ctx context.Context, id uuid.UUID, e E) error

	// Delete removes the entity
	Delete(ctx context.Context, e E) error
}
