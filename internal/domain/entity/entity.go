package entity

import (
	"time"

	"github.com/google/uuid"
)

// Entity carries the identity and audit fields shared by aggregate roots.
// Embedded by value; UpdatedAt and DeletedAt stay nil until the first
// mutation / soft deletion.
type Entity struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

func newEntity() Entity {
	return Entity{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

func (e *Entity) markUpdated() {
	now := time.Now().UTC()
	e.UpdatedAt = &now
}

func (e *Entity) markDeleted() {
	now := time.Now().UTC()
	e.DeletedAt = &now
}

// IsDeleted reports whether the entity has been soft deleted.
func (e *Entity) IsDeleted() bool { return e.DeletedAt != nil }
