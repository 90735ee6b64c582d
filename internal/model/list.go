package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListStore defines owner-scoped persistence operations for lists.
// Deleting a list removes its list items.
type ListStore interface {
	Create(ctx context.Context, list List) (List, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (List, error)
	List(ctx context.Context, filter Filter) ([]List, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	Update(ctx context.Context, list List) (List, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// List is a named collection of list items.
type List struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateListParams contains parameters to create a list.
type CreateListParams struct {
	Name string
}

// UpdateListParams contains a partial list update.
type UpdateListParams struct {
	ID   uuid.UUID
	Name *string
}
