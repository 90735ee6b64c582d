package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListItemStore defines persistence operations for list items.
// Ownership is transitive through the parent list.
type ListItemStore interface {
	Create(ctx context.Context, listItem ListItem) (ListItem, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (ListItem, error)
	List(ctx context.Context, filter Filter) ([]ListItem, error)
	CountByList(ctx context.Context, listID uuid.UUID) (int, error)
	Update(ctx context.Context, listItem ListItem) (ListItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ListItem is a line of a list referencing a catalog item.
type ListItem struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	ItemID    uuid.UUID
	Quantity  int
	Completed bool
	// Item is the resolved referenced item.
	Item      Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateListItemParams contains parameters to create a list item.
type CreateListItemParams struct {
	ListID    uuid.UUID
	ItemID    uuid.UUID
	Quantity  int
	Completed bool
}

// UpdateListItemParams contains a partial list item update.
type UpdateListItemParams struct {
	ID        uuid.UUID
	ListID    *uuid.UUID
	ItemID    *uuid.UUID
	Quantity  *int
	Completed *bool
}
