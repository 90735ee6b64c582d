package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ItemStore defines owner-scoped persistence operations for catalog items.
type ItemStore interface {
	Create(ctx context.Context, item Item) (Item, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (Item, error)
	List(ctx context.Context, filter Filter) ([]Item, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
	Update(ctx context.Context, item Item) (Item, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// Item is a catalog record owned by exactly one user.
type Item struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Quantity      float64
	QuantityUnits *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CreateItemParams contains parameters to create an item.
type CreateItemParams struct {
	Name          string
	Quantity      float64
	QuantityUnits *string
}

// UpdateItemParams contains a partial item update.
type UpdateItemParams struct {
	ID            uuid.UUID
	Name          *string
	Quantity      *float64
	QuantityUnits *string
}
