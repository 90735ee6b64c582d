package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// Item manages the catalog items of a single owner.
type Item struct {
	store  model.ItemStore
	tx     model.Transactor
	logger *logger.Logger
}

func NewItem(store model.ItemStore, tx model.Transactor, logger *logger.Logger) *Item {
	return &Item{store: store, tx: tx, logger: logger}
}

func (s *Item) Create(ctx context.Context, params model.CreateItemParams, owner uuid.UUID) (model.Item, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return model.Item{}, apperrors.NewErrInvalidArgument("name", "must not be empty")
	}
	if params.Quantity <= 0 {
		return model.Item{}, apperrors.NewErrInvalidArgument("quantity", "must be positive")
	}

	now := time.Now().UTC()
	item, err := s.store.Create(ctx, model.Item{
		ID:            uuid.New(),
		OwnerID:       owner,
		Name:          name,
		Quantity:      params.Quantity,
		QuantityUnits: params.QuantityUnits,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return model.Item{}, storeError(s.logger, "Item service: failed to create item", err,
			"owner_id", owner)
	}

	s.logger.Debug("Item service: item created",
		"item_id", item.ID,
		"owner_id", owner)

	return item, nil
}

// FindAll returns a page of the owner's items whose name contains search.
func (s *Item) FindAll(ctx context.Context, owner uuid.UUID, pagination model.Pagination, search model.Search) ([]model.Item, error) {
	items, err := s.store.List(ctx, model.NewFilter(owner, pagination, search))
	if err != nil {
		return nil, storeError(s.logger, "Item service: failed to list items", err,
			"owner_id", owner)
	}
	return items, nil
}

// FindOne returns NotFound both for unknown ids and for items of another owner.
func (s *Item) FindOne(ctx context.Context, id, owner uuid.UUID) (model.Item, error) {
	item, err := s.store.GetByID(ctx, id, owner)
	if err != nil {
		return model.Item{}, lookupError(s.logger, "item", id.String(), err)
	}
	return item, nil
}

func (s *Item) Update(ctx context.Context, params model.UpdateItemParams, owner uuid.UUID) (model.Item, error) {
	var updated model.Item
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.FindOne(ctx, params.ID, owner)
		if err != nil {
			return err
		}

		if params.Name != nil {
			name := strings.TrimSpace(*params.Name)
			if name == "" {
				return apperrors.NewErrInvalidArgument("name", "must not be empty")
			}
			item.Name = name
		}
		if params.Quantity != nil {
			if *params.Quantity <= 0 {
				return apperrors.NewErrInvalidArgument("quantity", "must be positive")
			}
			item.Quantity = *params.Quantity
		}
		if params.QuantityUnits != nil {
			item.QuantityUnits = params.QuantityUnits
		}

		updated, err = s.store.Update(ctx, item)
		if err != nil {
			return storeError(s.logger, "Item service: failed to update item", err,
				"item_id", item.ID)
		}
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}

	return updated, nil
}

// Remove deletes the item and returns it as it was before deletion.
func (s *Item) Remove(ctx context.Context, id, owner uuid.UUID) (model.Item, error) {
	var removed model.Item
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.FindOne(ctx, id, owner)
		if err != nil {
			return err
		}

		if err := s.store.Delete(ctx, id, owner); err != nil {
			return lookupError(s.logger, "item", id.String(), err)
		}
		removed = item
		return nil
	})
	if err != nil {
		return model.Item{}, err
	}

	s.logger.Debug("Item service: item removed",
		"item_id", id,
		"owner_id", owner)

	return removed, nil
}

func (s *Item) CountByOwner(ctx context.Context, owner uuid.UUID) (int, error) {
	n, err := s.store.CountByOwner(ctx, owner)
	if err != nil {
		return 0, storeError(s.logger, "Item service: failed to count items", err,
			"owner_id", owner)
	}
	return n, nil
}
