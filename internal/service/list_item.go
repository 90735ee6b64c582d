package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// ListItem manages list items. A list item is owned through its list, and
// both its list and its item must belong to the caller.
type ListItem struct {
	store  model.ListItemStore
	lists  model.ListStore
	items  model.ItemStore
	tx     model.Transactor
	logger *logger.Logger
}

func NewListItem(
	store model.ListItemStore,
	lists model.ListStore,
	items model.ItemStore,
	tx model.Transactor,
	logger *logger.Logger,
) *ListItem {
	return &ListItem{
		store:  store,
		lists:  lists,
		items:  items,
		tx:     tx,
		logger: logger,
	}
}

func (s *ListItem) Create(ctx context.Context, params model.CreateListItemParams, owner uuid.UUID) (model.ListItem, error) {
	if params.Quantity < 0 {
		return model.ListItem{}, apperrors.NewErrInvalidArgument("quantity", "must not be negative")
	}

	var created model.ListItem
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, params.ListID, params.ItemID, owner); err != nil {
			return err
		}

		now := time.Now().UTC()
		var err error
		created, err = s.store.Create(ctx, model.ListItem{
			ID:        uuid.New(),
			ListID:    params.ListID,
			ItemID:    params.ItemID,
			Quantity:  params.Quantity,
			Completed: params.Completed,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return storeError(s.logger, "ListItem service: failed to create list item", err,
				"list_id", params.ListID,
				"item_id", params.ItemID)
		}
		return nil
	})
	if err != nil {
		return model.ListItem{}, err
	}

	s.logger.Debug("ListItem service: list item created",
		"list_item_id", created.ID,
		"list_id", created.ListID)

	return created, nil
}

// FindAll returns a page of the list's items whose item name contains search.
func (s *ListItem) FindAll(ctx context.Context, listID, owner uuid.UUID, pagination model.Pagination, search model.Search) ([]model.ListItem, error) {
	if _, err := s.lists.GetByID(ctx, listID, owner); err != nil {
		return nil, lookupError(s.logger, "list", listID.String(), err)
	}

	listItems, err := s.store.List(ctx, model.NewFilter(owner, pagination, search).ForList(listID))
	if err != nil {
		return nil, storeError(s.logger, "ListItem service: failed to list list items", err,
			"list_id", listID)
	}
	return listItems, nil
}

func (s *ListItem) FindOne(ctx context.Context, id, owner uuid.UUID) (model.ListItem, error) {
	listItem, err := s.store.GetByID(ctx, id, owner)
	if err != nil {
		return model.ListItem{}, lookupError(s.logger, "list item", id.String(), err)
	}
	return listItem, nil
}

// Update may move the list item to another list or point it at another item;
// both targets are checked against owner before the write.
func (s *ListItem) Update(ctx context.Context, params model.UpdateListItemParams, owner uuid.UUID) (model.ListItem, error) {
	var updated model.ListItem
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		listItem, err := s.FindOne(ctx, params.ID, owner)
		if err != nil {
			return err
		}

		if params.ListID != nil {
			listItem.ListID = *params.ListID
		}
		if params.ItemID != nil {
			listItem.ItemID = *params.ItemID
		}
		if params.ListID != nil || params.ItemID != nil {
			if err := s.checkReferences(ctx, listItem.ListID, listItem.ItemID, owner); err != nil {
				return err
			}
		}
		if params.Quantity != nil {
			if *params.Quantity < 0 {
				return apperrors.NewErrInvalidArgument("quantity", "must not be negative")
			}
			listItem.Quantity = *params.Quantity
		}
		if params.Completed != nil {
			listItem.Completed = *params.Completed
		}

		updated, err = s.store.Update(ctx, listItem)
		if err != nil {
			return storeError(s.logger, "ListItem service: failed to update list item", err,
				"list_item_id", listItem.ID)
		}
		return nil
	})
	if err != nil {
		return model.ListItem{}, err
	}

	return updated, nil
}

func (s *ListItem) Remove(ctx context.Context, id, owner uuid.UUID) (model.ListItem, error) {
	var removed model.ListItem
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		listItem, err := s.FindOne(ctx, id, owner)
		if err != nil {
			return err
		}

		if err := s.store.Delete(ctx, id); err != nil {
			return lookupError(s.logger, "list item", id.String(), err)
		}
		removed = listItem
		return nil
	})
	if err != nil {
		return model.ListItem{}, err
	}

	return removed, nil
}

func (s *ListItem) CountByList(ctx context.Context, listID uuid.UUID) (int, error) {
	n, err := s.store.CountByList(ctx, listID)
	if err != nil {
		return 0, storeError(s.logger, "ListItem service: failed to count list items", err,
			"list_id", listID)
	}
	return n, nil
}

func (s *ListItem) checkReferences(ctx context.Context, listID, itemID, owner uuid.UUID) error {
	if _, err := s.lists.GetByID(ctx, listID, owner); err != nil {
		return lookupError(s.logger, "list", listID.String(), err)
	}
	if _, err := s.items.GetByID(ctx, itemID, owner); err != nil {
		return lookupError(s.logger, "item", itemID.String(), err)
	}
	return nil
}
