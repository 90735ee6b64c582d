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

// ExportCleaner drops the stored export of a list.
type ExportCleaner interface {
	DiscardExport(ctx context.Context, list model.List) error
}

// List manages the lists of a single owner.
type List struct {
	store   model.ListStore
	tx      model.Transactor
	cleaner ExportCleaner
	logger  *logger.Logger
}

// NewList creates a List service. cleaner may be nil when exports are disabled.
func NewList(store model.ListStore, tx model.Transactor, cleaner ExportCleaner, logger *logger.Logger) *List {
	return &List{store: store, tx: tx, cleaner: cleaner, logger: logger}
}

func (s *List) Create(ctx context.Context, params model.CreateListParams, owner uuid.UUID) (model.List, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return model.List{}, apperrors.NewErrInvalidArgument("name", "must not be empty")
	}

	now := time.Now().UTC()
	list, err := s.store.Create(ctx, model.List{
		ID:        uuid.New(),
		OwnerID:   owner,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.List{}, storeError(s.logger, "List service: failed to create list", err,
			"owner_id", owner)
	}

	s.logger.Debug("List service: list created",
		"list_id", list.ID,
		"owner_id", owner)

	return list, nil
}

func (s *List) FindAll(ctx context.Context, owner uuid.UUID, pagination model.Pagination, search model.Search) ([]model.List, error) {
	lists, err := s.store.List(ctx, model.NewFilter(owner, pagination, search))
	if err != nil {
		return nil, storeError(s.logger, "List service: failed to list lists", err,
			"owner_id", owner)
	}
	return lists, nil
}

// FindOne returns NotFound both for unknown ids and for lists of another owner.
func (s *List) FindOne(ctx context.Context, id, owner uuid.UUID) (model.List, error) {
	list, err := s.store.GetByID(ctx, id, owner)
	if err != nil {
		return model.List{}, lookupError(s.logger, "list", id.String(), err)
	}
	return list, nil
}

func (s *List) Update(ctx context.Context, params model.UpdateListParams, owner uuid.UUID) (model.List, error) {
	var updated model.List
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		list, err := s.FindOne(ctx, params.ID, owner)
		if err != nil {
			return err
		}

		if params.Name != nil {
			name := strings.TrimSpace(*params.Name)
			if name == "" {
				return apperrors.NewErrInvalidArgument("name", "must not be empty")
			}
			list.Name = name
		}

		updated, err = s.store.Update(ctx, list)
		if err != nil {
			return storeError(s.logger, "List service: failed to update list", err,
				"list_id", list.ID)
		}
		return nil
	})
	if err != nil {
		return model.List{}, err
	}

	return updated, nil
}

// Remove deletes the list together with its list items and its export.
func (s *List) Remove(ctx context.Context, id, owner uuid.UUID) (model.List, error) {
	var removed model.List
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		list, err := s.FindOne(ctx, id, owner)
		if err != nil {
			return err
		}

		if s.cleaner != nil {
			if err := s.cleaner.DiscardExport(ctx, list); err != nil {
				s.logger.Error("List service: failed to discard export",
					"list_id", id,
					"error", err.Error())
				return apperrors.NewErrInternalServerError(err)
			}
		}

		if err := s.store.Delete(ctx, id, owner); err != nil {
			return lookupError(s.logger, "list", id.String(), err)
		}
		removed = list
		return nil
	})
	if err != nil {
		return model.List{}, err
	}

	s.logger.Debug("List service: list removed",
		"list_id", id,
		"owner_id", owner)

	return removed, nil
}

func (s *List) CountByOwner(ctx context.Context, owner uuid.UUID) (int, error) {
	n, err := s.store.CountByOwner(ctx, owner)
	if err != nil {
		return 0, storeError(s.logger, "List service: failed to count lists", err,
			"owner_id", owner)
	}
	return n, nil
}
