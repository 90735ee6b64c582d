package handler

import (
	"context"

	"github.com/google/uuid"

	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ pb.ItemsServer = (*Item)(nil)

// ItemService defines owner-scoped item operations.
type ItemService interface {
	Create(ctx context.Context, params model.CreateItemParams, owner uuid.UUID) (model.Item, error)
	FindAll(ctx context.Context, owner uuid.UUID, pagination model.Pagination, search model.Search) ([]model.Item, error)
	FindOne(ctx context.Context, id, owner uuid.UUID) (model.Item, error)
	Update(ctx context.Context, params model.UpdateItemParams, owner uuid.UUID) (model.Item, error)
	Remove(ctx context.Context, id, owner uuid.UUID) (model.Item, error)
}

// Item handles gRPC endpoints for the caller's items.
type Item struct {
	itemService    ItemService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewItem(itemService ItemService, contextManager model.ContextManager, logger *logger.Logger) *Item {
	return &Item{
		itemService:    itemService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Item) CreateItem(ctx context.Context, req *pb.CreateItemRequest) (*pb.Item, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}

	item, err := h.itemService.Create(ctx, model.CreateItemParams{
		Name:          req.Name,
		Quantity:      req.Quantity,
		QuantityUnits: req.QuantityUnits,
	}, user.ID)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("Item handler: item created", "item_id", item.ID, "user_id", user.ID)

	return toItem(item), nil
}

func (h *Item) GetItem(ctx context.Context, req *pb.IDRequest) (*pb.Item, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	item, err := h.itemService.FindOne(ctx, id, user.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return toItem(item), nil
}

func (h *Item) ListItems(ctx context.Context, req *pb.ListItemsRequest) (*pb.ItemsResponse, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	pagination, search := toPage(req.Page)

	items, err := h.itemService.FindAll(ctx, user.ID, pagination, search)
	if err != nil {
		return nil, handleError(err)
	}
	return &pb.ItemsResponse{Items: toItems(items)}, nil
}

func (h *Item) UpdateItem(ctx context.Context, req *pb.UpdateItemRequest) (*pb.Item, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	item, err := h.itemService.Update(ctx, model.UpdateItemParams{
		ID:            id,
		Name:          req.Name,
		Quantity:      req.Quantity,
		QuantityUnits: req.QuantityUnits,
	}, user.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return toItem(item), nil
}

func (h *Item) RemoveItem(ctx context.Context, req *pb.IDRequest) (*pb.Item, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	item, err := h.itemService.Remove(ctx, id, user.ID)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("Item handler: item removed", "item_id", item.ID, "user_id", user.ID)

	return toItem(item), nil
}
