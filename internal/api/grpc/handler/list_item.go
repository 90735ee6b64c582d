package handler

import (
	"context"

	"github.com/google/uuid"

	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ pb.ListItemsServer = (*ListItem)(nil)

// ListItemService defines list item operations scoped to the owner of the list.
type ListItemService interface {
	Create(ctx context.Context, params model.CreateListItemParams, owner uuid.UUID) (model.ListItem, error)
	FindAll(ctx context.Context, listID, owner uuid.UUID, pagination model.Pagination, search model.Search) ([]model.ListItem, error)
	FindOne(ctx context.Context, id, owner uuid.UUID) (model.ListItem, error)
	Update(ctx context.Context, params model.UpdateListItemParams, owner uuid.UUID) (model.ListItem, error)
	Remove(ctx context.Context, id, owner uuid.UUID) (model.ListItem, error)
}

// ListItem handles gRPC endpoints for the entries of the caller's lists.
type ListItem struct {
	listItemService ListItemService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

func NewListItem(listItemService ListItemService, contextManager model.ContextManager, logger *logger.Logger) *ListItem {
	return &ListItem{
		listItemService: listItemService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

func (h *ListItem) CreateListItem(ctx context.Context, req *pb.CreateListItemRequest) (*pb.ListItem, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	listID, err := parseID("list_id", req.ListID)
	if err != nil {
		return nil, err
	}
	itemID, err := parseID("item_id", req.ItemID)
	if err != nil {
		return nil, err
	}

	listItem, err := h.listItemService.Create(ctx, model.CreateListItemParams{
		ListID:    listID,
		ItemID:    itemID,
		Quantity:  req.Quantity,
		Completed: req.Completed,
	}, user.ID)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("ListItem handler: list item created",
		"list_item_id", listItem.ID,
		"list_id", listID)

	return toListItem(listItem), nil
}

func (h *ListItem) GetListItem(ctx context.Context, req *pb.IDRequest) (*pb.ListItem, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	listItem, err := h.listItemService.FindOne(ctx, id, user.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return toListItem(listItem), nil
}

func (h *ListItem) ListListItems(ctx context.Context, req *pb.ListListItemsRequest) (*pb.ListItemsResponse, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	listID, err := parseID("list_id", req.ListID)
	if err != nil {
		return nil, err
	}
	pagination, search := toPage(req.Page)

	listItems, err := h.listItemService.FindAll(ctx, listID, user.ID, pagination, search)
	if err != nil {
		return nil, handleError(err)
	}
	return &pb.ListItemsResponse{ListItems: toListItems(listItems)}, nil
}

func (h *ListItem) UpdateListItem(ctx context.Context, req *pb.UpdateListItemRequest) (*pb.ListItem, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}
	listID, err := parseOptionalID("list_id", req.ListID)
	if err != nil {
		return nil, err
	}
	itemID, err := parseOptionalID("item_id", req.ItemID)
	if err != nil {
		return nil, err
	}

	listItem, err := h.listItemService.Update(ctx, model.UpdateListItemParams{
		ID:        id,
		ListID:    listID,
		ItemID:    itemID,
		Quantity:  req.Quantity,
		Completed: req.Completed,
	}, user.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return toListItem(listItem), nil
}

func (h *ListItem) RemoveListItem(ctx context.Context, req *pb.IDRequest) (*pb.ListItem, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	listItem, err := h.listItemService.Remove(ctx, id, user.ID)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("ListItem handler: list item removed",
		"list_item_id", listItem.ID,
		"list_id", listItem.ListID)

	return toListItem(listItem), nil
}
