package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ pb.ListsServer = (*List)(nil)

// ListService defines owner-scoped list operations.
type ListService interface {
	Create(ctx context.Context, params model.CreateListParams, owner uuid.UUID) (model.List, error)
	FindAll(ctx context.Context, owner uuid.UUID, pagination model.Pagination, search model.Search) ([]model.List, error)
	Update(ctx context.Context, params model.UpdateListParams, owner uuid.UUID) (model.List, error)
	Remove(ctx context.Context, id, owner uuid.UUID) (model.List, error)
}

// ExportService stores and reads JSON snapshots of lists.
type ExportService interface {
	ExportList(ctx context.Context, listID, owner uuid.UUID) (model.ListExport, error)
	GetListExport(ctx context.Context, listID, owner uuid.UUID) ([]byte, error)
}

// List handles gRPC endpoints for the caller's lists.
type List struct {
	listService    ListService
	graphService   GraphService
	exportService  ExportService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewList creates a List handler. exportService may be nil, in which case the
// export endpoints answer FailedPrecondition.
func NewList(
	listService ListService,
	graphService GraphService,
	exportService ExportService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *List {
	return &List{
		listService:    listService,
		graphService:   graphService,
		exportService:  exportService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *List) CreateList(ctx context.Context, req *pb.CreateListRequest) (*pb.List, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}

	list, err := h.listService.Create(ctx, model.CreateListParams{Name: req.Name}, user.ID)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("List handler: list created", "list_id", list.ID, "user_id", user.ID)

	return toList(list), nil
}

// GetList returns the list with its total item count and, if requested, a
// page of its list items.
func (h *List) GetList(ctx context.Context, req *pb.GetListRequest) (*pb.List, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	node, err := h.graphService.List(ctx, id, user.ID, model.ListGraphQuery{Items: toGraphPage(req.Items)})
	if err != nil {
		return nil, handleError(err)
	}
	return toListGraph(node), nil
}

func (h *List) ListLists(ctx context.Context, req *pb.ListListsRequest) (*pb.ListsResponse, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	pagination, search := toPage(req.Page)

	lists, err := h.listService.FindAll(ctx, user.ID, pagination, search)
	if err != nil {
		return nil, handleError(err)
	}

	q := model.ListGraphQuery{Items: toGraphPage(req.Items)}
	out := make([]*pb.List, 0, len(lists))
	for _, l := range lists {
		node, err := h.graphService.ListNode(ctx, l, q)
		if err != nil {
			return nil, handleError(err)
		}
		out = append(out, toListGraph(node))
	}
	return &pb.ListsResponse{Lists: out}, nil
}

func (h *List) UpdateList(ctx context.Context, req *pb.UpdateListRequest) (*pb.List, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	list, err := h.listService.Update(ctx, model.UpdateListParams{ID: id, Name: req.Name}, user.ID)
	if err != nil {
		return nil, handleError(err)
	}
	return toList(list), nil
}

func (h *List) RemoveList(ctx context.Context, req *pb.IDRequest) (*pb.List, error) {
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	list, err := h.listService.Remove(ctx, id, user.ID)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Debug("List handler: list removed", "list_id", list.ID, "user_id", user.ID)

	return toList(list), nil
}

func (h *List) ExportList(ctx context.Context, req *pb.IDRequest) (*pb.ListExport, error) {
	if h.exportService == nil {
		return nil, errExportDisabled
	}
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	export, err := h.exportService.ExportList(ctx, id, user.ID)
	if err != nil {
		return nil, handleError(err)
	}

	return &pb.ListExport{
		ListID:     export.ListID.String(),
		Key:        export.Key,
		Size:       export.Size,
		ExportedAt: export.ExportedAt,
	}, nil
}

func (h *List) GetListExport(ctx context.Context, req *pb.IDRequest) (*pb.ListExportData, error) {
	if h.exportService == nil {
		return nil, errExportDisabled
	}
	user, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	data, err := h.exportService.GetListExport(ctx, id, user.ID)
	if err != nil {
		return nil, handleError(err)
	}

	return &pb.ListExportData{ListID: id.String(), Data: data}, nil
}

var errExportDisabled = status.Error(codes.FailedPrecondition, "list export is disabled")
