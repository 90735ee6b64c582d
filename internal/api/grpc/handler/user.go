package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/listkeeper-server/internal/apperrors"
	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

var _ pb.UsersServer = (*User)(nil)

// UserService defines the user directory operations exposed to admins.
type UserService interface {
	FindAll(ctx context.Context, roles []model.Role, pagination model.Pagination) ([]model.User, error)
	Update(ctx context.Context, params model.UpdateUserParams, actor model.User) (model.User, error)
	Block(ctx context.Context, id uuid.UUID, actor model.User) (model.User, error)
}

// GraphService resolves nested user and list nodes.
type GraphService interface {
	User(ctx context.Context, id uuid.UUID, q model.UserGraphQuery) (model.UserGraph, error)
	List(ctx context.Context, id, owner uuid.UUID, q model.ListGraphQuery) (model.ListGraph, error)
	ListNode(ctx context.Context, list model.List, q model.ListGraphQuery) (model.ListGraph, error)
}

// User handles the admin-only user directory endpoints.
type User struct {
	userService    UserService
	graphService   GraphService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewUser(userService UserService, graphService GraphService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		graphService:   graphService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *User) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	pagination, search := toPage(req.Page)
	if search.Term != "" {
		return nil, handleError(apperrors.NewErrInvalidArgument("page.search", "is not supported for users"))
	}

	users, err := h.userService.FindAll(ctx, toRoles(req.Roles), pagination)
	if err != nil {
		return nil, handleError(err)
	}

	out := make([]*pb.User, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	return &pb.ListUsersResponse{Users: out}, nil
}

// GetUser returns the user with item and list counts, plus any collections
// the request asks for.
func (h *User) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.User, error) {
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	node, err := h.graphService.User(ctx, id, model.UserGraphQuery{
		Items:     toGraphPage(req.Items),
		Lists:     toGraphPage(req.Lists),
		ListItems: toGraphPage(req.ListItems),
	})
	if err != nil {
		return nil, handleError(err)
	}

	return toUserGraph(node), nil
}

func (h *User) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.User, error) {
	actor, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	updated, err := h.userService.Update(ctx, model.UpdateUserParams{
		ID:       id,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Roles:    toRoles(req.Roles),
		IsActive: req.IsActive,
	}, actor)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Info("User handler: user updated", "user_id", updated.ID, "actor_id", actor.ID)

	return toUser(updated), nil
}

func (h *User) BlockUser(ctx context.Context, req *pb.IDRequest) (*pb.User, error) {
	actor, err := currentUser(ctx, h.contextManager)
	if err != nil {
		return nil, err
	}
	id, err := parseID("id", req.ID)
	if err != nil {
		return nil, err
	}

	blocked, err := h.userService.Block(ctx, id, actor)
	if err != nil {
		return nil, handleError(err)
	}

	h.logger.Info("User handler: user blocked", "user_id", blocked.ID, "actor_id", actor.ID)

	return toUser(blocked), nil
}
