package router

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/listkeeper-server/internal/api/grpc/codec"
	"github.com/dtroode/listkeeper-server/internal/api/grpc/handler"
	pb "github.com/dtroode/listkeeper-server/internal/api/grpc/listkeeperpb"
	"github.com/dtroode/listkeeper-server/internal/api/grpc/middleware"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
)

// Services groups the application services exposed over gRPC.
// Exports may be nil, which disables the list export endpoints.
type Services struct {
	Auth      handler.AuthService
	Identity  middleware.IdentityResolver
	Users     handler.UserService
	Graph     handler.GraphService
	Items     handler.ItemService
	Lists     handler.ListService
	ListItems handler.ListItemService
	Exports   handler.ExportService
}

// Router represents a gRPC router for listkeeper operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	services       Services
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(services Services, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Policy returns the role requirements of every guarded method.
// The Users service is reserved for admins and super users.
func Policy() middleware.Policy {
	admins := []model.Role{model.RoleAdmin, model.RoleSuperUser}
	return middleware.Policy{
		pb.UsersListUsers:  admins,
		pb.UsersGetUser:    admins,
		pb.UsersUpdateUser: admins,
		pb.UsersBlockUser:  admins,
	}
}

// requiresAuth selects every method except signup and login.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	switch c.FullMethod() {
	case pb.AuthSignup, pb.AuthLogin:
		return false
	}
	return true
}

// Register registers all gRPC services and middleware.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Identity, r.contextManager, r.logger)
	authorize := middleware.NewAuthorize(Policy(), r.contextManager, r.logger)
	validate := middleware.NewValidate()

	s := grpc.NewServer(
		grpc.ForceServerCodec(codec.JSON{}),
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(r.recoverPanic)),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
			authorize.HandleGRPC,
			validate.HandleGRPC,
		),
	)

	pb.RegisterAuthServer(s, handler.NewAuth(r.services.Auth, r.contextManager, r.logger))
	pb.RegisterUsersServer(s, handler.NewUser(r.services.Users, r.services.Graph, r.contextManager, r.logger))
	pb.RegisterItemsServer(s, handler.NewItem(r.services.Items, r.contextManager, r.logger))
	pb.RegisterListsServer(s, handler.NewList(r.services.Lists, r.services.Graph, r.services.Exports, r.contextManager, r.logger))
	pb.RegisterListItemsServer(s, handler.NewListItem(r.services.ListItems, r.contextManager, r.logger))

	return s
}

func (r *Router) recoverPanic(ctx context.Context, p any) error {
	r.logger.Error("gRPC handler panicked", "panic", fmt.Sprint(p))
	return status.Error(codes.Internal, "please check server logs")
}
