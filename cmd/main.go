package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcctx "github.com/dtroode/listkeeper-server/internal/api/grpc/context"
	"github.com/dtroode/listkeeper-server/internal/api/grpc/handler"
	"github.com/dtroode/listkeeper-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/listkeeper-server/internal/api/grpc/server"
	"github.com/dtroode/listkeeper-server/internal/config"
	"github.com/dtroode/listkeeper-server/internal/logger"
	"github.com/dtroode/listkeeper-server/internal/model"
	"github.com/dtroode/listkeeper-server/internal/password"
	"github.com/dtroode/listkeeper-server/internal/repository/memory"
	"github.com/dtroode/listkeeper-server/internal/repository/postgres"
	"github.com/dtroode/listkeeper-server/internal/server"
	"github.com/dtroode/listkeeper-server/internal/service"
	storage "github.com/dtroode/listkeeper-server/internal/storage/minio"
	"github.com/dtroode/listkeeper-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type stores struct {
	users     model.UserStore
	items     model.ItemStore
	lists     model.ListStore
	listItems model.ListItemStore
	tx        model.Transactor
	close     func() error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "driver", cfg.Database.Driver, "error", err)
	}
	defer st.close()

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	hasher := password.NewBcrypt(cfg.Bcrypt.Cost)

	var (
		exports handler.ExportService
		cleaner service.ExportCleaner
	)
	if cfg.Storage.Enabled {
		storageClient, err := storage.Connect(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		exporter := service.NewExporter(storageClient, st.lists, st.listItems, logger)
		exports = exporter
		cleaner = exporter
	} else {
		logger.Info("list export is disabled")
	}

	tokenService := service.NewTokenService(tokenManager, logger)
	itemService := service.NewItem(st.items, st.tx, logger)
	listService := service.NewList(st.lists, st.tx, cleaner, logger)
	listItemService := service.NewListItem(st.listItems, st.lists, st.items, st.tx, logger)
	userService := service.NewUser(st.users, hasher, st.tx, itemService, listService, logger)
	graphService := service.NewGraph(userService, itemService, listService, listItemService)
	authService := service.NewAuth(userService, st.users, hasher, tokenService, logger)
	guard := service.NewGuard(tokenService, st.users, logger)

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		admin, created, err := userService.EnsureSuperUser(ctx, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			logger.Fatal("failed to bootstrap super user", "error", err)
		}
		logger.Info("super user ready", "user_id", admin.ID, "created", created)
	}

	r := router.New(router.Services{
		Auth:      authService,
		Identity:  guard,
		Users:     userService,
		Graph:     graphService,
		Items:     itemService,
		Lists:     listService,
		ListItems: listItemService,
		Exports:   exports,
	}, grpcctx.NewManager(), logger)

	grpcServer := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer
	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg *config.Config) (stores, error) {
	if cfg.Database.Driver == "memory" {
		db := memory.NewDB()
		return stores{
			users:     memory.NewUserRepository(db),
			items:     memory.NewItemRepository(db),
			lists:     memory.NewListRepository(db),
			listItems: memory.NewListItemRepository(db),
			tx:        db,
			close:     db.Close,
		}, nil
	}

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		return stores{}, err
	}
	return stores{
		users:     postgres.NewUserRepository(db),
		items:     postgres.NewItemRepository(db),
		lists:     postgres.NewListRepository(db),
		listItems: postgres.NewListItemRepository(db),
		tx:        db,
		close:     db.Close,
	}, nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
