package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/adsite-service/internal/api/http"
	"github.com/spec-kit/adsite-service/internal/api/http/handlers"
	"github.com/spec-kit/adsite-service/internal/auth"
	"github.com/spec-kit/adsite-service/internal/config"
	"github.com/spec-kit/adsite-service/internal/events"
	"github.com/spec-kit/adsite-service/internal/observability"
	"github.com/spec-kit/adsite-service/internal/persistence"
	"github.com/spec-kit/adsite-service/internal/repository"
	"github.com/spec-kit/adsite-service/internal/service"
	"github.com/spec-kit/adsite-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	newsRepo := repository.NewNewsRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	orderRepo := repository.NewServiceOrderRepository(pool)
	messageRepo := repository.NewSupportMessageRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		ServiceRepo:  serviceRepo,
		NewsRepo:     newsRepo,
		ContactRepo:  contactRepo,
		SettingsRepo: settingsRepo,
	})
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:   orderRepo,
		ServiceRepo: serviceRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
	})
	supportService := service.NewSupportService(service.SupportDependencies{
		MessageRepo: messageRepo,
		UserRepo:    userRepo,
		Cache:       redis.ClientHandle(),
		Dispatcher:  dispatcher,
	})
	adminService := service.NewAdminService(userRepo, orderRepo)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, metrics),
		Users:          handlers.NewUsersHandler(authService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Profile:        handlers.NewProfileHandler(authService, orderService, supportService),
		Orders:         handlers.NewOrdersHandler(orderService, catalogService),
		Support:        handlers.NewSupportHandler(supportService),
		Admin:          handlers.NewAdminHandler(adminService, orderService),
		AuthMiddleware: authMiddleware,
		Media:          cfg.Media,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
