package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/xalt/xolt-api/internal/api/http/handlers"
	"github.com/xalt/xolt-api/internal/auth"
	"github.com/xalt/xolt-api/internal/config"
	"github.com/xalt/xolt-api/internal/events"
	"github.com/xalt/xolt-api/internal/observability"
	"github.com/xalt/xolt-api/internal/persistence"
	"github.com/xalt/xolt-api/internal/repository"
	"github.com/xalt/xolt-api/internal/service"
	"github.com/xalt/xolt-api/internal/worker"

	httptransport "github.com/xalt/xolt-api/internal/api/http"
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

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		logger.Fatal("failed to create upload dir", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(mongo.Collection("users"))
	productRepo := repository.NewProductRepository(mongo.Collection("products"))
	todoRepo := repository.NewTodoRepository(mongo.Collection("todos"))
	resetRepo := repository.NewPasswordResetRepository(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()
	mailer := service.NewMailer(cfg.Notification, logger)
	notificationService := service.NewNotificationService(dispatcher, mailer, logger)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, userRepo, resetRepo, dispatcher)
	userService := service.NewUserService(*cfg, userRepo, dispatcher)
	productService := service.NewProductService(productRepo)
	todoService := service.NewTodoService(todoRepo)

	resolver := auth.NewResolver(userRepo)
	authMiddleware := auth.NewMiddleware(authService.TokenManager(), resolver, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, mongo, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Products:       handlers.NewProductsHandler(productService, cfg.Upload.Dir),
		Todos:          handlers.NewTodosHandler(todoService),
		Upload:         handlers.NewUploadHandler(cfg.Upload.Dir),
		AuthMiddleware: authMiddleware,
		UploadDir:      cfg.Upload.Dir,
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
