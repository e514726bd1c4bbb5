package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	httptransport "github.com/Malex1718/expressBookReviews/internal/api/http"
	"github.com/Malex1718/expressBookReviews/internal/api/http/handlers"
	"github.com/Malex1718/expressBookReviews/internal/auth"
	"github.com/Malex1718/expressBookReviews/internal/config"
	"github.com/Malex1718/expressBookReviews/internal/events"
	"github.com/Malex1718/expressBookReviews/internal/observability"
	"github.com/Malex1718/expressBookReviews/internal/repository"
	"github.com/Malex1718/expressBookReviews/internal/service"
	"github.com/Malex1718/expressBookReviews/internal/session"
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

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	catalogRepo := repository.NewCatalogRepository(repository.DefaultSeed())
	userRepo := repository.NewUserRepository()
	sessions := newSessionStore(cfg.Session, logger)

	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, logger)
	notifications.RegisterHandlers()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:     userRepo,
		SessionStore: sessions,
		Dispatcher:   dispatcher,
	})
	catalogService := service.NewCatalogService(catalogRepo)
	reviewService := service.NewReviewService(catalogRepo, dispatcher)

	sessionGate := auth.NewSessionGate(authService.TokenManager(), sessions, cfg.Session.CookieName)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, sessions),
		Users:          handlers.NewUsersHandler(authService, cfg.Session.CookieName),
		Books:          handlers.NewBooksHandler(catalogService),
		Reviews:        handlers.NewReviewsHandler(reviewService),
		SessionGate:    sessionGate,
		MetricsGather:  registry,
		SimulatedDelay: cfg.Catalog.SimulatedDelay(),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func newSessionStore(cfg config.SessionConfig, logger *zap.Logger) session.Store {
	if strings.EqualFold(cfg.Backend, "redis") {
		return session.NewRedisStore(cfg, logger)
	}
	return session.NewMemoryStore()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
