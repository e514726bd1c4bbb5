package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Malex1718/expressBookReviews/internal/api/http/handlers"
	"github.com/Malex1718/expressBookReviews/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Books          *handlers.BooksHandler
	Reviews        *handlers.ReviewsHandler
	SessionGate    *auth.SessionGate
	MetricsGather  prometheus.Gatherer
	SimulatedDelay time.Duration
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.MetricsGather, promhttp.HandlerOpts{})))

	app.Post("/register", cfg.Users.Register)
	app.Post("/login", cfg.Users.Login)

	app.Get("/", cfg.Books.ListAll)
	app.Get("/isbn/:isbn", cfg.Books.GetByISBN)
	app.Get("/author/:author", cfg.Books.GetByAuthor)
	app.Get("/title/:title", cfg.Books.GetByTitle)
	app.Get("/review/:isbn", cfg.Books.GetReviews)
	app.Get("/stats", cfg.Books.Stats)
	app.Get("/search", cfg.Books.Search)

	// demonstration routes: same reads behind an optional fixed delay.
	// The delay handler is attached per route so it cannot spill over
	// onto anything registered later.
	delay := simulatedDelayMiddleware(cfg.SimulatedDelay)
	app.Get("/async/books", delay, cfg.Books.DelayedListAll)
	app.Get("/async/author/:author", delay, cfg.Books.DelayedGetByAuthor)
	app.Get("/promise/isbn/:isbn", delay, cfg.Books.DelayedGetByISBN)
	app.Get("/promise/title/:title", delay, cfg.Books.DelayedGetByTitle)

	protected := app.Group("/auth", cfg.SessionGate.Handle)
	protected.Put("/review/:isbn", cfg.Reviews.Upsert)
	protected.Delete("/review/:isbn", cfg.Reviews.Delete)
	protected.Get("/reviews", cfg.Reviews.ListMine)
	protected.Post("/logout", cfg.Users.Logout)
}
