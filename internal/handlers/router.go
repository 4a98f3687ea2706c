package handlers

import (
	"log/slog"
	"net/http"

	"reviewhub-backend/internal/auth"
	"reviewhub-backend/internal/catalog"
	customMiddleware "reviewhub-backend/internal/middleware"
	"reviewhub-backend/internal/notify"
	"reviewhub-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps is everything the HTTP layer needs from the rest of the service.
type Deps struct {
	Reviews     *repository.ReviewRepo
	Catalog     *catalog.Store
	Identity    auth.IdentityProvider
	Notifier    notify.Notifier
	Logger      *slog.Logger
	Environment string
	ReviewStore string
	CORSOrigins []string
}

var availableEndpoints = []string{
	"GET    /api/health",
	"GET    /api/movies/search?query=term",
	"GET    /api/movies/popular",
	"GET    /api/movies/now-playing",
	"GET    /api/movies/{id}",
	"GET    /api/restaurants/search?location=city&term=food",
	"GET    /api/restaurants/{id}",
	"GET    /api/restaurants/{id}/reviews",
	"GET    /api/reviews",
	"GET    /api/reviews/type/{type}",
	"GET    /api/reviews/item/{itemId}",
	"GET    /api/reviews/{id}",
	"POST   /api/reviews",
	"PUT    /api/reviews/{id}",
	"DELETE /api/reviews/{id}",
	"POST   /api/auth/verify",
	"POST   /api/auth/login",
	"POST   /api/auth/register",
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.RequestLogging(d.Logger))
	r.Use(middleware.Recoverer)
	r.Use(customMiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.Handler())

	healthHandler := NewHealthHandler(d.Reviews, d.Environment, d.ReviewStore, d.Logger)
	catalogHandler := NewCatalogHandler(d.Catalog, d.Logger)
	reviewHandler := NewReviewHandler(d.Reviews, d.Notifier, d.Logger)
	authHandler := NewAuthHandler(d.Identity, d.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Use(customMiddleware.Identify(d.Identity, d.Logger))

		r.Get("/health", healthHandler.Check)

		r.Route("/movies", func(r chi.Router) {
			r.Get("/search", catalogHandler.SearchMovies)
			r.Get("/popular", catalogHandler.PopularMovies)
			r.Get("/now-playing", catalogHandler.NowPlayingMovies)
			r.Get("/{id}", catalogHandler.GetMovie)
		})

		r.Route("/restaurants", func(r chi.Router) {
			r.Get("/search", catalogHandler.SearchRestaurants)
			r.Get("/{id}", catalogHandler.GetRestaurant)
			r.Get("/{id}/reviews", catalogHandler.RestaurantReviews)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", reviewHandler.ListAll)
			r.Post("/", reviewHandler.Create)
			r.Get("/type/{type}", reviewHandler.ListByType)
			r.Get("/item/{itemId}", reviewHandler.ListByItem)
			r.Get("/{id}", reviewHandler.Get)
			r.Put("/{id}", reviewHandler.Update)
			r.Delete("/{id}", reviewHandler.Delete)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/verify", authHandler.Verify)
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":               "Endpoint not found",
			"available_endpoints": availableEndpoints,
		})
	})

	return r
}
