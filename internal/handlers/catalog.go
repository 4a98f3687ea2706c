package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"reviewhub-backend/internal/apperrors"
	"reviewhub-backend/internal/catalog"
	"reviewhub-backend/internal/logger"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves movie and restaurant lookups from the fixture store.
type CatalogHandler struct {
	store  *catalog.Store
	logger *slog.Logger
}

func NewCatalogHandler(store *catalog.Store, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		logger: logger,
	}
}

// --- GET /api/movies/search?query= ---

func (h *CatalogHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, r, apperrors.InvalidInput("query parameter is required"), h.logger)
		return
	}

	page := h.store.SearchMovies(query)
	logger.FromContext(r.Context(), h.logger).DebugContext(r.Context(), "movie search",
		slog.String("query", query),
		slog.Int("results", page.TotalResults),
	)
	writeJSON(w, http.StatusOK, page)
}

// --- GET /api/movies/popular ---

func (h *CatalogHandler) PopularMovies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.PopularMovies())
}

// --- GET /api/movies/now-playing ---

func (h *CatalogHandler) NowPlayingMovies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.NowPlayingMovies())
}

// --- GET /api/movies/{id} ---

func (h *CatalogHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.store.Movie(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, movie)
}

// --- GET /api/restaurants/search?location=&term=&limit= ---
// "query" is accepted as an alias for "term".

func (h *CatalogHandler) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	term := params.Get("term")
	if term == "" {
		term = params.Get("query")
	}
	location := params.Get("location")
	if location == "" {
		location = catalog.DefaultLocation
	}

	limit := 0
	if v := params.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, r, apperrors.InvalidInput("limit must be a positive integer"), h.logger)
			return
		}
		limit = n
	}

	page := h.store.SearchRestaurants(catalog.RestaurantQuery{Term: term, Limit: limit})
	logger.FromContext(r.Context(), h.logger).DebugContext(r.Context(), "restaurant search",
		slog.String("term", term),
		slog.String("location", location),
		slog.Int("total", page.Total),
	)
	writeJSON(w, http.StatusOK, page)
}

// --- GET /api/restaurants/{id} ---

func (h *CatalogHandler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.store.Restaurant(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

// --- GET /api/restaurants/{id}/reviews ---

func (h *CatalogHandler) RestaurantReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"reviews": h.store.RestaurantReviews(chi.URLParam(r, "id")),
	})
}
