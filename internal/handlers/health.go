package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const (
	serviceActive = "active"
	serviceDown   = "down"
)

type reviewCounter interface {
	Count(ctx context.Context) (int, error)
}

type HealthHandler struct {
	reviews     reviewCounter
	environment string
	store       string
	logger      *slog.Logger
}

func NewHealthHandler(reviews reviewCounter, environment, store string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		reviews:     reviews,
		environment: environment,
		store:       store,
		logger:      logger,
	}
}

type healthResponse struct {
	Message     string            `json:"message"`
	Timestamp   time.Time         `json:"timestamp"`
	Services    map[string]string `json:"services"`
	Environment string            `json:"environment"`
	ReviewStore string            `json:"reviewStore"`
	ReviewCount int               `json:"reviewCount"`
}

// --- GET /api/health ---

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := healthResponse{
		Message:   "Server is running!",
		Timestamp: time.Now().UTC(),
		Services: map[string]string{
			"movies":      serviceActive,
			"restaurants": serviceActive,
			"reviews":     serviceActive,
			"auth":        serviceActive,
		},
		Environment: h.environment,
		ReviewStore: h.store,
	}

	status := http.StatusOK
	count, err := h.reviews.Count(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "review store health check failed", slog.String("error", err.Error()))
		resp.Message = "Review store unavailable"
		resp.Services["reviews"] = serviceDown
		status = http.StatusServiceUnavailable
	}
	resp.ReviewCount = count

	writeJSON(w, status, resp)
}
