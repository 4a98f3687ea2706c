package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"reviewhub-backend/internal/logger"
	"reviewhub-backend/internal/middleware"
	"reviewhub-backend/internal/models"
	"reviewhub-backend/internal/notify"
	"reviewhub-backend/internal/repository"

	"github.com/go-chi/chi/v5"
)

// ReviewHandler translates review requests into ReviewRepo calls.
type ReviewHandler struct {
	reviews  *repository.ReviewRepo
	notifier notify.Notifier
	logger   *slog.Logger
}

func NewReviewHandler(reviews *repository.ReviewRepo, notifier notify.Notifier, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews:  reviews,
		notifier: notifier,
		logger:   logger,
	}
}

// --- GET /api/reviews ---

func (h *ReviewHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// --- GET /api/reviews/type/{type} ---

func (h *ReviewHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	reviewType := models.ReviewType(chi.URLParam(r, "type"))
	reviews, err := h.reviews.ListByType(r.Context(), reviewType)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// --- GET /api/reviews/item/{itemId} ---

func (h *ReviewHandler) ListByItem(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.ListByItem(r.Context(), chi.URLParam(r, "itemId"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// --- GET /api/reviews/{id} ---

func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviews.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// --- POST /api/reviews ---

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.ReviewDraft
	if err := decodeJSON(w, r, &draft); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	// A signed-in caller is the author unless the body says otherwise.
	if user := middleware.GetUser(r.Context()); user != nil {
		if draft.UserID == "" {
			draft.UserID = user.UID
		}
		if draft.UserName == "" {
			draft.UserName = user.Name
		}
	}

	review, err := h.reviews.Insert(r.Context(), draft)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	// Notify in the background; the response does not wait on delivery.
	ctx := context.WithoutCancel(r.Context())
	go func() {
		if err := h.notifier.Publish(ctx, notify.ReviewCreated(review)); err != nil {
			logger.FromContext(ctx, h.logger).ErrorContext(ctx, "failed to publish review notification",
				slog.String("review_id", review.ID),
				slog.String("error", err.Error()),
			)
		}
	}()

	writeJSON(w, http.StatusCreated, review)
}

// --- PUT /api/reviews/{id} ---

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ReviewPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	review, err := h.reviews.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Review updated successfully",
		Review:  review,
	})
}

// --- DELETE /api/reviews/{id} ---

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviews.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Message: "Review deleted successfully",
		Review:  review,
	})
}
