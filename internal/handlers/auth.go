package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"reviewhub-backend/internal/auth"
)

type AuthHandler struct {
	provider auth.IdentityProvider
	logger   *slog.Logger
}

func NewAuthHandler(provider auth.IdentityProvider, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		provider: provider,
		logger:   logger,
	}
}

// --- Request types ---

type VerifyRequest struct {
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// --- POST /api/auth/verify ---
// The token may come in the body or as a Bearer Authorization header.

func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	if req.Token == "" {
		req.Token = strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	}

	user, err := h.provider.Verify(r.Context(), req.Token)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// --- POST /api/auth/login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	user, err := h.provider.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	h.logger.InfoContext(r.Context(), "user logged in", slog.String("uid", user.UID))
	writeJSON(w, http.StatusOK, user)
}

// --- POST /api/auth/register ---

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	user, err := h.provider.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	h.logger.InfoContext(r.Context(), "user registered", slog.String("uid", user.UID))
	writeJSON(w, http.StatusOK, user)
}
