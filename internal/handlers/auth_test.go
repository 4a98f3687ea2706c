package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub-backend/internal/models"
)

func TestRegisterThenVerify(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/auth/register", RegisterRequest{
		Email:    "grace@example.com",
		Password: "anything",
		Name:     "Grace",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	registered := decode[models.User](t, rec)
	assert.NotEmpty(t, registered.UID)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "Grace", registered.Name)

	rec = srv.do(t, http.MethodPost, "/api/auth/verify", VerifyRequest{Token: registered.Token})
	require.Equal(t, http.StatusOK, rec.Code)

	verified := decode[models.User](t, rec)
	assert.Equal(t, registered.UID, verified.UID)
	assert.Equal(t, "grace@example.com", verified.Email)
	assert.Empty(t, verified.Token)
}

func TestVerify_BearerHeader(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/auth/login", LoginRequest{Email: "linus@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	user := decode[models.User](t, rec)
	assert.Equal(t, "linus", user.Name)

	rec = srv.do(t, http.MethodPost, "/api/auth/verify", nil, "Authorization", "Bearer "+user.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.UID, decode[models.User](t, rec).UID)
}

func TestVerify_Rejects(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body any
	}{
		{"missing token", nil},
		{"garbage token", VerifyRequest{Token: "not-a-jwt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/api/auth/verify", tt.body)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", decode[errorResponse](t, rec).Code)
		})
	}
}

func TestLogin_MissingEmail(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/auth/login", LoginRequest{Password: "secret"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
