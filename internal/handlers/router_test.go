package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub-backend/internal/auth"
	"reviewhub-backend/internal/catalog"
	"reviewhub-backend/internal/logger"
	"reviewhub-backend/internal/models"
	"reviewhub-backend/internal/repository"
)

type downStore struct{}

var errStoreDown = errors.New("connection refused")

func (downStore) List(context.Context, models.ReviewFilter) ([]models.Review, error) {
	return nil, errStoreDown
}

func (downStore) Get(context.Context, string) (*models.Review, error) { return nil, errStoreDown }
func (downStore) Insert(context.Context, *models.Review) error        { return errStoreDown }
func (downStore) Replace(context.Context, *models.Review) error       { return errStoreDown }

func (downStore) Delete(context.Context, string) (*models.Review, error) {
	return nil, errStoreDown
}

func newDownServer(t *testing.T) *testServer {
	t.Helper()

	reviews := repository.NewReviewRepo(downStore{}, logger.Discard())
	return &testServer{
		handler: NewRouter(Deps{
			Reviews:     reviews,
			Catalog:     catalog.NewStore(),
			Identity:    auth.NewMockProvider("test-secret", time.Hour),
			Notifier:    newRecordingNotifier(),
			Logger:      logger.Discard(),
			ReviewStore: "mongo",
			CORSOrigins: []string{"*"},
		}),
		reviews: reviews,
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, repository.SeedReviews(time.Now())...)

	rec := srv.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[healthResponse](t, rec)
	assert.Equal(t, "Server is running!", body.Message)
	assert.Equal(t, 3, body.ReviewCount)
	assert.Equal(t, "memory", body.ReviewStore)
	assert.Equal(t, serviceActive, body.Services["reviews"])
}

func TestHealth_StoreDown(t *testing.T) {
	srv := newDownServer(t)

	rec := srv.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	body := decode[healthResponse](t, rec)
	assert.Equal(t, serviceDown, body.Services["reviews"])
	assert.Equal(t, serviceActive, body.Services["movies"])
}

func TestStoreFailure_IsInternalError(t *testing.T) {
	srv := newDownServer(t)

	rec := srv.do(t, http.MethodGet, "/api/reviews", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decode[errorResponse](t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.NotContains(t, body.Error, "connection refused")
}

func TestUnknownEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/does-not-exist", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decode[struct {
		Error     string   `json:"error"`
		Endpoints []string `json:"available_endpoints"`
	}](t, rec)
	assert.Equal(t, "Endpoint not found", body.Error)
	assert.Contains(t, body.Endpoints, "GET    /api/reviews")
	assert.Contains(t, body.Endpoints, "POST   /api/reviews")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodOptions, "/api/reviews", nil,
		"Origin", "http://localhost:3000",
		"Access-Control-Request-Method", http.MethodPost,
	)
	assert.Less(t, rec.Code, 300)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	srv.do(t, http.MethodGet, "/api/movies/popular", nil)

	rec := srv.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `path="/api/movies/popular"`))
}
