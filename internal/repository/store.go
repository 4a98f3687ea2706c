package repository

import (
	"context"
	"errors"

	"reviewhub-backend/internal/models"
)

// ErrNotFound is returned by stores when no review has the requested id.
var ErrNotFound = errors.New("review not found")

// ReviewStore is the backing collection behind ReviewRepo. Implementations do
// not need to order List results or be safe for concurrent use; ReviewRepo
// sorts on read and serializes access.
type ReviewStore interface {
	List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error)
	Get(ctx context.Context, id string) (*models.Review, error)
	Insert(ctx context.Context, review *models.Review) error
	Replace(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) (*models.Review, error)
}
