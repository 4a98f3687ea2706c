package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"reviewhub-backend/internal/apperrors"
	"reviewhub-backend/internal/models"
	"reviewhub-backend/internal/validator"

	"github.com/google/uuid"
)

// ReviewRepo owns the review collection. It is the only mutation path and
// serializes every operation behind one mutex.
type ReviewRepo struct {
	mu     sync.Mutex
	store  ReviewStore
	logger *slog.Logger
	now    func() time.Time
	last   time.Time
}

type Option func(*ReviewRepo)

// WithClock replaces time.Now. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(r *ReviewRepo) {
		r.now = now
	}
}

func NewReviewRepo(store ReviewStore, logger *slog.Logger, opts ...Option) *ReviewRepo {
	r := &ReviewRepo{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ListAll returns every review, most recent first.
func (r *ReviewRepo) ListAll(ctx context.Context) ([]models.Review, error) {
	return r.list(ctx, models.ReviewFilter{})
}

// ListByType returns reviews of the given type. Unknown types yield an empty list.
func (r *ReviewRepo) ListByType(ctx context.Context, reviewType models.ReviewType) ([]models.Review, error) {
	if reviewType == "" {
		return []models.Review{}, nil
	}
	return r.list(ctx, models.ReviewFilter{Type: reviewType})
}

func (r *ReviewRepo) ListByItem(ctx context.Context, itemID string) ([]models.Review, error) {
	if itemID == "" {
		return []models.Review{}, nil
	}
	return r.list(ctx, models.ReviewFilter{ItemID: itemID})
}

func (r *ReviewRepo) Count(ctx context.Context) (int, error) {
	reviews, err := r.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(reviews), nil
}

func (r *ReviewRepo) GetByID(ctx context.Context, id string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, r.storeErr(err, id)
	}
	return review, nil
}

// Insert validates the draft and stores it as a new review with a fresh id
// and timestamps. Missing user fields get placeholder values.
func (r *ReviewRepo) Insert(ctx context.Context, draft models.ReviewDraft) (*models.Review, error) {
	if err := validator.Validate(draft); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.stamp()
	review := &models.Review{
		ID:        uuid.New().String(),
		Title:     draft.Title,
		Content:   draft.Content,
		Rating:    int(draft.Rating),
		Type:      draft.Type,
		ItemID:    draft.ItemID,
		ItemName:  draft.ItemName,
		UserID:    draft.UserID,
		UserName:  draft.UserName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if review.UserID == "" {
		review.UserID = "user-" + uuid.New().String()
	}
	if review.UserName == "" {
		review.UserName = models.AnonymousUserName
	}

	if err := r.store.Insert(ctx, review); err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	r.logger.InfoContext(ctx, "review created",
		slog.String("review_id", review.ID),
		slog.String("type", string(review.Type)),
		slog.String("item_id", review.ItemID),
		slog.Int("rating", review.Rating),
	)
	return review, nil
}

// Update replaces title, content and rating of an existing review. An
// unknown id is reported before any problem with the patch.
func (r *ReviewRepo) Update(ctx context.Context, id string, patch models.ReviewPatch) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, r.storeErr(err, id)
	}
	if err := validator.Validate(patch); err != nil {
		return nil, err
	}

	review.Title = patch.Title
	review.Content = patch.Content
	review.Rating = int(patch.Rating)
	review.UpdatedAt = r.stamp()
	if review.UpdatedAt.Before(review.CreatedAt) {
		review.UpdatedAt = review.CreatedAt
	}

	if err := r.store.Replace(ctx, review); err != nil {
		return nil, r.storeErr(err, id)
	}

	r.logger.InfoContext(ctx, "review updated", slog.String("review_id", id))
	return review, nil
}

// Delete removes a review and returns it.
func (r *ReviewRepo) Delete(ctx context.Context, id string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed, err := r.store.Delete(ctx, id)
	if err != nil {
		return nil, r.storeErr(err, id)
	}

	r.logger.InfoContext(ctx, "review deleted", slog.String("review_id", id))
	return removed, nil
}

// Seed inserts reviews whose ids are not stored yet, keeping their ids and
// timestamps. Returns how many were added.
func (r *ReviewRepo) Seed(ctx context.Context, reviews []models.Review) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	added := 0
	for i := range reviews {
		_, err := r.store.Get(ctx, reviews[i].ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return added, fmt.Errorf("seed review %s: %w", reviews[i].ID, err)
		}
		review := reviews[i]
		if err := r.store.Insert(ctx, &review); err != nil {
			return added, fmt.Errorf("seed review %s: %w", review.ID, err)
		}
		added++
	}
	return added, nil
}

func (r *ReviewRepo) list(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := r.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	slices.SortStableFunc(reviews, func(a, b models.Review) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return reviews, nil
}

// stamp returns a timestamp strictly after the previous one so that reviews
// created within the same clock tick still order deterministically.
// Millisecond precision matches what MongoStore can persist. Callers hold r.mu.
func (r *ReviewRepo) stamp() time.Time {
	t := r.now().UTC().Truncate(time.Millisecond)
	if !t.After(r.last) {
		t = r.last.Add(time.Millisecond)
	}
	r.last = t
	return t
}

func (r *ReviewRepo) storeErr(err error, id string) error {
	if errors.Is(err, ErrNotFound) {
		return apperrors.NotFound("review", id)
	}
	return fmt.Errorf("review %s: %w", id, err)
}
