package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub-backend/internal/apperrors"
	"reviewhub-backend/internal/logger"
	"reviewhub-backend/internal/models"
)

// --- Test Helpers ---

func newTestRepo(opts ...Option) *ReviewRepo {
	return NewReviewRepo(NewMemoryStore(), logger.Discard(), opts...)
}

// frozenClock always reports the same instant, the worst case for ordering.
func frozenClock() func() time.Time {
	t := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func movieDraft(title string) models.ReviewDraft {
	return models.ReviewDraft{
		Title:    title,
		Content:  "Loved it",
		Rating:   5,
		Type:     models.ReviewTypeMovie,
		ItemID:   "278",
		ItemName: "The Shawshank Redemption",
	}
}

func restaurantDraft(title string) models.ReviewDraft {
	return models.ReviewDraft{
		Title:    title,
		Content:  "Great crust",
		Rating:   4,
		Type:     models.ReviewTypeRestaurant,
		ItemID:   "g9e0D-x0VJj0s3x7p5TQnw",
		ItemName: "Joe's Pizza",
		UserID:   "u-42",
		UserName: "Ada",
	}
}

func assertSortedDesc(t *testing.T, reviews []models.Review) {
	t.Helper()
	for i := 1; i < len(reviews); i++ {
		assert.False(t, reviews[i-1].CreatedAt.Before(reviews[i].CreatedAt),
			"review %d (%s) is older than review %d (%s)", i-1, reviews[i-1].ID, i, reviews[i].ID)
	}
}

// --- Insert / GetByID ---

func TestInsert_ThenGetByID(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Insert(ctx, restaurantDraft("Solid slice"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Solid slice", got.Title)
	assert.Equal(t, "Great crust", got.Content)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, models.ReviewTypeRestaurant, got.Type)
	assert.Equal(t, "g9e0D-x0VJj0s3x7p5TQnw", got.ItemID)
	assert.Equal(t, "Joe's Pizza", got.ItemName)
	assert.Equal(t, "u-42", got.UserID)
	assert.Equal(t, "Ada", got.UserName)
}

func TestInsert_AssignsPlaceholderUser(t *testing.T) {
	repo := newTestRepo()

	created, err := repo.Insert(context.Background(), movieDraft("Great"))
	require.NoError(t, err)
	assert.Regexp(t, `^user-[0-9a-f-]{36}$`, created.UserID)
	assert.Equal(t, models.AnonymousUserName, created.UserName)
}

func TestInsert_ValidationError(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	draft := movieDraft("Great")
	draft.Rating = 0
	draft.ItemName = ""

	review, err := repo.Insert(ctx, draft)
	assert.Nil(t, review)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Fields, "rating")
	assert.Contains(t, appErr.Fields, "itemName")

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "failed insert must not store anything")
}

func TestInsert_UniqueIDsUnderFrozenClock(t *testing.T) {
	repo := newTestRepo(WithClock(frozenClock()))
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		r, err := repo.Insert(ctx, movieDraft(fmt.Sprintf("r%d", i)))
		require.NoError(t, err)
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestInsert_NewestIsHeadUnderFrozenClock(t *testing.T) {
	repo := newTestRepo(WithClock(frozenClock()))
	ctx := context.Background()

	var last *models.Review
	for i := 0; i < 5; i++ {
		r, err := repo.Insert(ctx, movieDraft(fmt.Sprintf("r%d", i)))
		require.NoError(t, err)
		last = r
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, last.ID, all[0].ID)
	assertSortedDesc(t, all)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].CreatedAt.After(all[i].CreatedAt), "timestamps must be strictly decreasing")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := newTestRepo()

	review, err := repo.GetByID(context.Background(), "does-not-exist")
	assert.Nil(t, review)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 404, apperrors.HTTPStatus(err))
}

// --- Listing ---

func TestListAll_EmptyIsNotNil(t *testing.T) {
	repo := newTestRepo()

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestListAll_SortsSeedsAndInserts(t *testing.T) {
	now := time.Now()
	repo := NewReviewRepo(NewMemoryStore(SeedReviews(now.Add(-time.Hour))...), logger.Discard())
	ctx := context.Background()

	created, err := repo.Insert(ctx, movieDraft("Fresh"))
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, created.ID, all[0].ID)
	assert.Equal(t, []string{"mock-1", "mock-2", "mock-3"}, []string{all[1].ID, all[2].ID, all[3].ID})
	assertSortedDesc(t, all)
}

func TestListByType_PartitionsListAll(t *testing.T) {
	repo := NewReviewRepo(NewMemoryStore(SeedReviews(time.Now().Add(-time.Hour))...), logger.Discard())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Insert(ctx, movieDraft(fmt.Sprintf("m%d", i)))
		require.NoError(t, err)
		_, err = repo.Insert(ctx, restaurantDraft(fmt.Sprintf("r%d", i)))
		require.NoError(t, err)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	movies, err := repo.ListByType(ctx, models.ReviewTypeMovie)
	require.NoError(t, err)
	restaurants, err := repo.ListByType(ctx, models.ReviewTypeRestaurant)
	require.NoError(t, err)
	other, err := repo.ListByType(ctx, "book")
	require.NoError(t, err)

	assert.Empty(t, other)
	assert.Len(t, movies, 5)
	assert.Len(t, restaurants, 4)
	assertSortedDesc(t, movies)
	assertSortedDesc(t, restaurants)

	ids := make(map[string]int)
	for _, r := range append(append(movies, restaurants...), other...) {
		ids[r.ID]++
	}
	assert.Len(t, ids, len(all))
	for _, r := range all {
		assert.Equal(t, 1, ids[r.ID], "review %s must appear in exactly one partition", r.ID)
	}
}

func TestListByItem(t *testing.T) {
	repo := NewReviewRepo(NewMemoryStore(SeedReviews(time.Now().Add(-time.Hour))...), logger.Discard())
	ctx := context.Background()

	created, err := repo.Insert(ctx, movieDraft("Second opinion"))
	require.NoError(t, err)

	reviews, err := repo.ListByItem(ctx, "278")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, created.ID, reviews[0].ID)
	assert.Equal(t, "mock-1", reviews[1].ID)

	none, err := repo.ListByItem(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// --- Update ---

func TestUpdate_PreservesIdentityFields(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Insert(ctx, restaurantDraft("Solid slice"))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, models.ReviewPatch{Title: "Even better", Content: "Went back", Rating: 5})
	require.NoError(t, err)

	assert.Equal(t, "Even better", updated.Title)
	assert.Equal(t, "Went back", updated.Content)
	assert.Equal(t, 5, updated.Rating)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Type, updated.Type)
	assert.Equal(t, created.ItemID, updated.ItemID)
	assert.Equal(t, created.ItemName, updated.ItemName)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.UserName, updated.UserName)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newTestRepo()

	_, err := repo.Update(context.Background(), "does-not-exist", models.ReviewPatch{Title: "t", Content: "c", Rating: 3})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.Update(context.Background(), "does-not-exist", models.ReviewPatch{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "unknown id wins over an invalid patch")
}

func TestUpdate_ValidationLeavesReviewUntouched(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Insert(ctx, movieDraft("Great"))
	require.NoError(t, err)

	_, err = repo.Update(ctx, created.ID, models.ReviewPatch{Title: "New", Content: "New"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

// --- Delete ---

func TestDelete_ThenGetIsNotFound(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	created, err := repo.Insert(ctx, movieDraft("Great"))
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, removed)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// --- Seed / Count ---

func TestSeed_SkipsExisting(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()
	seeds := SeedReviews(time.Now())

	added, err := repo.Seed(ctx, seeds)
	require.NoError(t, err)
	assert.Equal(t, 3, added)

	added, err = repo.Seed(ctx, seeds)
	require.NoError(t, err)
	assert.Zero(t, added)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

// --- Concurrency ---

func TestConcurrentInsertsAndReads(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Insert(ctx, movieDraft(fmt.Sprintf("r%d", i)))
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			_, err := repo.ListAll(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 20)
	assertSortedDesc(t, all)
}

// --- Store errors ---

type failingStore struct {
	MemoryStore
}

func (s *failingStore) List(context.Context, models.ReviewFilter) ([]models.Review, error) {
	return nil, errors.New("connection refused")
}

func TestListAll_StoreErrorIsInternal(t *testing.T) {
	repo := NewReviewRepo(&failingStore{}, logger.Discard())

	_, err := repo.ListAll(context.Background())
	require.Error(t, err)
	assert.Equal(t, 500, apperrors.HTTPStatus(err))
}
