package repository

import (
	"context"

	"reviewhub-backend/internal/models"
)

// MemoryStore keeps reviews in a slice, newest first. Contents live for the
// lifetime of the process.
type MemoryStore struct {
	reviews []models.Review
}

func NewMemoryStore(seed ...models.Review) *MemoryStore {
	reviews := make([]models.Review, len(seed))
	copy(reviews, seed)
	return &MemoryStore{reviews: reviews}
}

func (s *MemoryStore) List(_ context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	out := make([]models.Review, 0, len(s.reviews))
	for i := range s.reviews {
		if filter.Match(&s.reviews[i]) {
			out = append(out, s.reviews[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Review, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	review := s.reviews[i]
	return &review, nil
}

func (s *MemoryStore) Insert(_ context.Context, review *models.Review) error {
	s.reviews = append([]models.Review{*review}, s.reviews...)
	return nil
}

func (s *MemoryStore) Replace(_ context.Context, review *models.Review) error {
	i := s.indexOf(review.ID)
	if i < 0 {
		return ErrNotFound
	}
	s.reviews[i] = *review
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) (*models.Review, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	removed := s.reviews[i]
	s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
	return &removed, nil
}

func (s *MemoryStore) indexOf(id string) int {
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			return i
		}
	}
	return -1
}
