package repository

import (
	"time"

	"reviewhub-backend/internal/models"
)

// SeedReviews returns the demo reviews the service starts with. Timestamps are
// staggered back from now so mock-1 sorts first.
func SeedReviews(now time.Time) []models.Review {
	stamp := func(back int) time.Time {
		return now.Add(-time.Duration(back) * time.Second)
	}

	return []models.Review{
		{
			ID:        "mock-1",
			Title:     "Amazing Movie Experience",
			Content:   "This movie blew my mind! The acting was superb and the storyline was engaging from start to finish.",
			Rating:    5,
			Type:      models.ReviewTypeMovie,
			ItemID:    "278",
			ItemName:  "The Shawshank Redemption",
			UserID:    "user1",
			UserName:  "John Doe",
			CreatedAt: stamp(1),
			UpdatedAt: stamp(1),
		},
		{
			ID:        "mock-2",
			Title:     "Great Food, Average Service",
			Content:   "The food was delicious but the service could be improved. Will definitely come back for the pasta!",
			Rating:    3,
			Type:      models.ReviewTypeRestaurant,
			ItemID:    "g9e0D-x0VJj0s3x7p5TQnw",
			ItemName:  "Joe's Pizza",
			UserID:    "user2",
			UserName:  "Jane Smith",
			CreatedAt: stamp(2),
			UpdatedAt: stamp(2),
		},
		{
			ID:        "mock-3",
			Title:     "Must Watch Masterpiece",
			Content:   "One of the best movies I have ever seen. The cinematography and acting were outstanding.",
			Rating:    5,
			Type:      models.ReviewTypeMovie,
			ItemID:    "238",
			ItemName:  "The Godfather",
			UserID:    "user3",
			UserName:  "Mike Johnson",
			CreatedAt: stamp(3),
			UpdatedAt: stamp(3),
		},
	}
}
