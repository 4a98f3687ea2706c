package repository

import (
	"context"
	"errors"
	"fmt"

	"reviewhub-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const reviewsCollection = "reviews"

// MongoStore persists reviews in the "reviews" collection.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		collection: db.Collection(reviewsCollection),
	}
}

func (s *MongoStore) List(ctx context.Context, filter models.ReviewFilter) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, reviewFilterDoc(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*models.Review, error) {
	var review models.Review
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find review %s: %w", id, err)
	}
	return &review, nil
}

func (s *MongoStore) Insert(ctx context.Context, review *models.Review) error {
	if _, err := s.collection.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (s *MongoStore) Replace(ctx context.Context, review *models.Review) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": review.ID}, review)
	if err != nil {
		return fmt.Errorf("replace review %s: %w", review.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) (*models.Review, error) {
	var removed models.Review
	err := s.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete review %s: %w", id, err)
	}
	return &removed, nil
}

// EnsureIndexes creates the indexes backing the list queries.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "type", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "item_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	_, err := s.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func reviewFilterDoc(f models.ReviewFilter) bson.M {
	doc := bson.M{}
	if f.Type != "" {
		doc["type"] = f.Type
	}
	if f.ItemID != "" {
		doc["item_id"] = f.ItemID
	}
	return doc
}
