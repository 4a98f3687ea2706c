package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type ReviewType string

const (
	ReviewTypeMovie      ReviewType = "movie"
	ReviewTypeRestaurant ReviewType = "restaurant"
)

const AnonymousUserName = "Anonymous User"

type Review struct {
	ID        string     `bson:"_id" json:"id"`
	Title     string     `bson:"title" json:"title"`
	Content   string     `bson:"content" json:"content"`
	Rating    int        `bson:"rating" json:"rating"`
	Type      ReviewType `bson:"type" json:"type"`
	ItemID    string     `bson:"item_id" json:"itemId"`
	ItemName  string     `bson:"item_name" json:"itemName"`
	UserID    string     `bson:"user_id" json:"userId"`
	UserName  string     `bson:"user_name" json:"userName"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
}

// ReviewDraft is the body of a create request. UserID and UserName are
// optional and filled in by the repository when absent.
type ReviewDraft struct {
	Title    string     `json:"title" validate:"required"`
	Content  string     `json:"content" validate:"required"`
	Rating   Rating     `json:"rating" validate:"required,min=1,max=5"`
	Type     ReviewType `json:"type" validate:"required,oneof=movie restaurant"`
	ItemID   string     `json:"itemId" validate:"required"`
	ItemName string     `json:"itemName" validate:"required"`
	UserID   string     `json:"userId"`
	UserName string     `json:"userName"`
}

// ReviewPatch is the body of an update request.
type ReviewPatch struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Rating  Rating `json:"rating" validate:"required,min=1,max=5"`
}

// ReviewFilter selects reviews by exact match. Empty fields match everything.
type ReviewFilter struct {
	Type   ReviewType
	ItemID string
}

func (f ReviewFilter) Match(r *Review) bool {
	if f.Type != "" && r.Type != f.Type {
		return false
	}
	if f.ItemID != "" && r.ItemID != f.ItemID {
		return false
	}
	return true
}

// Rating accepts both 4 and "4" on the wire; form-driven clients send strings.
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*r = 0
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Rating(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("rating must be a number")
	}
	if s == "" {
		*r = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("rating must be a number, got %q", s)
	}
	*r = Rating(n)
	return nil
}
