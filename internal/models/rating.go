package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Rating is one user's score for one store. There is at most one Rating per
// (UserID, StoreID); resubmitting replaces Value and CreatedAt and keeps ID.
type Rating struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	UserID    string    `json:"user_id"`
	Value     int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
