package domain

import (
	"time"
)

type Review struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	PlaceID   int64     `db:"place_id" json:"place_id"`
	Rating    float64   `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	ReviewerName *string `db:"reviewer_name" json:"reviewer_name,omitempty"`
}
