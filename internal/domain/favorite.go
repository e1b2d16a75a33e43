package domain

import (
	"time"
)

type Favorite struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	PlaceID   int64     `db:"place_id" json:"place_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
