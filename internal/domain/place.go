package domain

import (
	"time"

	"github.com/lib/pq"
)

type PlaceCategory string

const (
	PlaceCategoryMountain  PlaceCategory = "mountain"
	PlaceCategorySea       PlaceCategory = "sea"
	PlaceCategoryHistoric  PlaceCategory = "historic"
	PlaceCategoryAdventure PlaceCategory = "adventure"
	PlaceCategoryLake      PlaceCategory = "lake"
)

var placeCategories = map[PlaceCategory]struct{}{
	PlaceCategoryMountain:  {},
	PlaceCategorySea:       {},
	PlaceCategoryHistoric:  {},
	PlaceCategoryAdventure: {},
	PlaceCategoryLake:      {},
}

func (c PlaceCategory) Valid() bool {
	_, ok := placeCategories[c]
	return ok
}

const (
	MinPlaceRating = 0.0
	MaxPlaceRating = 5.0
)

// Place is a bookable destination. Price is the per-guest, per-night rate.
type Place struct {
	ID          int64          `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Category    PlaceCategory  `db:"category" json:"category"`
	Region      *string        `db:"region" json:"region"`
	Price       int64          `db:"price" json:"price"`
	Rating      float64        `db:"rating" json:"rating"`
	Views       int64          `db:"views" json:"views"`
	Image       *string        `db:"image" json:"image"`
	Description *string        `db:"description" json:"description"`
	Features    pq.StringArray `db:"features" json:"features,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

// PlaceInput carries the fields used to insert a place. Views is only set by seeding.
type PlaceInput struct {
	Name        string
	Category    PlaceCategory
	Region      *string
	Price       int64
	Rating      float64
	Views       int64
	Image       *string
	Description *string
	Features    []string
}
