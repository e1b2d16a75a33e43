package domain

import (
	"time"
)

type User struct {
	ID                  int64     `db:"id" json:"id"`
	Name                string    `db:"name" json:"name"`
	Email               string    `db:"email" json:"email"`
	PasswordHash        []byte    `db:"password_hash" json:"-"`
	PasswordSalt        []byte    `db:"password_salt" json:"-"`
	Phone               *string   `db:"phone" json:"phone,omitempty"`
	Gender              *string   `db:"gender" json:"gender,omitempty"`
	Age                 *int      `db:"age" json:"age,omitempty"`
	Family              int       `db:"family" json:"family"`
	Region              *string   `db:"region" json:"region,omitempty"`
	TripsPerYear        int       `db:"trips_per_year" json:"trips_per_year"`
	AvgBudgetPerYear    int       `db:"avg_budget_per_year" json:"avg_budget_per_year"`
	FavoriteDestination *string   `db:"favorite_destination" json:"favorite_destination,omitempty"`
	VacationType        *string   `db:"vacation_type" json:"vacation_type,omitempty"`
	TravelInterest      int       `db:"travel_interest" json:"travel_interest"`
	Avatar              *string   `db:"avatar" json:"avatar,omitempty"`
	Bio                 *string   `db:"bio" json:"bio,omitempty"`
	Points              int64     `db:"points" json:"points"`
	Level               Tier      `db:"level" json:"level"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// NewUser carries registration data. Points and level are derived by the store.
type NewUser struct {
	Name                string
	Email               string
	PasswordHash        []byte
	PasswordSalt        []byte
	Phone               *string
	Gender              *string
	Age                 *int
	Family              int
	Region              *string
	TripsPerYear        int
	AvgBudgetPerYear    int
	FavoriteDestination *string
	VacationType        *string
	TravelInterest      int
	Avatar              *string
	Points              int64
}
