package http

// FilterRequest is the body of POST /api/places/filter. Omitted bounds mean
// "no bound".
type FilterRequest struct {
	Categories []string  `json:"categories"`
	PriceMin   *float64  `json:"priceMin"`
	PriceMax   *float64  `json:"priceMax"`
	Ratings    []float64 `json:"ratings"`
}

type FavoriteRequest struct {
	PlaceID int64 `json:"place_id" validate:"required"`
}

// BookingCreateRequest mirrors the booking form. user_name and user_email may
// be omitted when the caller is signed in.
type BookingCreateRequest struct {
	PlaceID   int64  `json:"place_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Guests    int    `json:"guests"`
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RegisterRequest struct {
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	Password            string  `json:"password"`
	Phone               *string `json:"phone"`
	Gender              string  `json:"gender"`
	Age                 int     `json:"age"`
	Region              string  `json:"region"`
	Family              int     `json:"family"`
	TripsPerYear        int     `json:"trips_per_year"`
	AvgBudgetPerYear    int     `json:"avg_budget_per_year"`
	FavoriteDestination *string `json:"favorite_destination"`
	VacationType        *string `json:"vacation_type"`
	TravelInterest      *int    `json:"travel_interest"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ReviewRequest struct {
	Rating  *float64 `json:"rating" validate:"required"`
	Comment string   `json:"comment"`
}

type PlaceCreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Region      *string  `json:"region"`
	Price       int64    `json:"price" validate:"gte=0"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
	Features    []string `json:"features"`
}
