// Package memory is an arena-style store: entities live in maps keyed by id and
// refer to each other only by id. A single mutex makes every method atomic.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/azerguest/azerguest-api/internal/domain"
)

type favoriteKey struct {
	userID  int64
	placeID int64
}

type Store struct {
	mu  sync.Mutex
	now func() time.Time

	places    map[int64]*domain.Place
	users     map[int64]*domain.User
	favorites map[favoriteKey]*domain.Favorite
	bookings  map[int64]*domain.Booking
	reviews   map[int64]*domain.Review
	sessions  map[string]*domain.Session

	nextPlaceID    int64
	nextUserID     int64
	nextFavoriteID int64
	nextBookingID  int64
	nextReviewID   int64
	nextSessionID  int64
}

func NewStore() *Store {
	return &Store{
		now:       time.Now,
		places:    make(map[int64]*domain.Place),
		users:     make(map[int64]*domain.User),
		favorites: make(map[favoriteKey]*domain.Favorite),
		bookings:  make(map[int64]*domain.Booking),
		reviews:   make(map[int64]*domain.Review),
		sessions:  make(map[string]*domain.Session),
	}
}

func (s *Store) Places() *PlaceRepository       { return &PlaceRepository{store: s} }
func (s *Store) Users() *UserRepository         { return &UserRepository{store: s} }
func (s *Store) Favorites() *FavoriteRepository { return &FavoriteRepository{store: s} }
func (s *Store) Bookings() *BookingRepository   { return &BookingRepository{store: s} }
func (s *Store) Reviews() *ReviewRepository     { return &ReviewRepository{store: s} }
func (s *Store) Sessions() *SessionRepository   { return &SessionRepository{store: s} }

// FavoriteCount reports how many favorite rows exist for the pair.
func (s *Store) FavoriteCount(userID, placeID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.favorites[favoriteKey{userID: userID, placeID: placeID}]; ok {
		return 1
	}
	return 0
}

func (s *Store) sortedPlacesLocked() []domain.Place {
	out := make([]domain.Place, 0, len(s.places))
	for _, p := range s.places {
		out = append(out, clonePlace(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func clonePlace(p *domain.Place) domain.Place {
	c := *p
	if p.Features != nil {
		c.Features = append([]string(nil), p.Features...)
	}
	return c
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	c.PasswordSalt = append([]byte(nil), u.PasswordSalt...)
	return &c
}
