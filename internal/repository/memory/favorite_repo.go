package memory

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

type FavoriteRepository struct {
	store *Store
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, placeID int64, award int64) (*domain.Favorite, *domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil, fmt.Errorf("memory: favorite references missing user %d", userID)
	}
	key := favoriteKey{userID: userID, placeID: placeID}
	if _, exists := s.favorites[key]; exists {
		return nil, nil, ports.ErrDuplicate
	}

	s.nextFavoriteID++
	fav := &domain.Favorite{
		ID:        s.nextFavoriteID,
		UserID:    userID,
		PlaceID:   placeID,
		CreatedAt: s.now(),
	}
	s.favorites[key] = fav

	user.Points += award
	user.Level = domain.TierFor(user.Points)
	user.UpdatedAt = s.now()

	out := *fav
	return &out, cloneUser(user), nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, placeID int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{userID: userID, placeID: placeID}
	if _, ok := s.favorites[key]; !ok {
		return sql.ErrNoRows
	}
	delete(s.favorites, key)
	return nil
}

func (r *FavoriteRepository) ListPlaceIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	favs := make([]*domain.Favorite, 0)
	for key, fav := range s.favorites {
		if key.userID == userID {
			favs = append(favs, fav)
		}
	}
	sort.Slice(favs, func(i, j int) bool { return favs[i].ID > favs[j].ID })

	ids := make([]int64, 0, len(favs))
	for _, fav := range favs {
		ids = append(ids, fav.PlaceID)
	}
	return ids, nil
}

var _ ports.FavoriteRepository = (*FavoriteRepository)(nil)
