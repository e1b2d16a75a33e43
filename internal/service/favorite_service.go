package service

import (
	"context"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

type FavoriteService struct {
	favorites ports.FavoriteRepository
	places    ports.PlaceRepository
}

func NewFavoriteService(favoriteRepo ports.FavoriteRepository, placeRepo ports.PlaceRepository) *FavoriteService {
	return &FavoriteService{
		favorites: favoriteRepo,
		places:    placeRepo,
	}
}

// Save bookmarks the place and awards the user FavoriteAddPoints. An existing
// bookmark yields ErrFavoriteAlreadyExists and leaves points untouched.
func (s *FavoriteService) Save(ctx context.Context, userID, placeID int64) (*domain.User, error) {
	if userID <= 0 {
		return nil, ErrAuthRequired
	}
	if placeID <= 0 {
		return nil, missingField("place_id")
	}
	if _, err := s.places.FindByID(ctx, placeID); err != nil {
		if isNotFound(err) {
			return nil, ErrPlaceNotFound
		}
		return nil, err
	}

	_, user, err := s.favorites.Add(ctx, userID, placeID, domain.FavoriteAddPoints)
	if err != nil {
		switch {
		case isNotFound(err), isUniqueViolation(err):
			return nil, ErrFavoriteAlreadyExists
		default:
			return nil, err
		}
	}
	return user, nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID, placeID int64) error {
	if userID <= 0 {
		return ErrAuthRequired
	}
	if placeID <= 0 {
		return missingField("place_id")
	}
	if err := s.favorites.Remove(ctx, userID, placeID); err != nil {
		if isNotFound(err) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}

// List returns the user's favorite places, most recently saved first.
func (s *FavoriteService) List(ctx context.Context, userID int64) ([]domain.Place, error) {
	if userID <= 0 {
		return nil, ErrAuthRequired
	}
	ids, err := s.favorites.ListPlaceIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	found, err := s.places.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Place, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	out := make([]domain.Place, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
