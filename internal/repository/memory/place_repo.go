package memory

import (
	"context"
	"database/sql"
	"sort"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

type PlaceRepository struct {
	store *Store
}

func (r *PlaceRepository) Create(ctx context.Context, input domain.PlaceInput) (*domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPlaceID++
	place := &domain.Place{
		ID:          s.nextPlaceID,
		Name:        input.Name,
		Category:    input.Category,
		Region:      input.Region,
		Price:       input.Price,
		Rating:      input.Rating,
		Views:       input.Views,
		Image:       input.Image,
		Description: input.Description,
		Features:    append([]string{}, input.Features...),
		CreatedAt:   s.now(),
	}
	s.places[place.ID] = place
	out := clonePlace(place)
	return &out, nil
}

func (r *PlaceRepository) FindByID(ctx context.Context, id int64) (*domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	place, ok := s.places[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := clonePlace(place)
	return &out, nil
}

func (r *PlaceRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Place, 0, len(ids))
	for _, id := range ids {
		if place, ok := s.places[id]; ok {
			out = append(out, clonePlace(place))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlaceRepository) List(ctx context.Context) ([]domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedPlacesLocked(), nil
}

func (r *PlaceRepository) ListTopRated(ctx context.Context, limit int) ([]domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	places := s.sortedPlacesLocked()
	sort.SliceStable(places, func(i, j int) bool { return places[i].Rating > places[j].Rating })
	if limit >= 0 && len(places) > limit {
		places = places[:limit]
	}
	return places, nil
}

func (r *PlaceRepository) Filter(ctx context.Context, filter domain.PlaceFilter) ([]domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Place, 0)
	for _, p := range s.sortedPlacesLocked() {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlaceRepository) SearchRegion(ctx context.Context, query domain.RegionQuery) ([]domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Place, 0)
	for _, p := range s.sortedPlacesLocked() {
		if query.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlaceRepository) IncrementViews(ctx context.Context, id int64) (*domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	place, ok := s.places[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	place.Views++
	out := clonePlace(place)
	return &out, nil
}

func (r *PlaceRepository) UpdateImage(ctx context.Context, id int64, imageURL string) (*domain.Place, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	place, ok := s.places[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	place.Image = &imageURL
	out := clonePlace(place)
	return &out, nil
}

func (r *PlaceRepository) Count(ctx context.Context) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.places)), nil
}

var _ ports.PlaceRepository = (*PlaceRepository)(nil)
