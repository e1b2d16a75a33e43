package memory

import (
	"context"
	"database/sql"
	"sort"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

type ReviewRepository struct {
	store *Store
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[review.UserID]
	if !ok {
		return nil, sql.ErrNoRows
	}

	stored := *review
	s.nextReviewID++
	stored.ID = s.nextReviewID
	stored.CreatedAt = s.now()
	stored.ReviewerName = nil
	s.reviews[stored.ID] = &stored

	out := stored
	name := user.Name
	out.ReviewerName = &name
	return &out, nil
}

func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID int64, limit, offset int) ([]domain.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]domain.Review, 0)
	for _, rv := range s.reviews {
		if rv.PlaceID != placeID {
			continue
		}
		out := *rv
		if user, ok := s.users[rv.UserID]; ok {
			name := user.Name
			out.ReviewerName = &name
		}
		matched = append(matched, out)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	if offset >= len(matched) {
		return []domain.Review{}, nil
	}
	matched = matched[offset:]
	if limit >= 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)
