package ports

import (
	"context"

	"github.com/azerguest/azerguest-api/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByPlace(ctx context.Context, placeID int64, limit, offset int) ([]domain.Review, error)
}
