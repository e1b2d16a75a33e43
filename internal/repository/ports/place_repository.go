package ports

import (
	"context"

	"github.com/azerguest/azerguest-api/internal/domain"
)

type PlaceRepository interface {
	Create(ctx context.Context, input domain.PlaceInput) (*domain.Place, error)
	FindByID(ctx context.Context, id int64) (*domain.Place, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Place, error)
	List(ctx context.Context) ([]domain.Place, error)
	ListTopRated(ctx context.Context, limit int) ([]domain.Place, error)
	Filter(ctx context.Context, filter domain.PlaceFilter) ([]domain.Place, error)
	SearchRegion(ctx context.Context, query domain.RegionQuery) ([]domain.Place, error)
	IncrementViews(ctx context.Context, id int64) (*domain.Place, error)
	UpdateImage(ctx context.Context, id int64, imageURL string) (*domain.Place, error)
	Count(ctx context.Context) (int64, error)
}
