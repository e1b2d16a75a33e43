package ports

import (
	"context"

	"github.com/azerguest/azerguest-api/internal/domain"
)

type FavoriteRepository interface {
	// Add inserts the favorite and awards points to the user in one atomic step,
	// recomputing the user's level. An existing pair yields sql.ErrNoRows or ErrDuplicate
	// and leaves the user untouched.
	Add(ctx context.Context, userID, placeID int64, award int64) (*domain.Favorite, *domain.User, error)
	Remove(ctx context.Context, userID, placeID int64) error
	ListPlaceIDsByUser(ctx context.Context, userID int64) ([]int64, error)
}
