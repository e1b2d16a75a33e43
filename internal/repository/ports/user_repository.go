package ports

import (
	"context"

	"github.com/azerguest/azerguest-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.NewUser) (*domain.User, error)
	UpsertGoogleUser(ctx context.Context, email, name string, avatar *string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
