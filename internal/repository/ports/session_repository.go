package ports

import (
	"context"
	"time"

	"github.com/azerguest/azerguest-api/internal/domain"
)

type SessionRepository interface {
	CreateSession(ctx context.Context, userID int64, token string, expiresAt time.Time) (*domain.Session, error)
	DeactivateSession(ctx context.Context, token string) error
	FindActiveSession(ctx context.Context, token string) (*domain.Session, error)
}
