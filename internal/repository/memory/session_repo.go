package memory

import (
	"context"
	"database/sql"
	"time"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

type SessionRepository struct {
	store *Store
}

func (r *SessionRepository) CreateSession(ctx context.Context, userID int64, token string, expiresAt time.Time) (*domain.Session, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[token]; exists {
		return nil, ports.ErrDuplicate
	}
	s.nextSessionID++
	session := &domain.Session{
		ID:        s.nextSessionID,
		UserID:    userID,
		Token:     token,
		CreatedAt: s.now(),
		ExpiresAt: expiresAt,
		IsActive:  true,
	}
	s.sessions[token] = session
	out := *session
	return &out, nil
}

func (r *SessionRepository) DeactivateSession(ctx context.Context, token string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[token]; ok && session.IsActive {
		session.IsActive = false
		session.ExpiresAt = s.now()
	}
	return nil
}

func (r *SessionRepository) FindActiveSession(ctx context.Context, token string) (*domain.Session, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok || !session.IsActive || !session.ExpiresAt.After(s.now()) {
		return nil, sql.ErrNoRows
	}
	out := *session
	return &out, nil
}

var _ ports.SessionRepository = (*SessionRepository)(nil)
