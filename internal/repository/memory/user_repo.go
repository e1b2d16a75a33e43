package memory

import (
	"context"
	"database/sql"
	"strings"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

type UserRepository struct {
	store *Store
}

func (r *UserRepository) Create(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmailLocked(input.Email) != nil {
		return nil, ports.ErrDuplicate
	}

	now := s.now()
	s.nextUserID++
	user := &domain.User{
		ID:                  s.nextUserID,
		Name:                input.Name,
		Email:               input.Email,
		PasswordHash:        input.PasswordHash,
		PasswordSalt:        input.PasswordSalt,
		Phone:               input.Phone,
		Gender:              input.Gender,
		Age:                 input.Age,
		Family:              input.Family,
		Region:              input.Region,
		TripsPerYear:        input.TripsPerYear,
		AvgBudgetPerYear:    input.AvgBudgetPerYear,
		FavoriteDestination: input.FavoriteDestination,
		VacationType:        input.VacationType,
		TravelInterest:      input.TravelInterest,
		Avatar:              input.Avatar,
		Points:              input.Points,
		Level:               domain.TierFor(input.Points),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	s.users[user.ID] = user
	return cloneUser(user), nil
}

func (r *UserRepository) UpsertGoogleUser(ctx context.Context, email, name string, avatar *string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.findByEmailLocked(email); existing != nil {
		if avatar != nil {
			existing.Avatar = avatar
		}
		existing.UpdatedAt = s.now()
		return cloneUser(existing), nil
	}

	now := s.now()
	s.nextUserID++
	user := &domain.User{
		ID:        s.nextUserID,
		Name:      name,
		Email:     email,
		Avatar:    avatar,
		Points:    domain.RegistrationPoints,
		Level:     domain.TierFor(domain.RegistrationPoints),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[user.ID] = user
	return cloneUser(user), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findByEmailLocked(email)
	if user == nil {
		return nil, sql.ErrNoRows
	}
	return cloneUser(user), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return cloneUser(user), nil
}

func (s *Store) findByEmailLocked(email string) *domain.User {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
