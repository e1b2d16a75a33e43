package service

import (
	"context"
	"testing"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/memory"
)

func strPtr(v string) *string { return &v }

func newSeededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	if _, err := SeedPlaces(context.Background(), store.Places()); err != nil {
		t.Fatalf("SeedPlaces returned error: %v", err)
	}
	return store
}

func createUser(t *testing.T, store *memory.Store, email string, points int64) *domain.User {
	t.Helper()
	user, err := store.Users().Create(context.Background(), domain.NewUser{
		Name:   "Test User",
		Email:  email,
		Points: points,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func placeIDs(places []domain.Place) []int64 {
	ids := make([]int64, 0, len(places))
	for _, p := range places {
		ids = append(ids, p.ID)
	}
	return ids
}
