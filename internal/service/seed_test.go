package service

import (
	"context"
	"testing"

	"github.com/azerguest/azerguest-api/internal/repository/memory"
)

func TestSeedPlacesRunsOnce(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	n, err := SeedPlaces(ctx, store.Places())
	if err != nil {
		t.Fatalf("SeedPlaces returned error: %v", err)
	}
	if n != 12 {
		t.Fatalf("expected 12 seeded places, got %d", n)
	}

	n, err = SeedPlaces(ctx, store.Places())
	if err != nil {
		t.Fatalf("second SeedPlaces returned error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no places on second run, got %d", n)
	}

	count, err := store.Places().Count(ctx)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 12 {
		t.Fatalf("expected 12 places, got %d", count)
	}
}

func TestSeedPlacesUseKnownCategories(t *testing.T) {
	store := newSeededStore(t)
	places, err := store.Places().List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, p := range places {
		if !p.Category.Valid() {
			t.Fatalf("place %q has unknown category %q", p.Name, p.Category)
		}
		if p.Price < 0 || p.Rating < 0 || p.Rating > 5 {
			t.Fatalf("place %q violates price/rating bounds", p.Name)
		}
	}
}
