package memory

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azerguest/azerguest-api/internal/domain"
	"github.com/azerguest/azerguest-api/internal/repository/ports"
)

func strPtr(s string) *string { return &s }

func seedPlaces(t *testing.T, store *Store) {
	t.Helper()
	inputs := []domain.PlaceInput{
		{Name: "Shahdag", Category: domain.PlaceCategoryMountain, Region: strPtr("Qusar"), Price: 120, Rating: 4.8},
		{Name: "Goygol", Category: domain.PlaceCategoryLake, Region: strPtr("Göygöl"), Price: 80, Rating: 4.6},
		{Name: "Old City", Category: domain.PlaceCategoryHistoric, Region: strPtr("Bakı"), Price: 40, Rating: 4.9},
	}
	for _, in := range inputs {
		_, err := store.Places().Create(context.Background(), in)
		require.NoError(t, err)
	}
}

func TestPlaceRepositoryFilterAndTopRated(t *testing.T) {
	store := NewStore()
	seedPlaces(t, store)
	ctx := context.Background()

	filter := domain.NewPlaceFilter()
	filter.PriceMin = 50
	got, err := store.Places().Filter(ctx, filter)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)

	top, err := store.Places().ListTopRated(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Old City", top[0].Name)
	assert.Equal(t, "Shahdag", top[1].Name)

	found, err := store.Places().SearchRegion(ctx, domain.RegionQuery{From: "BAK"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(3), found[0].ID)
}

func TestPlaceRepositoryIncrementViews(t *testing.T) {
	store := NewStore()
	seedPlaces(t, store)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := store.Places().IncrementViews(ctx, 2)
		require.NoError(t, err)
	}
	place, err := store.Places().FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), place.Views)

	_, err = store.Places().IncrementViews(ctx, 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPlaceRepositoryReturnsCopies(t *testing.T) {
	store := NewStore()
	seedPlaces(t, store)
	ctx := context.Background()

	place, err := store.Places().FindByID(ctx, 1)
	require.NoError(t, err)
	place.Name = "mutated"

	again, err := store.Places().FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Shahdag", again.Name)
}

func TestUserRepositoryRejectsDuplicateEmail(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user, err := store.Users().Create(ctx, domain.NewUser{Name: "Aysel", Email: "aysel@example.com", Points: domain.RegistrationPoints})
	require.NoError(t, err)
	assert.Equal(t, domain.TierNewTraveler, user.Level)

	_, err = store.Users().Create(ctx, domain.NewUser{Name: "Other", Email: "aysel@example.com"})
	assert.ErrorIs(t, err, ports.ErrDuplicate)
}

func TestFavoriteAddAwardsOnce(t *testing.T) {
	store := NewStore()
	seedPlaces(t, store)
	ctx := context.Background()

	user, err := store.Users().Create(ctx, domain.NewUser{Name: "Aysel", Email: "aysel@example.com", Points: 95})
	require.NoError(t, err)

	_, updated, err := store.Favorites().Add(ctx, user.ID, 1, domain.FavoriteAddPoints)
	require.NoError(t, err)
	assert.Equal(t, int64(100), updated.Points)
	assert.Equal(t, domain.TierActiveTraveler, updated.Level)

	_, _, err = store.Favorites().Add(ctx, user.ID, 1, domain.FavoriteAddPoints)
	assert.ErrorIs(t, err, ports.ErrDuplicate)

	reloaded, err := store.Users().FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), reloaded.Points)
}

func TestFavoriteConcurrentDuplicateAdds(t *testing.T) {
	store := NewStore()
	seedPlaces(t, store)
	ctx := context.Background()

	user, err := store.Users().Create(ctx, domain.NewUser{Name: "Aysel", Email: "aysel@example.com", Points: domain.RegistrationPoints})
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := store.Favorites().Add(ctx, user.ID, 2, domain.FavoriteAddPoints)
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			if !errors.Is(err, ports.ErrDuplicate) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, store.FavoriteCount(user.ID, 2))
	reloaded, err := store.Users().FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(domain.RegistrationPoints+domain.FavoriteAddPoints), reloaded.Points)
}

func TestFavoriteRemove(t *testing.T) {
	store := NewStore()
	seedPlaces(t, store)
	ctx := context.Background()

	user, err := store.Users().Create(ctx, domain.NewUser{Name: "Aysel", Email: "aysel@example.com"})
	require.NoError(t, err)

	assert.ErrorIs(t, store.Favorites().Remove(ctx, user.ID, 3), sql.ErrNoRows)

	_, _, err = store.Favorites().Add(ctx, user.ID, 3, domain.FavoriteAddPoints)
	require.NoError(t, err)
	_, _, err = store.Favorites().Add(ctx, user.ID, 1, domain.FavoriteAddPoints)
	require.NoError(t, err)

	ids, err := store.Favorites().ListPlaceIDsByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, ids)

	require.NoError(t, store.Favorites().Remove(ctx, user.ID, 3))
	ids, err = store.Favorites().ListPlaceIDsByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
}

func TestSessionExpiry(t *testing.T) {
	store := NewStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := store.Sessions().CreateSession(ctx, 7, "tok", now.Add(time.Hour))
	require.NoError(t, err)

	session, err := store.Sessions().FindActiveSession(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)

	now = now.Add(2 * time.Hour)
	_, err = store.Sessions().FindActiveSession(ctx, "tok")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSessionDeactivate(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Sessions().CreateSession(ctx, 7, "tok", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, store.Sessions().DeactivateSession(ctx, "tok"))

	_, err = store.Sessions().FindActiveSession(ctx, "tok")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestReviewListPaginates(t *testing.T) {
	store := NewStore()
	seedPlaces(t, store)
	ctx := context.Background()

	user, err := store.Users().Create(ctx, domain.NewUser{Name: "Aysel", Email: "aysel@example.com"})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := store.Reviews().Create(ctx, &domain.Review{UserID: user.ID, PlaceID: 1, Rating: 4, Comment: "nice"})
		require.NoError(t, err)
	}

	page, err := store.Reviews().ListByPlace(ctx, 1, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(3), page[0].ID)
	require.NotNil(t, page[0].ReviewerName)
	assert.Equal(t, "Aysel", *page[0].ReviewerName)

	rest, err := store.Reviews().ListByPlace(ctx, 1, 2, 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}
