package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryRepo(now *time.Time) *memoryUserRepository {
	repo := NewMemoryUserRepository(logger.Nop()).(*memoryUserRepository)
	repo.now = func() time.Time { return *now }
	return repo
}

func TestMemoryRepository_SaveLifecycle(t *testing.T) {
	// Arrange
	now := fixedNow
	repo := newTestMemoryRepo(&now)
	ctx := context.Background()

	// Act: first save
	created, err := repo.Save(ctx, newUser())

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, fixedNow, created.ModifiedAt)
	assert.True(t, created.IsActive)
	require.Len(t, created.Phones, 2)
	assert.NotZero(t, created.Phones[0].ID)

	exists, err := repo.ExistsByEmail(ctx, "juan@test.com")
	require.NoError(t, err)
	assert.True(t, exists)

	// Act: second save with a token
	now = fixedNow.Add(time.Minute)
	created.Token = "a.b.c"
	created.Phones = created.Phones[:1]
	updated, err := repo.Save(ctx, created)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, fixedNow, updated.CreatedAt)
	assert.Equal(t, now, updated.ModifiedAt)
	assert.Equal(t, "a.b.c", updated.Token)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
	assert.Len(t, found.Phones, 1)
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	now := fixedNow
	repo := newTestMemoryRepo(&now)

	_, err := repo.Save(context.Background(), newUser())
	require.NoError(t, err)

	_, err = repo.Save(context.Background(), newUser())
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestMemoryRepository_EmailChangeReleasesOldEmail(t *testing.T) {
	now := fixedNow
	repo := newTestMemoryRepo(&now)
	ctx := context.Background()

	user, err := repo.Save(ctx, newUser())
	require.NoError(t, err)

	user.Email = "juan.perez@test.com"
	_, err = repo.Save(ctx, user)
	require.NoError(t, err)

	oldTaken, _ := repo.ExistsByEmail(ctx, "juan@test.com")
	newTaken, _ := repo.ExistsByEmail(ctx, "juan.perez@test.com")
	assert.False(t, oldTaken)
	assert.True(t, newTaken)
}

func TestMemoryRepository_UnknownID(t *testing.T) {
	now := fixedNow
	repo := newTestMemoryRepo(&now)

	user := newUser()
	user.ID = "missing"
	_, err := repo.Save(context.Background(), user)
	assert.ErrorIs(t, err, ErrNoUserWasFound)

	_, err = repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

// TestMemoryRepository_ReturnedPhonesAreCopies verifies that mutating a
// returned user does not change the stored one.
func TestMemoryRepository_ReturnedPhonesAreCopies(t *testing.T) {
	now := fixedNow
	repo := newTestMemoryRepo(&now)
	ctx := context.Background()

	user, err := repo.Save(ctx, newUser())
	require.NoError(t, err)
	user.Phones[0].Number = "0000000"

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "987654321", found.Phones[0].Number)
}

func TestMemoryRepository_CanceledContext(t *testing.T) {
	now := fixedNow
	repo := newTestMemoryRepo(&now)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ExistsByEmail(ctx, "juan@test.com")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryRepository_ConcurrentSameEmail(t *testing.T) {
	now := fixedNow
	repo := newTestMemoryRepo(&now)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(context.Background(), newUser())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			assert.ErrorIs(t, err, ErrEmailAlreadyExists)
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, dup)
}
