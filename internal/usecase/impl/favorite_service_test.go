package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFavoriteRepository is an in-memory FavoriteRepository whose Add and
// Remove are atomic conditional writes, mirroring the real store's semantics.
type fakeFavoriteRepository struct {
	mu      sync.Mutex
	members map[string]map[string]bool
}

func newFakeFavoriteRepository() *fakeFavoriteRepository {
	return &fakeFavoriteRepository{members: make(map[string]map[string]bool)}
}

func (f *fakeFavoriteRepository) Add(ctx context.Context, user, productID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	set := f.members[user]
	if set == nil {
		set = make(map[string]bool)
		f.members[user] = set
	}
	if set[productID] {
		return false, nil
	}
	set[productID] = true

	return true, nil
}

func (f *fakeFavoriteRepository) Remove(ctx context.Context, user, productID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	set := f.members[user]
	if set == nil || !set[productID] {
		return false, nil
	}
	delete(set, productID)

	return true, nil
}

func (f *fakeFavoriteRepository) IsFavorited(ctx context.Context, user, productID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.members[user][productID], nil
}

func (f *fakeFavoriteRepository) ListByUser(ctx context.Context, user string) (*entity.FavoriteList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	productIDs := make([]string, 0, len(f.members[user]))
	for productID := range f.members[user] {
		productIDs = append(productIDs, productID)
	}

	return &entity.FavoriteList{User: user, ProductIDs: productIDs}, nil
}

func createTestFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *mockRepo.MockFavoriteRepository) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: favoriteRepo,
		Logger:       newDiscardLogger(),
	})

	return service, favoriteRepo
}

func TestFavoriteService_Toggle_Adds(t *testing.T) {
	service, favoriteRepo := createTestFavoriteService(t)

	ctx := context.Background()
	input := &usecase.ToggleInput{User: "user@example.com", ProductID: "prod-1"}

	favoriteRepo.EXPECT().Add(ctx, input.User, input.ProductID).Return(true, nil)

	output, err := service.Toggle(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ToggleAdded, output.Status)
}

func TestFavoriteService_Toggle_Removes(t *testing.T) {
	service, favoriteRepo := createTestFavoriteService(t)

	ctx := context.Background()
	input := &usecase.ToggleInput{User: "user@example.com", ProductID: "prod-1"}

	favoriteRepo.EXPECT().Add(ctx, input.User, input.ProductID).Return(false, nil)
	favoriteRepo.EXPECT().Remove(ctx, input.User, input.ProductID).Return(true, nil)

	output, err := service.Toggle(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ToggleRemoved, output.Status)
}

func TestFavoriteService_Toggle_RetriesAfterRace(t *testing.T) {
	service, favoriteRepo := createTestFavoriteService(t)

	ctx := context.Background()
	input := &usecase.ToggleInput{User: "user@example.com", ProductID: "prod-1"}

	// First attempt: the insert conflicts, then a concurrent toggle deletes
	// the row before our delete runs. Second attempt inserts cleanly.
	favoriteRepo.EXPECT().Add(ctx, input.User, input.ProductID).Return(false, nil).Once()
	favoriteRepo.EXPECT().Remove(ctx, input.User, input.ProductID).Return(false, nil).Once()
	favoriteRepo.EXPECT().Add(ctx, input.User, input.ProductID).Return(true, nil).Once()

	output, err := service.Toggle(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.ToggleAdded, output.Status)
}

func TestFavoriteService_Toggle_GivesUpAfterMaxAttempts(t *testing.T) {
	service, favoriteRepo := createTestFavoriteService(t)

	ctx := context.Background()
	input := &usecase.ToggleInput{User: "user@example.com", ProductID: "prod-1"}

	favoriteRepo.EXPECT().Add(ctx, input.User, input.ProductID).Return(false, nil).Times(toggleMaxAttempts)
	favoriteRepo.EXPECT().Remove(ctx, input.User, input.ProductID).Return(false, nil).Times(toggleMaxAttempts)

	output, err := service.Toggle(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestFavoriteService_Toggle_MissingFields(t *testing.T) {
	service, _ := createTestFavoriteService(t)

	cases := []struct {
		name  string
		input *usecase.ToggleInput
	}{
		{"nil input", nil},
		{"empty user", &usecase.ToggleInput{ProductID: "prod-1"}},
		{"empty product", &usecase.ToggleInput{User: "user@example.com"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := service.Toggle(context.Background(), tc.input)

			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingFields))
		})
	}
}

func TestFavoriteService_Toggle_AlternatesNotIdempotent(t *testing.T) {
	fakeRepo := newFakeFavoriteRepository()
	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: fakeRepo,
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	input := &usecase.ToggleInput{User: "user@example.com", ProductID: "prod-1"}

	// Each call flips membership; repeating a call never repeats its outcome.
	wantStatuses := []entity.ToggleStatus{entity.ToggleAdded, entity.ToggleRemoved, entity.ToggleAdded}
	for i, want := range wantStatuses {
		output, err := service.Toggle(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, want, output.Status, "toggle %d", i+1)

		favorited, err := fakeRepo.IsFavorited(ctx, input.User, input.ProductID)
		require.NoError(t, err)
		assert.Equal(t, want == entity.ToggleAdded, favorited, "membership after toggle %d", i+1)
	}
}

func TestFavoriteService_Toggle_ConcurrentTogglesStayConsistent(t *testing.T) {
	fakeRepo := newFakeFavoriteRepository()
	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: fakeRepo,
		Logger:       newDiscardLogger(),
	})

	ctx := context.Background()
	input := &usecase.ToggleInput{User: "user@example.com", ProductID: "prod-1"}

	const workers = 8
	const togglesPerWorker = 5
	const total = workers * togglesPerWorker

	var added, removed atomic.Int64
	var wg sync.WaitGroup
	errs := make(chan error, total)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range togglesPerWorker {
				output, err := service.Toggle(ctx, input)
				if err != nil {
					errs <- err

					continue
				}
				switch output.Status {
				case entity.ToggleAdded:
					added.Add(1)
				case entity.ToggleRemoved:
					removed.Add(1)
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	favorited, err := fakeRepo.IsFavorited(ctx, input.User, input.ProductID)
	require.NoError(t, err)

	// Every toggle flipped membership exactly once, so the outcome matches
	// the same number of sequential toggles: an even count lands on absent,
	// and the add/remove tallies account for the final state.
	assert.Equal(t, int64(total), added.Load()+removed.Load())
	assert.Equal(t, total%2 == 1, favorited)
	wantDelta := int64(0)
	if favorited {
		wantDelta = 1
	}
	assert.Equal(t, wantDelta, added.Load()-removed.Load())
}

func TestFavoriteService_IsFavorited(t *testing.T) {
	service, favoriteRepo := createTestFavoriteService(t)

	ctx := context.Background()
	input := &usecase.IsFavoriteInput{User: "user@example.com", ProductID: "prod-1"}

	favoriteRepo.EXPECT().IsFavorited(ctx, input.User, input.ProductID).Return(true, nil)

	favorited, err := service.IsFavorited(ctx, input)

	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoriteService_IsFavorited_BlankInputAnswersFalse(t *testing.T) {
	service, _ := createTestFavoriteService(t)

	favorited, err := service.IsFavorited(context.Background(), &usecase.IsFavoriteInput{})

	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_List(t *testing.T) {
	service, favoriteRepo := createTestFavoriteService(t)

	ctx := context.Background()
	list := &entity.FavoriteList{User: "user@example.com", ProductIDs: []string{"prod-1", "prod-2"}}

	favoriteRepo.EXPECT().ListByUser(ctx, list.User).Return(list, nil)

	output, err := service.List(ctx, list.User)

	require.NoError(t, err)
	assert.Equal(t, list.ProductIDs, output.ProductIDs)
}
