package impl

import (
	"context"
	"testing"

	"cofipos/internal/domain/entity"
	domainerrors "cofipos/internal/domain/errors"
	"cofipos/internal/domain/repository"
	mockRepo "cofipos/internal/mocks/repository"
	"cofipos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// eventPoolServiceFixtures holds all test dependencies for event pool service tests.
type eventPoolServiceFixtures struct {
	service         usecase.EventPoolUsecase
	eventConfigRepo *mockRepo.MockEventConfigRepository
}

func createTestEventPoolService(t *testing.T) eventPoolServiceFixtures {
	eventConfigRepo := mockRepo.NewMockEventConfigRepository(t)
	service := NewEventPoolService(eventConfigRepo)

	return eventPoolServiceFixtures{
		service:         service,
		eventConfigRepo: eventConfigRepo,
	}
}

func TestEventPoolService_Configure_ResetsPool(t *testing.T) {
	fx := createTestEventPoolService(t)

	ctx := context.Background()
	fx.eventConfigRepo.EXPECT().
		SaveEventConfig(ctx, mock.AnythingOfType("*entity.EventConfig")).
		Return(nil)

	config, err := fx.service.Configure(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, entity.EventConfigID, config.ID)
	assert.Equal(t, 50, config.MaxCups)
	assert.Equal(t, 50, config.RemainingCups)
	assert.True(t, config.IsActive)
}

func TestEventPoolService_Configure_OverwritesInProgressPool(t *testing.T) {
	fx := createTestEventPoolService(t)

	ctx := context.Background()
	fx.eventConfigRepo.EXPECT().
		SaveEventConfig(ctx, mock.AnythingOfType("*entity.EventConfig")).
		Run(func(_ context.Context, saved *entity.EventConfig) {
			assert.Equal(t, 30, saved.RemainingCups)
		}).
		Return(nil)

	config, err := fx.service.Configure(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, config.RemainingCups)
}

func TestEventPoolService_Configure_InvalidCapacity(t *testing.T) {
	fx := createTestEventPoolService(t)

	for _, maxCups := range []int{0, -10} {
		config, err := fx.service.Configure(context.Background(), maxCups)
		assert.Nil(t, config)
		assert.ErrorIs(t, err, domainerrors.ErrEventCapacityInvalid)
	}
}

func TestEventPoolService_Get_NotConfigured(t *testing.T) {
	fx := createTestEventPoolService(t)

	ctx := context.Background()
	fx.eventConfigRepo.EXPECT().
		GetEventConfig(ctx).
		Return(nil, repository.ErrEventConfigNotFound)

	config, err := fx.service.Get(ctx)
	assert.Nil(t, config)
	assert.ErrorIs(t, err, domainerrors.ErrEventConfigNotFound)
}

func TestEventPoolService_PreviewRemaining_FloorsAtZero(t *testing.T) {
	fx := createTestEventPoolService(t)

	ctx := context.Background()
	fx.eventConfigRepo.EXPECT().
		GetEventConfig(ctx).
		Return(&entity.EventConfig{MaxCups: 50, RemainingCups: 3, IsActive: true}, nil).
		Times(2)

	remaining, err := fx.service.PreviewRemaining(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	remaining, err = fx.service.PreviewRemaining(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestEventPoolService_Commit_Deducts(t *testing.T) {
	fx := createTestEventPoolService(t)

	ctx := context.Background()
	fx.eventConfigRepo.EXPECT().
		GetEventConfig(ctx).
		Return(&entity.EventConfig{ID: entity.EventConfigID, MaxCups: 50, RemainingCups: 10, IsActive: true}, nil)

	fx.eventConfigRepo.EXPECT().
		SaveEventConfig(ctx, mock.AnythingOfType("*entity.EventConfig")).
		Return(nil)

	config, err := fx.service.Commit(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, config.RemainingCups)
}

func TestEventPoolService_Commit_ClampsAtZero(t *testing.T) {
	fx := createTestEventPoolService(t)

	ctx := context.Background()
	fx.eventConfigRepo.EXPECT().
		GetEventConfig(ctx).
		Return(&entity.EventConfig{ID: entity.EventConfigID, MaxCups: 50, RemainingCups: 2, IsActive: true}, nil)

	fx.eventConfigRepo.EXPECT().
		SaveEventConfig(ctx, mock.AnythingOfType("*entity.EventConfig")).
		Run(func(_ context.Context, saved *entity.EventConfig) {
			assert.Equal(t, 0, saved.RemainingCups)
		}).
		Return(nil)

	config, err := fx.service.Commit(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, config.RemainingCups)
}

func TestEventPoolService_Watch_PassesThroughUpdates(t *testing.T) {
	fx := createTestEventPoolService(t)

	ctx := context.Background()
	source := make(chan *entity.EventConfig, 1)
	source <- &entity.EventConfig{ID: entity.EventConfigID, MaxCups: 50, RemainingCups: 20, IsActive: true}
	close(source)

	fx.eventConfigRepo.EXPECT().
		WatchEventConfig(ctx).
		Return((<-chan *entity.EventConfig)(source), nil)

	updates, err := fx.service.Watch(ctx)
	require.NoError(t, err)

	config := <-updates
	require.NotNil(t, config)
	assert.Equal(t, 20, config.RemainingCups)
}
