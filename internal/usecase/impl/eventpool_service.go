package impl

import (
	"context"

	"cofipos/internal/domain/entity"
	domainerrors "cofipos/internal/domain/errors"
	"cofipos/internal/domain/repository"
	"cofipos/internal/errors"
	"cofipos/internal/usecase"
)

type eventPoolService struct {
	eventConfigRepo repository.EventConfigRepository
}

// NewEventPoolService creates a new event pool service instance
func NewEventPoolService(eventConfigRepo repository.EventConfigRepository) usecase.EventPoolUsecase {
	return &eventPoolService{
		eventConfigRepo: eventConfigRepo,
	}
}

// Configure sets a new pool of maxCups, resetting remaining cups to the
// maximum. Any in-progress pool is overwritten, never merged.
func (s *eventPoolService) Configure(ctx context.Context, maxCups int) (*entity.EventConfig, error) {
	if maxCups <= 0 {
		return nil, domainerrors.ErrEventCapacityInvalid
	}

	config := &entity.EventConfig{
		ID:            entity.EventConfigID,
		MaxCups:       maxCups,
		RemainingCups: maxCups,
		IsActive:      true,
	}

	if err := s.eventConfigRepo.SaveEventConfig(ctx, config); err != nil {
		return nil, errors.Wrap(err, "failed to save event config")
	}

	return config, nil
}

// Get returns the current pool configuration.
func (s *eventPoolService) Get(ctx context.Context) (*entity.EventConfig, error) {
	config, err := s.eventConfigRepo.GetEventConfig(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrEventConfigNotFound) {
			return nil, domainerrors.ErrEventConfigNotFound
		}

		return nil, errors.Wrap(err, "failed to get event config")
	}

	return config, nil
}

// PreviewRemaining returns the pool headroom after hypothetically deducting
// cartQty cups, floored at zero.
func (s *eventPoolService) PreviewRemaining(ctx context.Context, cartQty int) (int, error) {
	config, err := s.Get(ctx)
	if err != nil {
		return 0, err
	}

	return config.PreviewRemaining(cartQty), nil
}

// Commit deducts qty cups from the pool, clamped at zero. It never rejects on
// magnitude; the add-time ceiling is expected to prevent overshoot.
func (s *eventPoolService) Commit(ctx context.Context, qty int) (*entity.EventConfig, error) {
	config, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	config.RemainingCups -= qty
	if config.RemainingCups < 0 {
		config.RemainingCups = 0
	}

	if err := s.eventConfigRepo.SaveEventConfig(ctx, config); err != nil {
		return nil, errors.Wrap(err, "failed to save event config")
	}

	return config, nil
}

// Watch streams the pool configuration on every remote change.
func (s *eventPoolService) Watch(ctx context.Context) (<-chan *entity.EventConfig, error) {
	updates, err := s.eventConfigRepo.WatchEventConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch event config")
	}

	return updates, nil
}
