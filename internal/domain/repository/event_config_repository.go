package repository

import (
	"context"

	"cofipos/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for event pool persistence.
var (
	// ErrEventConfigNotFound is returned when no event pool has been configured yet.
	ErrEventConfigNotFound = errors.New("event config not found")
)

// EventConfigRepository defines the interface for the singleton event pool
// document, stored under the fixed key entity.EventConfigID.
type EventConfigRepository interface {
	// GetEventConfig retrieves the singleton event pool configuration.
	GetEventConfig(ctx context.Context) (*entity.EventConfig, error)

	// SaveEventConfig fully replaces the singleton event pool configuration.
	SaveEventConfig(ctx context.Context, config *entity.EventConfig) error

	// WatchEventConfig emits the configuration on every remote change until
	// ctx is cancelled.
	WatchEventConfig(ctx context.Context) (<-chan *entity.EventConfig, error)
}
