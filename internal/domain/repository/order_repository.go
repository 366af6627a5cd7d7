package repository

import (
	"context"

	"cofipos/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
)

// OrderRepository defines the interface for order document operations.
// Orders are never deleted; lifecycle transitions are full-document replaces.
type OrderRepository interface {
	// SaveOrder inserts or fully replaces an order by id.
	SaveOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its id.
	FindOrderByID(ctx context.Context, id string) (*entity.Order, error)

	// ListOrders retrieves the full order log, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// WatchOrders emits the full order log (newest first) on every remote
	// change until ctx is cancelled.
	WatchOrders(ctx context.Context) (<-chan []*entity.Order, error)
}
