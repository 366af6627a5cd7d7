// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cofipos/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product document operations.
// The backing store applies last-write-wins at the document level; every
// write is a full document replace keyed by product id.
type ProductRepository interface {
	// SaveProduct inserts or fully replaces a product by id.
	SaveProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its id.
	FindProductByID(ctx context.Context, id string) (*entity.Product, error)

	// ListProducts retrieves the whole catalog.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// DeleteProduct removes a product permanently.
	DeleteProduct(ctx context.Context, id string) error

	// WatchProducts emits the full catalog on every remote change until ctx
	// is cancelled.
	WatchProducts(ctx context.Context) (<-chan []*entity.Product, error)
}
