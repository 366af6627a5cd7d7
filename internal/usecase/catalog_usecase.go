// Package usecase defines the inbound ports of the application core.
package usecase

import (
	"context"

	"cofipos/internal/domain/entity"
)

// CatalogUsecase manages the product catalog and the stock ledger behind it.
//
// Reserve/Release implement soft reservation: stock is decremented the moment
// an item enters a cart and returned when it leaves, not at checkout.
type CatalogUsecase interface {
	// UpsertProduct inserts or fully replaces a product by id.
	UpsertProduct(ctx context.Context, product *entity.Product) error

	// RemoveProduct deletes a product permanently. Confirmation is the UI's
	// responsibility.
	RemoveProduct(ctx context.Context, id string) error

	// GetProduct retrieves a product by id.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// ListProducts retrieves the whole catalog.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// SearchProducts filters the catalog by case-insensitive substring match
	// on name or category.
	SearchProducts(ctx context.Context, term string) ([]*entity.Product, error)

	// UpdateStock sets the absolute stock level of a product.
	UpdateStock(ctx context.Context, id string, stock int) error

	// ReserveStock decreases stock by qty, floored at zero, and persists the
	// product. Unknown ids are a silent no-op.
	ReserveStock(ctx context.Context, id string, qty int) error

	// ReleaseStock increases stock by qty and persists the product. No upper
	// bound is enforced. Unknown ids are a silent no-op.
	ReleaseStock(ctx context.Context, id string, qty int) error

	// SeedDefaults loads the starter catalog when the store is empty.
	SeedDefaults(ctx context.Context) error

	// WatchCatalog streams the full catalog on every remote change until ctx
	// is cancelled.
	WatchCatalog(ctx context.Context) (<-chan []*entity.Product, error)
}
