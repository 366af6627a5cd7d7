// Package impl contains the concrete implementations of the usecase ports.
package impl

import (
	"context"
	"strings"

	"cofipos/internal/domain/entity"
	domainerrors "cofipos/internal/domain/errors"
	"cofipos/internal/domain/repository"
	"cofipos/internal/errors"
	"cofipos/internal/usecase"

	"github.com/google/uuid"
)

type catalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(productRepo repository.ProductRepository) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: productRepo,
	}
}

// UpsertProduct inserts or fully replaces a product by id.
func (s *catalogService) UpsertProduct(ctx context.Context, product *entity.Product) error {
	if product == nil || strings.TrimSpace(product.Name) == "" {
		return domainerrors.ErrProductInvalid.WithDetails("name must not be blank")
	}
	if product.Price < 0 || product.UnitCost < 0 {
		return domainerrors.ErrProductInvalid.WithDetails("price and unit cost must not be negative")
	}
	if product.Stock < 0 {
		return domainerrors.ErrProductInvalid.WithDetails("stock must not be negative")
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return errors.Wrap(err, "failed to save product")
	}

	return nil
}

// RemoveProduct deletes a product permanently. Removing an already-deleted
// product is a no-op so stale terminals can retry safely.
func (s *catalogService) RemoveProduct(ctx context.Context, id string) error {
	if err := s.productRepo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// GetProduct retrieves a product by id.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return product, nil
}

// ListProducts retrieves the whole catalog.
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// SearchProducts filters the catalog by case-insensitive substring match on
// name or category.
func (s *catalogService) SearchProducts(ctx context.Context, term string) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return products, nil
	}

	matched := make([]*entity.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), needle) ||
			strings.Contains(strings.ToLower(product.Category), needle) {
			matched = append(matched, product)
		}
	}

	return matched, nil
}

// UpdateStock sets the absolute stock level of a product.
func (s *catalogService) UpdateStock(ctx context.Context, id string, stock int) error {
	if stock < 0 {
		return domainerrors.ErrProductInvalid.WithDetails("stock must not be negative")
	}

	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to find product by id")
	}

	product.Stock = stock
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return errors.Wrap(err, "failed to save product")
	}

	return nil
}

// ReserveStock decreases stock by qty, floored at zero. Unknown ids are a
// silent no-op so cart handlers stay idempotent against stale state.
func (s *catalogService) ReserveStock(ctx context.Context, id string, qty int) error {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find product by id")
	}

	product.Stock -= qty
	if product.Stock < 0 {
		product.Stock = 0
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return errors.Wrap(err, "failed to save product")
	}

	return nil
}

// ReleaseStock increases stock by qty. No upper bound is enforced.
func (s *catalogService) ReleaseStock(ctx context.Context, id string, qty int) error {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find product by id")
	}

	product.Stock += qty
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return errors.Wrap(err, "failed to save product")
	}

	return nil
}

// SeedDefaults loads the starter catalog when the store is empty.
func (s *catalogService) SeedDefaults(ctx context.Context) error {
	products, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list products")
	}
	if len(products) > 0 {
		return nil
	}

	for _, product := range defaultCatalog() {
		if err := s.productRepo.SaveProduct(ctx, product); err != nil {
			return errors.Wrapf(err, "failed to seed product %s", product.ID)
		}
	}

	return nil
}

// WatchCatalog streams the full catalog on every remote change.
func (s *catalogService) WatchCatalog(ctx context.Context) (<-chan []*entity.Product, error) {
	updates, err := s.productRepo.WatchProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch products")
	}

	return updates, nil
}
