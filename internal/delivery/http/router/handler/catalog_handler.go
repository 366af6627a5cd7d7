// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"cofipos/config"
	"cofipos/internal/delivery/http/response"
	"cofipos/internal/domain/entity"
	"cofipos/internal/domain/service"
	"cofipos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// defaultLowStockThreshold matches the catalog badge cutoff.
const defaultLowStockThreshold = 10

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	uc        usecase.CatalogUsecase
	images    service.ImageStore
	logger    *slog.Logger
	threshold int
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, images service.ImageStore, cfg *config.Config, logger *slog.Logger) *CatalogHandler {
	threshold := defaultLowStockThreshold
	if cfg.Catalog != nil && cfg.Catalog.LowStockThreshold > 0 {
		threshold = cfg.Catalog.LowStockThreshold
	}

	return &CatalogHandler{
		uc:        uc,
		images:    images,
		logger:    logger,
		threshold: threshold,
	}
}

// ListProducts returns the whole catalog, or a filtered view when the q
// query parameter is present.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	term := c.QueryParam("q")

	var (
		products []*entity.Product
		err      error
	)
	if term != "" {
		products, err = h.uc.SearchProducts(c.Request().Context(), term)
	} else {
		products, err = h.uc.ListProducts(c.Request().Context())
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// ListLowStock returns products running out of stock, for the restock view.
func (h *CatalogHandler) ListLowStock(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	lowStock := make([]*entity.Product, 0)
	for _, product := range products {
		if product.LowStock(h.threshold) {
			lowStock = append(lowStock, product)
		}
	}

	return response.Success(c, http.StatusOK, lowStock, "Low stock products retrieved")
}

// StreamCatalog pushes the full catalog as server-sent events on every
// remote change, so registers see stock moves from other terminals live.
func (h *CatalogHandler) StreamCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	updates, err := h.uc.WatchCatalog(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case products, ok := <-updates:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(products)
			if err != nil {
				return errors.Wrap(err, "failed to encode catalog update")
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

// GetProduct returns a single product by id.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateProduct inserts a new product. An empty id gets generated.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var product *entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := h.uc.UpsertProduct(c.Request().Context(), product); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct fully replaces the product at the path id.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var product *entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	product.ID = c.Param("id")

	if err := h.uc.UpsertProduct(c.Request().Context(), product); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a product and its stored image, if any.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	if err := h.uc.RemoveProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	if h.images != nil {
		if err := h.images.DeleteProductImage(c.Request().Context(), id); err != nil {
			h.logger.WarnContext(c.Request().Context(), "failed to delete product image",
				slog.String("product_id", id),
				slog.Any("error", err))
		}
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id}, "Product deleted successfully")
}

type updateStockInput struct {
	Stock int `json:"stock"`
}

// UpdateStock sets the absolute stock level of a product.
func (h *CatalogHandler) UpdateStock(c echo.Context) error {
	var input updateStockInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	id := c.Param("id")
	if err := h.uc.UpdateStock(c.Request().Context(), id, input.Stock); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Stock updated successfully")
}

// UploadImage stores a product image and records its public URL on the
// product. Returns 404 for unknown products and 503 when no bucket is
// configured.
func (h *CatalogHandler) UploadImage(c echo.Context) error {
	if h.images == nil {
		return response.Error(c, http.StatusServiceUnavailable, "STORAGE_DISABLED", "Product image storage is not configured", "")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	url, err := h.images.UploadProductImage(
		c.Request().Context(),
		product.ID,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	product.Image = url
	if err := h.uc.UpsertProduct(c.Request().Context(), product); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product image uploaded successfully")
}
