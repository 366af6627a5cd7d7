package handler

import (
	"net/http"

	"cofipos/internal/delivery/http/response"
	"cofipos/internal/domain/entity"
	"cofipos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart session handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type startSessionInput struct {
	Mode string `json:"mode" validate:"omitempty,oneof=normal event"`
}

// StartSession opens a new cart session for a terminal.
func (h *CartHandler) StartSession(c echo.Context) error {
	var input startSessionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mode must be normal or event")
	}

	cart := h.uc.StartSession(entity.CartMode(input.Mode))

	return response.Success(c, http.StatusCreated, cart, "Cart session started")
}

// GetCart returns the current cart for a session.
func (h *CartHandler) GetCart(c echo.Context) error {
	cart, err := h.uc.GetCart(c.Param("sessionId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

type addItemInput struct {
	ProductID string `json:"productId" validate:"required"`
}

// AddItem adds one unit of a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input addItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Product id is required")
	}

	cart, err := h.uc.AddItem(c.Request().Context(), c.Param("sessionId"), input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

type updateQuantityInput struct {
	Delta int `json:"delta"`
}

// UpdateQuantity changes a cart line's quantity by a signed delta.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var input updateQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	cart, err := h.uc.UpdateQuantity(
		c.Request().Context(),
		c.Param("sessionId"),
		c.Param("productId"),
		input.Delta,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Quantity updated")
}

// Clear empties the cart, releasing reserved stock in normal mode.
func (h *CartHandler) Clear(c echo.Context) error {
	sessionID := c.Param("sessionId")
	if err := h.uc.Clear(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.GetCart(sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart cleared")
}

// EndSession clears the cart and drops the session.
func (h *CartHandler) EndSession(c echo.Context) error {
	if err := h.uc.EndSession(c.Request().Context(), c.Param("sessionId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"sessionId": c.Param("sessionId")}, "Cart session ended")
}
