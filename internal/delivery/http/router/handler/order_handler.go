package handler

import (
	"net/http"

	"cofipos/internal/delivery/http/middleware"
	"cofipos/internal/delivery/http/response"
	"cofipos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	orders usecase.OrderUsecase
	carts  usecase.CartUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orders usecase.OrderUsecase, carts usecase.CartUsecase) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		carts:  carts,
	}
}

type checkoutInput struct {
	SessionID    string `json:"sessionId" validate:"required"`
	CustomerName string `json:"customerName"`
}

// Checkout turns a cart session into a queued order and empties the cart.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var input checkoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Session id is required")
	}

	cart, err := h.carts.GetCart(input.SessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.orders.Checkout(
		c.Request().Context(),
		cart,
		input.CustomerName,
		middleware.StaffFromContext(c),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	// The sold units stay decremented; only the session's lines go away.
	if err := h.carts.Finalize(input.SessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order created successfully")
}

// Complete transitions a queued order to done.
func (h *OrderHandler) Complete(c echo.Context) error {
	order, err := h.orders.Complete(
		c.Request().Context(),
		c.Param("id"),
		middleware.StaffFromContext(c),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order completed successfully")
}

type setArchivedInput struct {
	Archived bool `json:"archived"`
}

// SetArchived toggles the archived flag on an order.
func (h *OrderHandler) SetArchived(c echo.Context) error {
	var input setArchivedInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid archive input")
	}

	order, err := h.orders.SetArchived(c.Request().Context(), c.Param("id"), input.Archived)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order archive flag updated")
}
