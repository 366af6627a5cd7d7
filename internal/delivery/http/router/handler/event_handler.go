package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"cofipos/internal/delivery/http/response"
	"cofipos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for event cup pool handlers.
type EventHandler struct {
	uc usecase.EventPoolUsecase
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventPoolUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

type configureEventInput struct {
	MaxCups int `json:"maxCups" validate:"required,gt=0"`
}

// Configure starts a new event pool, overwriting any in-progress one.
func (h *EventHandler) Configure(c echo.Context) error {
	var input configureEventInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "maxCups must be a positive number")
	}

	config, err := h.uc.Configure(c.Request().Context(), input.MaxCups)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Event configured successfully")
}

// Get returns the current event pool configuration.
func (h *EventHandler) Get(c echo.Context) error {
	config, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, config, "Event configuration retrieved")
}

// Stream pushes the pool configuration as server-sent events on every remote
// change, so every terminal shows the same remaining-cup count.
func (h *EventHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()

	updates, err := h.uc.Watch(ctx)
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
		case config, ok := <-updates:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(config)
			if err != nil {
				return errors.Wrap(err, "failed to encode pool update")
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

// PreviewRemaining returns the pool headroom after hypothetically deducting
// the cartQty query parameter. Display-only.
func (h *EventHandler) PreviewRemaining(c echo.Context) error {
	cartQty := 0
	if raw := c.QueryParam("cartQty"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "cartQty must be a non-negative integer")
		}
		cartQty = parsed
	}

	remaining, err := h.uc.PreviewRemaining(c.Request().Context(), cartQty)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"remainingCups": remaining}, "Remaining cups computed")
}
