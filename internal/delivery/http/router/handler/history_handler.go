package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cofipos/internal/delivery/http/response"
	"cofipos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HistoryHandler holds dependencies for queue and history handlers.
type HistoryHandler struct {
	uc usecase.HistoryUsecase
}

// NewHistoryHandler is the constructor for HistoryHandler, injected by Fx.
func NewHistoryHandler(uc usecase.HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// ActiveQueue returns every order still in preparation.
func (h *HistoryHandler) ActiveQueue(c echo.Context) error {
	orders, err := h.uc.ActiveQueue(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Active queue retrieved")
}

// StreamQueue pushes the active queue as server-sent events on every remote
// change until the client disconnects.
func (h *HistoryHandler) StreamQueue(c echo.Context) error {
	ctx := c.Request().Context()

	updates, err := h.uc.WatchQueue(ctx)
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
		case orders, ok := <-updates:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(orders)
			if err != nil {
				return errors.Wrap(err, "failed to encode queue update")
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

type historyOutput struct {
	Orders  any                    `json:"orders"`
	Summary usecase.HistorySummary `json:"summary"`
}

// History returns fulfilled orders matching the query filters, with an
// aggregate summary over the filtered slice.
func (h *HistoryHandler) History(c echo.Context) error {
	filter := usecase.HistoryFilter{
		ShowArchived: c.QueryParam("archived") == "true",
		Type:         c.QueryParam("type"),
		Search:       c.QueryParam("search"),
		Date:         c.QueryParam("date"),
	}

	orders, err := h.uc.History(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, historyOutput{
		Orders:  orders,
		Summary: h.uc.Aggregate(orders),
	}, "Order history retrieved")
}

// ProfitAnalytics returns the revenue/profit dashboard projection.
func (h *HistoryHandler) ProfitAnalytics(c echo.Context) error {
	report, err := h.uc.ProfitAnalytics(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Profit analytics retrieved")
}
