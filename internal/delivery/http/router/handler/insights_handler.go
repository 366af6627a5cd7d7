package handler

import (
	"net/http"

	"cofipos/internal/delivery/http/response"
	"cofipos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InsightsHandler serves LLM-generated business insights.
type InsightsHandler struct {
	uc usecase.InsightsUsecase
}

// NewInsightsHandler is the constructor for InsightsHandler, injected by Fx.
func NewInsightsHandler(uc usecase.InsightsUsecase) *InsightsHandler {
	return &InsightsHandler{uc: uc}
}

// BusinessInsights generates insights over the catalog and recent sales.
func (h *InsightsHandler) BusinessInsights(c echo.Context) error {
	report, err := h.uc.BusinessInsights(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Insights generated successfully")
}
