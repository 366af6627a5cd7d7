package handler

import (
	"net/http"

	"cofipos/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReceiptHandler serves pickup QR codes for printed receipts.
type ReceiptHandler struct {
	receipts service.ReceiptService
}

// NewReceiptHandler is the constructor for ReceiptHandler, injected by Fx.
func NewReceiptHandler(receipts service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

// OrderQR renders the order's pickup QR code as a PNG image.
func (h *ReceiptHandler) OrderQR(c echo.Context) error {
	png, err := h.receipts.GenerateOrderQR(c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
