// Package receipt renders order pickup QR codes for printed receipts.
package receipt

import (
	"encoding/json"
	"fmt"
	"regexp"

	"cofipos/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

var orderIDPattern = regexp.MustCompile(`^[0-9A-Z]{9}$`)

type receiptService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewReceiptService creates a new receipt service instance
func NewReceiptService(size int, errorCorrectionLevel string) service.ReceiptService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &receiptService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderQR generates a pickup QR code for an order
func (s *receiptService) GenerateOrderQR(orderID string) ([]byte, error) {
	if !orderIDPattern.MatchString(orderID) {
		return nil, fmt.Errorf("invalid order id: %s", orderID)
	}

	// Create QR code data
	data := QRCodeData{
		OrderID: orderID,
		Type:    "order",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderQR parses QR code data and returns the order ID
func (s *receiptService) ParseOrderQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "order" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	// Validate order id format
	if !orderIDPattern.MatchString(data.OrderID) {
		return "", fmt.Errorf("invalid order id: %s", data.OrderID)
	}

	return data.OrderID, nil
}
