package service

// ReceiptService renders machine-readable order references for printed
// receipts and pickup screens.
type ReceiptService interface {
	// GenerateOrderQR renders a PNG QR code encoding the order reference.
	GenerateOrderQR(orderID string) ([]byte, error)

	// ParseOrderQR decodes QR payload data back into an order id.
	ParseOrderQR(qrData string) (string, error)
}
