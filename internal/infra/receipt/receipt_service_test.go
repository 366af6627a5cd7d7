package receipt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrderID = "A1B2C3D4E"

func TestNewReceiptService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewReceiptService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestReceiptService_GenerateOrderQR(t *testing.T) {
	service := NewReceiptService(256, "M")

	qrBytes, err := service.GenerateOrderQR(testOrderID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestReceiptService_GenerateOrderQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewReceiptService(tt.size, "M")

			qrBytes, err := service.GenerateOrderQR(testOrderID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestReceiptService_GenerateOrderQR_InvalidOrderID(t *testing.T) {
	service := NewReceiptService(256, "M")

	_, err := service.GenerateOrderQR("short")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order id")
}

func TestReceiptService_ParseOrderQR(t *testing.T) {
	service := NewReceiptService(256, "M")

	data := QRCodeData{
		OrderID: testOrderID,
		Type:    "order",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseOrderQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, testOrderID, parsedID)
}

func TestReceiptService_ParseOrderQR_InvalidJSON(t *testing.T) {
	service := NewReceiptService(256, "M")

	_, err := service.ParseOrderQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestReceiptService_ParseOrderQR_InvalidType(t *testing.T) {
	service := NewReceiptService(256, "M")

	data := QRCodeData{
		OrderID: testOrderID,
		Type:    "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseOrderQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestReceiptService_ParseOrderQR_InvalidOrderID(t *testing.T) {
	service := NewReceiptService(256, "M")

	data := QRCodeData{
		OrderID: "not-an-id",
		Type:    "order",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, err = service.ParseOrderQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order id")
}

func TestReceiptService_RoundTrip(t *testing.T) {
	service := NewReceiptService(256, "M")

	qrBytes, err := service.GenerateOrderQR(testOrderID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The PNG itself is scanned by a device in real usage; the payload the
	// scanner hands back is the JSON document, so round-trip on that.
	data := QRCodeData{
		OrderID: testOrderID,
		Type:    "order",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedID, err := service.ParseOrderQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, testOrderID, parsedID)
}
