// Package qrcode renders order numbers as scannable pick labels.
package qrcode

import (
	"fmt"

	"alufactory/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderQR renders the order number as a PNG QR code. The payload
// is the bare order number, so any warehouse scanner can read it without
// knowing our JSON shapes.
func (s *qrcodeService) GenerateOrderQR(orderNumber string) ([]byte, error) {
	if orderNumber == "" {
		return nil, fmt.Errorf("order number must not be empty")
	}

	qrCode, err := qrcode.New(orderNumber, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
