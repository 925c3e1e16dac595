package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateOrderQR renders the order number as a PNG QR code.
	GenerateOrderQR(orderNumber string) ([]byte, error)
}
