package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateHandoffQR encodes a handoff token as a PNG QR code
	GenerateHandoffQR(token string) ([]byte, error)

	// ParseHandoffQR extracts the handoff token from scanned QR content
	ParseHandoffQR(qrData string) (string, error)
}
