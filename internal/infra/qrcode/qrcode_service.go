package qrcode

import (
	"encoding/json"
	"strings"

	"foodlink/internal/domain/service"
	"foodlink/internal/errors"

	"github.com/skip2/go-qrcode"
)

const handoffType = "handoff"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Token string `json:"token"`
	Type  string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateHandoffQR encodes a handoff token as a PNG QR code
func (s *qrcodeService) GenerateHandoffQR(token string) ([]byte, error) {
	if token == "" {
		return nil, errors.New("handoff token is empty")
	}

	jsonData, err := json.Marshal(QRCodeData{Token: token, Type: handoffType})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseHandoffQR extracts the handoff token from scanned QR content
func (s *qrcodeService) ParseHandoffQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != handoffType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.Token == "" {
		return "", errors.New("QR code carries no handoff token")
	}

	return data.Token, nil
}
