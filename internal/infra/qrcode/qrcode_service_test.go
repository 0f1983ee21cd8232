package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestQRCodeService_GenerateHandoffQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.GenerateHandoffQR("header.payload.signature")
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_GenerateHandoffQR_EmptyToken(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateHandoffQR("")
	assert.Error(t, err)
}

func TestQRCodeService_ParseHandoffQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	valid, err := json.Marshal(QRCodeData{Token: "abc.def.ghi", Type: "handoff"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(QRCodeData{Token: "abc.def.ghi", Type: "subscription"})
	require.NoError(t, err)
	noToken, err := json.Marshal(QRCodeData{Type: "handoff"})
	require.NoError(t, err)

	token, err := service.ParseHandoffQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = service.ParseHandoffQR("invalid json")
	assert.ErrorContains(t, err, "failed to unmarshal QR code data")

	_, err = service.ParseHandoffQR(string(wrongType))
	assert.ErrorContains(t, err, "invalid QR code type")

	_, err = service.ParseHandoffQR(string(noToken))
	assert.Error(t, err)
}
