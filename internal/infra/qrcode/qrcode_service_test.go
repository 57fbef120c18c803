package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestNewQRCodeService(t *testing.T) {
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
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			require.NotNil(t, svc)

			png, err := svc.GeneratePNG("https://example.com/chat/verify?token=abc")
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(png, pngMagic))
		})
	}
}

func TestQRCodeService_EmptyContent(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GeneratePNG("")
	assert.Error(t, err)
}
