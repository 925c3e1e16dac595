package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateOrderQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateOrderQR("ORD20250314092653A1B2C3D4")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "expected PNG output")
}

func TestGenerateOrderQR_EmptyNumber(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateOrderQR("")
	assert.Error(t, err)
}

func TestGenerateOrderQR_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateOrderQR("ORD20250314092653A1B2C3D4")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
