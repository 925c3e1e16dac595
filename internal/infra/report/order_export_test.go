package report

import (
	"bytes"
	"testing"
	"time"

	"alufactory/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateOrderExport(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	orders := []*entity.Order{
		{
			OrderNumber:   "ORD20250314092653A1B2C3D4",
			Status:        entity.OrderStatusConfirmed,
			RecipientName: "王小明",
			Phone:         "0912345678",
			Province:      "台北市",
			AddressDetail: "信義區松高路 1 號",
			Subtotal:      1080,
			ShippingFee:   120,
			TotalAmount:   1200,
			Items:         []*entity.OrderItem{{ProductName: "洞洞板"}},
			CreatedAt:     created,
		},
	}

	data, err := GenerateOrderExport(orders)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Order Number", rows[0][0])
	assert.Equal(t, "ORD20250314092653A1B2C3D4", rows[1][0])
	assert.Equal(t, "confirmed", rows[1][1])
	assert.Equal(t, "王小明", rows[1][2])
}

func TestGenerateOrderExport_EmptyList(t *testing.T) {
	data, err := GenerateOrderExport(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 1, "only the header row is expected")
}
