// Package report renders admin exports as Excel workbooks.
package report

import (
	"bytes"
	"fmt"
	"time"

	"alufactory/internal/domain/entity"

	"github.com/xuri/excelize/v2"
)

// orderExportHeader lists the exported columns in sheet order.
var orderExportHeader = []string{
	"Order Number",
	"Status",
	"Recipient",
	"Phone",
	"Province",
	"Address",
	"Items",
	"Subtotal",
	"Shipping Fee",
	"Total Amount",
	"Tracking Number",
	"Memo",
	"Created At",
}

var orderExportColumnWidths = []float64{
	28, // Order Number
	12, // Status
	16, // Recipient
	16, // Phone
	14, // Province
	36, // Address
	10, // Items
	12, // Subtotal
	12, // Shipping Fee
	14, // Total Amount
	20, // Tracking Number
	28, // Memo
	20, // Created At
}

// GenerateOrderExport renders the orders as a single-sheet .xlsx workbook.
func GenerateOrderExport(orders []*entity.Order) ([]byte, error) {
	f := excelize.NewFile()
	// Don't defer Close() before WriteTo; the buffer write needs the file open.

	const sheetName = "Orders"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range orderExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, width := range orderExportColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, order := range orders {
		row := rowIdx + 2
		values := []any{
			order.OrderNumber,
			order.Status.String(),
			order.RecipientName,
			order.Phone,
			order.Province,
			order.AddressDetail,
			len(order.Items),
			order.Subtotal,
			order.ShippingFee,
			order.TotalAmount,
			order.TrackingNumber,
			order.Memo,
			order.CreatedAt.Format(time.RFC3339),
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}

	return buf.Bytes(), nil
}
