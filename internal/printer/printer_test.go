package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namphatvn/inventory-voucher/internal/config"
	"github.com/namphatvn/inventory-voucher/internal/voucher"
)

func TestRender(t *testing.T) {
	company := config.CompanyConfig{
		Name:    "CÔNG TY TNHH NAM PHÁT VIỆT NAM",
		Address: "KCN Tiên Sơn, Bắc Ninh, Việt Nam",
		Hotline: "09xx-xxx-xxx",
	}
	r := voucher.Record{
		ID:             "24.03.001",
		Date:           "2024-03-10",
		RecipientUnit:  "Công ty A",
		DriverName:     "Nguyễn Văn B",
		DriverTripCost: 150000,
		Items: []voucher.Item{
			{ID: "i1", STT: 1, Name: "Xi măng", Quantity: 10, UnitPrice: 85000},
		},
		Notes: "Giao buổi sáng",
	}
	r.Recalculate()

	var out strings.Builder
	require.NoError(t, Render(&out, company, r))
	doc := out.String()

	assert.Contains(t, doc, "CÔNG TY TNHH NAM PHÁT VIỆT NAM")
	assert.Contains(t, doc, "PHIẾU NHẬP XUẤT HÀNG HÓA")
	assert.Contains(t, doc, "Số: 24.03.001 - Ngày: 2024-03-10")
	assert.Contains(t, doc, "Công ty A")
	assert.Contains(t, doc, "Nguyễn Văn B")
	assert.Contains(t, doc, "Xi măng")
	assert.Contains(t, doc, "1.000.000 VNĐ") // 10*85000 + 150000
	assert.Contains(t, doc, "Giao buổi sáng")
	assert.Contains(t, doc, "Bên Xuất")
	assert.Contains(t, doc, "Bên Vận Chuyển")
	assert.Contains(t, doc, "Bên Nhập")
}

func TestRenderOptionalFields(t *testing.T) {
	r := voucher.Record{
		ID:            "24.03.002",
		Date:          "2024-03-11",
		RecipientUnit: "Công ty B",
		Items: []voucher.Item{
			{ID: "i1", STT: 1, Name: "Cát", Quantity: 1, UnitPrice: 1000},
		},
	}
	r.Recalculate()

	var out strings.Builder
	require.NoError(t, Render(&out, config.CompanyConfig{Name: "Test Co"}, r))
	doc := out.String()

	// Missing driver renders as N/A; missing notes render no notes line.
	assert.Contains(t, doc, "N/A")
	assert.NotContains(t, doc, "Ghi chú")
}
