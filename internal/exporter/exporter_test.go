package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/namphatvn/inventory-voucher/internal/config"
	"github.com/namphatvn/inventory-voucher/internal/voucher"
)

var testCompany = config.CompanyConfig{
	Name:      "CÔNG TY TNHH NAM PHÁT VIỆT NAM",
	ShortName: "NamPhat",
}

func sampleRecord() voucher.Record {
	r := voucher.Record{
		ID:             "24.03.001",
		Date:           "2024-03-10",
		RecipientUnit:  "Công ty A",
		DriverName:     "Nguyễn Văn B",
		DriverTripCost: 150000,
		Items: []voucher.Item{
			{ID: "i1", STT: 1, Name: "Xi măng", Quantity: 10, UnitPrice: 85000},
			{ID: "i2", STT: 2, Name: "Cát vàng", Quantity: 3, UnitPrice: 30000},
		},
		Notes: "Giao buổi sáng",
	}
	r.Recalculate()
	return r
}

func TestExportDetail(t *testing.T) {
	dir := t.TempDir()
	exp := New(dir, testCompany, nil)

	path, err := exp.ExportDetail(sampleRecord())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "NamPhat_Detail_24.03.001.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "ChiTietPhieu"
	require.Contains(t, f.GetSheetList(), sheet)

	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "CÔNG TY TNHH NAM PHÁT VIỆT NAM", cell("A1"))
	assert.Equal(t, "PHIẾU NHẬP XUẤT HÀNG HÓA CHI TIẾT", cell("A2"))
	assert.Equal(t, "24.03.001", cell("B4"))
	assert.Equal(t, "2024-03-10", cell("B5"))
	assert.Equal(t, "Công ty A", cell("B6"))
	assert.Equal(t, "Nguyễn Văn B", cell("B7"))
	assert.Equal(t, "150.000 VNĐ", cell("B8"))

	// Item table: header row 10, items from row 11.
	assert.Equal(t, "STT", cell("A10"))
	assert.Equal(t, "Xi măng", cell("B11"))
	assert.Equal(t, "850000", cell("E11"))
	assert.Equal(t, "Cát vàng", cell("B12"))

	// Grand total row follows the blank row after the items.
	assert.Equal(t, "TỔNG CỘNG:", cell("D14"))
	assert.Equal(t, "1.090.000 VNĐ", cell("E14"))

	assert.Equal(t, "Giao buổi sáng", cell("B16"))
	assert.Equal(t, "Bên xuất", cell("A18"))
	assert.Equal(t, "Bên nhập", cell("E18"))
}

func TestExportDetailNotesFallback(t *testing.T) {
	exp := New(t.TempDir(), testCompany, nil)

	r := sampleRecord()
	r.Notes = ""
	path, err := exp.ExportDetail(r)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("ChiTietPhieu", "B16")
	require.NoError(t, err)
	assert.Equal(t, "Không có", v)
}

func TestExportHistory(t *testing.T) {
	dir := t.TempDir()
	exp := New(dir, testCompany, nil)

	second := sampleRecord()
	second.ID = "24.03.002"
	second.Items = second.Items[:1]
	second.Recalculate()

	path, err := exp.ExportHistory([]voucher.Record{second, sampleRecord()})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "NamPhat_TongHop_LichSu.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "LichSuGiaoDich"
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)

	// Header plus one row per line item: 1 from the first record, 2 from the
	// second.
	require.Len(t, rows, 4)
	assert.Equal(t, "Mã phiếu", rows[0][0])

	assert.Equal(t, "24.03.002", rows[1][0])
	assert.Equal(t, "Xi măng", rows[1][6])

	assert.Equal(t, "24.03.001", rows[2][0])
	assert.Equal(t, "24.03.001", rows[3][0])
	assert.Equal(t, "Cát vàng", rows[3][6])
}
