// =============================================================================
// Inventory Voucher Manager - Spreadsheet Export
// =============================================================================
//
// Generates the two XLSX exports:
//
//   1. Single-voucher detail: a fixed-layout sheet reproducing the voucher
//      paperwork (company header, voucher header, item table, grand-total row,
//      notes, three-column signature block).
//      File: <org>_Detail_<id>.xlsx, sheet "ChiTietPhieu".
//
//   2. Bulk history: one flattened row per line item across all vouchers.
//      File: <org>_TongHop_LichSu.xlsx, sheet "LichSuGiaoDich".
//
// Both are write-only, one-shot generations; there is no import path.
//
// =============================================================================

package exporter

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/namphatvn/inventory-voucher/internal/config"
	"github.com/namphatvn/inventory-voucher/internal/voucher"
	"github.com/namphatvn/inventory-voucher/pkg/format"
	"github.com/namphatvn/inventory-voucher/pkg/utils"
)

// Exporter writes voucher workbooks to the configured output directory.
type Exporter struct {
	outputDir string
	company   config.CompanyConfig
	log       *zap.Logger
}

// New creates an Exporter.
func New(outputDir string, company config.CompanyConfig, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{outputDir: outputDir, company: company, log: log}
}

// ExportDetail writes the fixed-layout detail workbook for one voucher and
// returns the path of the generated file.
func (e *Exporter) ExportDetail(r voucher.Record) (string, error) {
	const sheet = "ChiTietPhieu"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	notes := r.Notes
	if notes == "" {
		notes = "Không có"
	}

	rows := [][]interface{}{
		{e.company.Name},
		{"PHIẾU NHẬP XUẤT HÀNG HÓA CHI TIẾT"},
		{},
		{"Mã phiếu:", r.ID},
		{"Ngày:", r.Date},
		{"Đơn vị nhận:", r.RecipientUnit},
		{"Lái xe:", r.DriverName},
		{"Giá chuyến xe:", format.MoneyVND(r.DriverTripCost)},
		{},
		{"STT", "Mặt hàng", "Số lượng", "Đơn giá", "Thành tiền"},
	}
	for _, it := range r.Items {
		rows = append(rows, []interface{}{it.STT, it.Name, it.Quantity, it.UnitPrice, it.Total})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"", "", "", "TỔNG CỘNG:", format.MoneyVND(r.GrandTotal)},
		[]interface{}{},
		[]interface{}{"Ghi chú:", notes},
		[]interface{}{},
		[]interface{}{"Bên xuất", "", "Bên vận chuyển", "", "Bên nhập"},
		[]interface{}{"(Ký tên)", "", "(Ký tên)", "", "(Ký tên)"},
	)

	if err := writeRows(f, sheet, rows); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_Detail_%s.xlsx", e.company.ShortName, r.ID)
	return e.save(f, name)
}

// ExportHistory writes the bulk workbook: one row per line item across all
// vouchers, in collection order. It returns the path of the generated file.
func (e *Exporter) ExportHistory(records []voucher.Record) (string, error) {
	const sheet = "LichSuGiaoDich"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Mã phiếu", "Ngày", "Đơn vị nhận", "Lái xe", "Giá chuyến",
			"STT", "Mặt hàng", "Số lượng", "Đơn giá", "Thành tiền", "Tổng đơn"},
	}
	for _, r := range records {
		for _, it := range r.Items {
			rows = append(rows, []interface{}{
				r.ID, r.Date, r.RecipientUnit, r.DriverName, r.DriverTripCost,
				it.STT, it.Name, it.Quantity, it.UnitPrice, it.Total, r.GrandTotal,
			})
		}
	}

	if err := writeRows(f, sheet, rows); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_TongHop_LichSu.xlsx", e.company.ShortName)
	return e.save(f, name)
}

// writeRows fills the sheet starting at A1, one slice per row.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return nil
}

// save writes the workbook into the output directory.
func (e *Exporter) save(f *excelize.File, name string) (string, error) {
	if err := utils.EnsureDir(e.outputDir); err != nil {
		return "", err
	}

	path := filepath.Join(e.outputDir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	e.log.Info("workbook exported", zap.String("path", path))
	return path, nil
}
