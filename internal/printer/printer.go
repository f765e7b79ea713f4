// =============================================================================
// Inventory Voucher Manager - Print Surface
// =============================================================================
//
// Renders one voucher as a formal fixed-width text document: the same fields
// as the detail export, laid out for printing from a terminal (or piping to
// lp). Read-only; nothing here mutates the record.
//
// =============================================================================

package printer

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/namphatvn/inventory-voucher/internal/config"
	"github.com/namphatvn/inventory-voucher/internal/voucher"
	"github.com/namphatvn/inventory-voucher/pkg/format"
)

const lineWidth = 78

// Render writes the printable document for one voucher.
func Render(w io.Writer, company config.CompanyConfig, r voucher.Record) error {
	var b strings.Builder

	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	b.WriteString(rule + "\n")
	b.WriteString(center(company.Name) + "\n")
	if company.Address != "" {
		b.WriteString(center("Địa chỉ: "+company.Address) + "\n")
	}
	if company.Hotline != "" {
		b.WriteString(center("Hotline: "+company.Hotline) + "\n")
	}
	b.WriteString(rule + "\n\n")

	b.WriteString(center("PHIẾU NHẬP XUẤT HÀNG HÓA") + "\n")
	b.WriteString(center(fmt.Sprintf("Số: %s - Ngày: %s", r.ID, r.Date)) + "\n\n")

	b.WriteString(fmt.Sprintf("Đơn vị nhận:   %s\n", r.RecipientUnit))
	b.WriteString(fmt.Sprintf("Lái xe:        %s\n", orNA(r.DriverName)))
	b.WriteString(fmt.Sprintf("Giá chuyến xe: %s\n\n", format.MoneyVND(r.DriverTripCost)))

	b.WriteString(thin + "\n")

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STT\tMặt hàng\tSố lượng\tĐơn giá\tThành tiền")
	for _, it := range r.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			it.STT, it.Name, format.Quantity(it.Quantity),
			format.Money(it.UnitPrice), format.Money(it.Total))
	}
	fmt.Fprintf(tw, "\t\t\tCước vận chuyển\t%s\n", format.Money(r.DriverTripCost))
	fmt.Fprintf(tw, "\t\t\tTỔNG CỘNG\t%s\n", format.MoneyVND(r.GrandTotal))
	if err := tw.Flush(); err != nil {
		return err
	}

	b.WriteString(thin + "\n")
	if r.Notes != "" {
		b.WriteString(fmt.Sprintf("Ghi chú: %s\n", r.Notes))
		b.WriteString(thin + "\n")
	}

	b.WriteString("\n")
	b.WriteString(threeColumns("Bên Xuất", "Bên Vận Chuyển", "Bên Nhập") + "\n")
	b.WriteString(threeColumns("(Ký, họ tên)", "(Ký, họ tên)", "(Ký, họ tên)") + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func center(s string) string {
	pad := (lineWidth - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

func threeColumns(a, b, c string) string {
	col := lineWidth / 3
	return fmt.Sprintf("%-*s%-*s%s", col, center3(a, col), col, center3(b, col), center3(c, col))
}

func center3(s string, width int) string {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
