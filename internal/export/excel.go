package export

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"gstdesk/internal/domain"
)

// columns defines the document register header row.
var columns = []string{
	"Number",
	"Kind",
	"Status",
	"Date",
	"Counterparty",
	"Counterparty GSTIN",
	"Counterparty State",
	"Supply Type",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"Total Tax",
	"Before Discount",
	"Discount",
	"Round Off",
	"Total",
	"Created At",
}

const sheetName = "Documents"

// WriteRegister renders a batch of documents as an Excel workbook and
// writes it to w. One row per document; tax columns carry the stored
// totals, not re-derived values.
func WriteRegister(w io.Writer, docs []domain.Document) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("export.WriteRegister: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("export.WriteRegister: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("export.WriteRegister header: %w", err)
	}

	for i := range docs {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cell, documentToRow(&docs[i])); err != nil {
			return fmt.Errorf("export.WriteRegister row %d: %w", i, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteRegister write: %w", err)
	}
	return nil
}

func documentToRow(doc *domain.Document) *[]interface{} {
	row := []interface{}{
		doc.Number,
		string(doc.Kind),
		string(doc.Status),
		doc.DocDate.Format("2006-01-02"),
		doc.CounterpartyName,
		doc.CounterpartyGSTIN,
		doc.CounterpartyState,
		string(doc.GSTType),
		formatMoney(doc.Subtotal),
		formatMoney(doc.CGST),
		formatMoney(doc.SGST),
		formatMoney(doc.IGST),
		formatMoney(doc.TotalTax),
		formatMoney(doc.BeforeDiscount),
		formatMoney(doc.DiscountAmount),
		formatMoney(doc.RoundOff),
		formatMoney(doc.Total),
		doc.CreatedAt.Format(time.RFC3339),
	}
	return &row
}

func formatMoney(v decimal.Decimal) string {
	return v.StringFixed(2)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.xlsx
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.xlsx", sanitized, date)
}
