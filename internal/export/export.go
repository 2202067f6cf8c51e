// Package export renders transaction lists as downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"fintrack/internal/models"
)

// Format is a supported export file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const sheetName = "Transactions"

var headers = []string{"Date", "Type", "Category", "Subcategory", "Description", "Amount", "Payment Method", "Note", "Tags"}

// ParseFormat maps a query value to a Format. An empty value selects CSV.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Filename returns the download name for an export with the given stem.
func (f Format) Filename(stem string) string {
	return stem + "." + string(f)
}

// Write renders transactions to w in format f.
func Write(w io.Writer, f Format, transactions []models.Transaction) error {
	switch f {
	case FormatXLSX:
		return WriteXLSX(w, transactions)
	case FormatCSV:
		return WriteCSV(w, transactions)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

func row(t models.Transaction) []string {
	category := ""
	if t.Category != nil {
		category = t.Category.Name
	}
	return []string{
		t.TransactionDate.Format("2006-01-02"),
		string(t.Type),
		category,
		deref(t.Subcategory),
		deref(t.Description),
		t.Amount.StringFixed(2),
		deref(t.PaymentMethod),
		deref(t.Note),
		strings.Join(t.Tags, ";"),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// WriteCSV writes a header row and one row per transaction. A UTF-8 BOM
// leads the output so spreadsheet apps detect the encoding.
func WriteCSV(w io.Writer, transactions []models.Transaction) error {
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(headers); err != nil {
		return err
	}
	for _, t := range transactions {
		if err := writer.Write(row(t)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteXLSX writes a single-sheet workbook with a styled header, one row
// per transaction and a totals row per transaction type.
func WriteXLSX(w io.Writer, transactions []models.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F46E5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", "I1", headerStyle); err != nil {
		return err
	}

	totals := map[models.TransactionType]decimal.Decimal{}
	for i, t := range transactions {
		r := row(t)
		values := make([]interface{}, len(r))
		for j, v := range r {
			values[j] = v
		}
		values[5] = t.Amount.InexactFloat64()

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
		totals[t.Type] = totals[t.Type].Add(t.Amount)
	}

	next := len(transactions) + 3
	for _, txType := range []models.TransactionType{
		models.TransactionTypeIncome, models.TransactionTypeExpense, models.TransactionTypeInvestment,
	} {
		total, ok := totals[txType]
		if !ok {
			continue
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("E%d", next), "Total "+string(txType)); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("F%d", next), total.InexactFloat64()); err != nil {
			return err
		}
		next++
	}

	if last := next - 1; last > 1 {
		if err := f.SetCellStyle(sheetName, "F2", fmt.Sprintf("F%d", last), amountStyle); err != nil {
			return err
		}
	}

	widths := map[string]float64{"A": 12, "B": 12, "C": 20, "D": 18, "E": 32, "F": 14, "G": 16, "H": 32, "I": 24}
	for col, width := range widths {
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}
