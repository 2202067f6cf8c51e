package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"fintrack/internal/models"
)

func sampleTransactions() []models.Transaction {
	desc := "Weekly shop"
	method := "card"
	return []models.Transaction{
		{
			Type:            models.TransactionTypeExpense,
			Amount:          decimal.RequireFromString("42.5"),
			Description:     &desc,
			TransactionDate: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			PaymentMethod:   &method,
			Tags:            datatypes.JSONSlice[string]{"food", "family"},
			Category:        &models.Category{Name: "Groceries"},
		},
		{
			Type:            models.TransactionTypeIncome,
			Amount:          decimal.RequireFromString("3000"),
			TransactionDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatCSV, false},
		{"csv", FormatCSV, false},
		{"XLSX", FormatXLSX, false},
		{"pdf", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	assert.Equal(t, "transactions.xlsx", FormatXLSX.Filename("transactions"))
	assert.Contains(t, FormatCSV.ContentType(), "text/csv")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, sampleTransactions()))

	content := buf.String()
	require.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"))

	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(content, "\xEF\xBB\xBF"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, headers, records[0])
	assert.Equal(t, []string{"2025-03-14", "expense", "Groceries", "", "Weekly shop", "42.50", "card", "", "food;family"}, records[1])
	assert.Equal(t, "3000.00", records[2][5])
	assert.Equal(t, "", records[2][2])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, sampleTransactions()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)

	assert.Equal(t, headers, rows[0])
	assert.Equal(t, "Groceries", rows[1][2])
	assert.Equal(t, "2025-03-14", rows[1][0])

	label, err := f.GetCellValue(sheetName, "E5")
	require.NoError(t, err)
	assert.Equal(t, "Total income", label)
	label, err = f.GetCellValue(sheetName, "E6")
	require.NoError(t, err)
	assert.Equal(t, "Total expense", label)
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))
	assert.NotZero(t, buf.Len())

	buf.Reset()
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "\xEF\xBB\xBF"+strings.Join(headers, ",")+"\n", buf.String())
}
