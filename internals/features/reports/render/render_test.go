package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	return Table{
		Title:   "Fee Report",
		Headers: []string{"Fee Name", "Type", "Tuition", "Computer Lab"},
		Rows: []map[string]any{
			{"fee name": "Grade 1", "type": "AnnualFee", "tuition": "2000.00", "computer lab": nil},
			{"fee name": "Grade 2", "type": "MonthlyFee", "tuition": "150.50", "computer lab": "20.00"},
		},
		GeneratedAt: time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC),
	}
}

func TestCell_LooksUpLowerCasedHeader(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, "Grade 1", tbl.Cell(tbl.Rows[0], 0))
	assert.Equal(t, "2000.00", tbl.Cell(tbl.Rows[0], 2))
	assert.Nil(t, tbl.Cell(tbl.Rows[0], 3))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "Yes", FormatValue(true))
	assert.Equal(t, "No", FormatValue(false))
	assert.Equal(t, "2010-05-01", FormatValue(time.Date(2010, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01-02 10:30", FormatValue(time.Date(2026, 1, 2, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, "12.50", FormatValue(12.5))
	assert.Equal(t, "3185.00", FormatValue(decimal.NewFromInt(3185)))
	assert.Equal(t, "42", FormatValue(int64(42)))
	assert.Equal(t, "abc", FormatValue([]byte("abc")))
}

func TestNumericValue(t *testing.T) {
	n, ok := numericValue("2000.00")
	assert.True(t, ok)
	assert.Equal(t, 2000.0, n)

	_, ok = numericValue("0812345678")
	assert.False(t, ok, "phone numbers stay text")

	_, ok = numericValue("REG-01.2")
	assert.False(t, ok)

	n, ok = numericValue(int64(7))
	assert.True(t, ok)
	assert.Equal(t, 7.0, n)
}

func TestPDF_ProducesDocument(t *testing.T) {
	out, err := PDF(sampleTable())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	// many rows force page breaks
	tbl := sampleTable()
	for i := 0; i < 120; i++ {
		tbl.Rows = append(tbl.Rows, map[string]any{"fee name": "Row", "type": "AnnualFee", "tuition": "1.00"})
	}
	out, err = PDF(tbl)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestPDF_EmptyTable(t *testing.T) {
	tbl := sampleTable()
	tbl.Rows = nil
	out, err := PDF(tbl)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestXLSX_WritesHeadersAndRows(t *testing.T) {
	out, err := XLSX(sampleTable())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	title, _ := f.GetCellValue(sheetName, "A1")
	assert.Equal(t, "Fee Report", title)

	h, _ := f.GetCellValue(sheetName, "C4")
	assert.Equal(t, "Tuition", h)

	name, _ := f.GetCellValue(sheetName, "A5")
	assert.Equal(t, "Grade 1", name)

	lab, _ := f.GetCellValue(sheetName, "D6")
	assert.Equal(t, "20", lab)

	empty, _ := f.GetCellValue(sheetName, "D5")
	assert.Equal(t, "", empty)
}
