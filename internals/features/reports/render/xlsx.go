package render

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

const sheetName = "report"

// XLSX writes the title, a bold header row and one row per record. Numeric values
// are written as numbers so they can be summed in the sheet.
func XLSX(t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	_ = f.SetCellValue(sheetName, "A1", t.Title)
	_ = f.SetCellValue(sheetName, "A2", "Generated: "+t.GeneratedAt.Format("2006-01-02 15:04"))

	const headerRow = 4
	for i, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, bold)

		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(sheetName, col, col, 18)
	}

	for r, row := range t.Rows {
		for i := range t.Headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, headerRow+1+r)
			v := t.Cell(row, i)
			if n, ok := numericValue(v); ok {
				_ = f.SetCellValue(sheetName, cell, n)
				continue
			}
			_ = f.SetCellValue(sheetName, cell, FormatValue(v))
		}
	}

	_ = f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: "A5",
		ActivePane:  "bottomLeft",
	})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
