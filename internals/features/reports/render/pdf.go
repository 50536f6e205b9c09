package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin    = 10.0
	pdfRowHeight = 7.0
)

// PDF renders the table on A4, landscape when there are more than six columns.
// The header row is repeated on every page.
func PDF(t Table) ([]byte, error) {
	orientation := "P"
	if len(t.Headers) > 6 {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	colW := (pageW - 2*pdfMargin) / float64(max(len(t.Headers), 1))

	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	header := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range t.Headers {
			pdf.CellFormat(colW, pdfRowHeight, tr(fit(pdf, h, colW)), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, tr(t.Title))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s   Rows: %d", t.GeneratedAt.Format("2006-01-02 15:04"), len(t.Rows)))
	pdf.Ln(8)
	header()

	for _, row := range t.Rows {
		if pdf.GetY()+pdfRowHeight > pageH-2*pdfMargin {
			pdf.AddPage()
			header()
		}
		for i := range t.Headers {
			v := t.Cell(row, i)
			align := "L"
			if _, ok := numericValue(v); ok {
				align = "R"
			}
			pdf.CellFormat(colW, pdfRowHeight, tr(fit(pdf, FormatValue(v), colW)), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(t.Rows) == 0 {
		pdf.CellFormat(colW*float64(len(t.Headers)), pdfRowHeight, "No data", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fit cuts s so it fits a cell of width w, marking the cut with "..".
func fit(pdf *gofpdf.Fpdf, s string, w float64) string {
	limit := w - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"..") > limit {
		r = r[:len(r)-1]
	}
	return string(r) + ".."
}
