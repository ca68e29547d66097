// services/statement_pdf.go
package services

import (
	"bytes"

	"smartudhar-backend/ledger"

	"github.com/go-pdf/fpdf"
)

// Column x-positions in mm, matching the app's original layout.
const (
	colDate    = 14
	colType    = 50
	colAmount  = 90
	colBalance = 130
	rowStep    = 8
	pageBottom = 280
)

// RenderStatementPDF lays a statement out as an A4 PDF and returns the
// document bytes. Core PDF fonts have no rupee glyph, so amounts are
// prefixed "Rs." here.
func RenderStatementPDF(st ledger.Statement) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(colDate, 20, st.Title)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(colDate, 30, "Customer: "+st.CustomerName)
	pdf.Text(colDate, 38, "Generated: "+st.GeneratedOn)

	y := float64(50)

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Text(colDate, y, "Date")
		pdf.Text(colType, y, "Type")
		pdf.Text(colAmount, y, "Amount")
		pdf.Text(colBalance, y, "Balance")
		pdf.SetFont("Helvetica", "", 11)
		y += rowStep
	}
	writeHeader()

	for _, line := range st.Lines {
		if y > pageBottom {
			pdf.AddPage()
			y = 20
			writeHeader()
		}
		pdf.Text(colDate, y, line.Date)
		pdf.Text(colType, y, line.Label)
		pdf.Text(colAmount, y, "Rs. "+line.Amount.StringFixed(2))
		pdf.Text(colBalance, y, "Rs. "+line.Balance.StringFixed(2))
		y += rowStep
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(colDate, y+10, "Final Balance: Rs. "+st.Total.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
