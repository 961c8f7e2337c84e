package main

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"
)

// pdfMoney formats money for PDF output. Standard PDF fonts are Latin-1, so
// non-finite values are spelled out instead of using the ∞ glyph.
func pdfMoney(amount float64) string {
	if math.IsInf(amount, 0) || math.IsNaN(amount) {
		return "n/a"
	}
	return FormatMoney(amount)
}

// buildPDFReport lays out the one-page comparison report
func buildPDFReport(input CalculationInput, jurisdiction Jurisdiction, result CalculationResult) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("HSA Cost Comparison", false)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "HSA vs Personal Payment Cost Comparison", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d tax year - generated %s", TaxYear, time.Now().Format("2 January 2006")),
		"", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetTextColor(0, 0, 0)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(110, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, value, "", 1, "R", false, 0, "")
	}
	section := func(title string) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetFillColor(29, 53, 87)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(0, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	section("Scenario")
	row("Jurisdiction", fmt.Sprintf("%s (%s)", jurisdiction.Name, jurisdiction.Code))
	row("Annual taxable income", pdfMoney(input.Income))
	row("Annual eligible expenses", pdfMoney(input.Expense))
	row("HSA admin fee on claims", FormatPercent(input.FeeRate))
	row("HSA flat annual fee", pdfMoney(input.FixedFee))

	section("Marginal Tax Rates")
	row("Federal", FormatPercent(result.FederalMarginalRate))
	row("Provincial", FormatPercent(result.ProvincialMarginalRate))
	row("Combined", FormatPercent(result.CombinedMarginalRate))

	section("Cost Comparison")
	row("Admin fee on claims", pdfMoney(result.FeeAmount))
	row("Total cost through HSA", pdfMoney(result.TotalCostThroughHSA))
	row("Pre-tax income needed to pay personally", pdfMoney(result.RequiredPretaxIncome))
	row("Break-even expense level", pdfMoney(result.BreakEvenExpense))

	// Verdict banner
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	if result.Savings >= 0 {
		pdf.SetFillColor(227, 249, 229)
		pdf.SetTextColor(32, 114, 39)
		pdf.CellFormat(0, 12, fmt.Sprintf("The HSA saves %s per year", pdfMoney(result.Savings)),
			"", 1, "C", true, 0, "")
	} else {
		pdf.SetFillColor(255, 227, 227)
		pdf.SetTextColor(166, 27, 27)
		pdf.CellFormat(0, 12, fmt.Sprintf("The HSA costs %s per year more", pdfMoney(-result.Savings)),
			"", 1, "C", true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Rates are statutory bracket rates only; basic personal amounts, credits, "+
		"surtaxes and health premiums are not modelled. Figures are estimates, not tax advice.", "", "L", false)

	return pdf
}

// WritePDFReport writes the comparison report to a file
func WritePDFReport(filename string, input CalculationInput, jurisdiction Jurisdiction, result CalculationResult) error {
	pdf := buildPDFReport(input, jurisdiction, result)
	return pdf.OutputFileAndClose(filename)
}

// PDFReportBytes renders the comparison report in memory, for the web API
func PDFReportBytes(input CalculationInput, jurisdiction Jurisdiction, result CalculationResult) ([]byte, error) {
	pdf := buildPDFReport(input, jurisdiction, result)
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
