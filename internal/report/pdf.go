package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin   = 15.0
	footerMargin = 20.0
	rowHeight    = 7.0
	font         = "Helvetica"
)

type column struct {
	title string
	width float64
	align string
}

var categoryColumns = []column{
	{"Category", 70, "L"},
	{"Total", 45, "R"},
	{"Count", 25, "C"},
	{"Average", 40, "R"},
}

var expenseColumns = []column{
	{"Date", 24, "L"},
	{"Payment", 26, "L"},
	{"Amount", 28, "R"},
	{"Description", 56, "L"},
	{"Category", 28, "L"},
	{"Paid by", 18, "L"},
}

// WritePDF renders the report as an A4 PDF document.
func WritePDF(w io.Writer, r Report, opts Options) error {
	return newPDF(r, opts).Output(w)
}

func newPDF(r Report, opts Options) *fpdf.Fpdf {
	m := opts.money()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, footerMargin)
	pdf.SetTitle(r.Title(), true)
	pdf.SetCreator("expense-tracker", false)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.AliasNbPages("")

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(font, "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(90, 10, generatedOn(r.GeneratedAt), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	writeHeader(pdf, r)

	writeCards(pdf, []card{
		{"Total Spent", m.Format(r.Summary.Total)},
		{"Transactions", strconv.Itoa(r.Summary.Count)},
		{"Average Expense", m.Format(r.Summary.Average)},
		{"Highest Daily", m.Format(r.Summary.MaxDaily)},
	})

	if r.Budget != nil {
		writeBudget(pdf, r, opts)
	}

	categories := make([][]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		categories = append(categories, []string{
			tr(string(c.Category)),
			m.Format(c.Total),
			strconv.Itoa(c.Count),
			m.Format(c.Average),
		})
	}
	writeSection(pdf, "Category Breakdown")
	writeTable(pdf, categoryColumns, categories)

	pdf.Ln(6)

	expenses := make([][]string, 0, len(r.Expenses))
	for _, e := range r.Expenses {
		expenses = append(expenses, []string{
			displayDate(e.Date),
			tr(optional(e.PaymentMethod)),
			m.Format(e.Amount),
			tr(e.Description),
			tr(string(e.Category)),
			tr(optional(e.PaidBy)),
		})
	}
	writeSection(pdf, fmt.Sprintf("All Expenses (%d)", len(r.Expenses)))
	writeTable(pdf, expenseColumns, expenses)

	return pdf
}

func writeHeader(pdf *fpdf.Fpdf, r Report) {
	pdf.SetTextColor(33, 37, 41)
	pdf.SetFont(font, "B", 20)
	pdf.CellFormat(0, 10, "Expense Report", "", 1, "L", false, 0, "")

	pdf.SetFont(font, "", 13)
	pdf.CellFormat(0, 8, r.Month.Name(), "", 1, "L", false, 0, "")

	pdf.SetFont(font, "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, generatedOn(r.GeneratedAt), "", 1, "L", false, 0, "")

	pageWidth, _ := pdf.GetPageSize()
	y := pdf.GetY() + 2
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
	pdf.SetY(y + 6)
}

type card struct {
	label string
	value string
}

func writeCards(pdf *fpdf.Fpdf, cards []card) {
	const gap, height = 4.0, 20.0

	pageWidth, _ := pdf.GetPageSize()
	width := (pageWidth - 2*pageMargin - gap*float64(len(cards)-1)) / float64(len(cards))
	y := pdf.GetY()

	for i, c := range cards {
		x := pageMargin + float64(i)*(width+gap)

		pdf.SetFillColor(240, 244, 248)
		pdf.Rect(x, y, width, height, "F")

		pdf.SetXY(x+2, y+3)
		pdf.SetFont(font, "", 8)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(width-4, 5, c.label, "", 0, "L", false, 0, "")

		pdf.SetXY(x+2, y+10)
		pdf.SetFont(font, "B", 11)
		pdf.SetTextColor(33, 37, 41)
		pdf.CellFormat(width-4, 7, c.value, "", 0, "L", false, 0, "")
	}

	pdf.SetXY(pageMargin, y+height+6)
}

func writeBudget(pdf *fpdf.Fpdf, r Report, opts Options) {
	pdf.SetFont(font, "", 10)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 6, budgetLine(*r.Budget, opts.money()), "", 1, "L", false, 0, "")
	pdf.Ln(4)
}

func writeSection(pdf *fpdf.Fpdf, title string) {
	// Keep the title together with the table header and the first row
	if needsBreak(pdf, 8+2*rowHeight) {
		pdf.AddPage()
	}

	pdf.SetFont(font, "B", 12)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func writeTable(pdf *fpdf.Fpdf, columns []column, rows [][]string) {
	writeTableHeader(pdf, columns)

	pdf.SetFont(font, "", 9)
	for i, row := range rows {
		if needsBreak(pdf, rowHeight) {
			pdf.AddPage()
			writeTableHeader(pdf, columns)
			pdf.SetFont(font, "", 9)
		}

		pdf.SetTextColor(33, 37, 41)
		pdf.SetFillColor(247, 249, 251)
		for j, c := range columns {
			pdf.CellFormat(c.width, rowHeight, fit(pdf, row[j], c.width-2), "B", 0, c.align, i%2 == 1, 0, "")
		}
		pdf.Ln(rowHeight)
	}
}

func writeTableHeader(pdf *fpdf.Fpdf, columns []column) {
	pdf.SetFont(font, "B", 9)
	pdf.SetFillColor(52, 73, 94)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(220, 220, 220)

	for _, c := range columns {
		pdf.CellFormat(c.width, rowHeight, c.title, "", 0, c.align, true, 0, "")
	}
	pdf.Ln(rowHeight)
}

// needsBreak reports whether content of height h would run into the footer.
func needsBreak(pdf *fpdf.Fpdf, h float64) bool {
	_, pageHeight := pdf.GetPageSize()
	return pdf.GetY()+h > pageHeight-footerMargin
}

// fit shortens s with an ellipsis until it fits into width.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if candidate := string(runes) + "..."; pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}

	return ""
}
