package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary    = "Summary"
	sheetCategories = "Categories"
	sheetExpenses   = "Expenses"

	// Built-in number format "#,##0.00"
	amountFormat = 4
)

// WriteXLSX renders the report as a workbook with one sheet for the summary,
// the category breakdown and the expenses each.
func WriteXLSX(w io.Writer, r Report, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetSummary); err != nil {
		return err
	}

	for _, sheet := range []string{sheetCategories, sheetExpenses} {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	amount, err := f.NewStyle(&excelize.Style{NumFmt: amountFormat})
	if err != nil {
		return err
	}

	s := sheetWriter{file: f, bold: bold, amount: amount}
	s.summary(r, opts)
	s.categories(r)
	s.expenses(r)
	if s.err != nil {
		return s.err
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

// sheetWriter keeps the first error so that the cell writes stay readable.
type sheetWriter struct {
	file   *excelize.File
	bold   int
	amount int
	err    error
}

func (s *sheetWriter) row(sheet string, row int, values []any) {
	if s.err != nil {
		return
	}

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		s.err = err
		return
	}

	s.err = s.file.SetSheetRow(sheet, cell, &values)
}

func (s *sheetWriter) style(sheet, from, to string, style int) {
	if s.err != nil {
		return
	}
	s.err = s.file.SetCellStyle(sheet, from, to, style)
}

func (s *sheetWriter) width(sheet, from, to string, width float64) {
	if s.err != nil {
		return
	}
	s.err = s.file.SetColWidth(sheet, from, to, width)
}

func (s *sheetWriter) summary(r Report, opts Options) {
	m := opts.money()

	s.row(sheetSummary, 1, []any{r.Title()})
	s.row(sheetSummary, 2, []any{generatedOn(r.GeneratedAt)})
	s.row(sheetSummary, 4, []any{"Total spent", r.Summary.Total.InexactFloat64()})
	s.row(sheetSummary, 5, []any{"Transactions", r.Summary.Count})
	s.row(sheetSummary, 6, []any{"Average expense", r.Summary.Average.InexactFloat64()})
	s.row(sheetSummary, 7, []any{"Highest daily", r.Summary.MaxDaily.InexactFloat64()})
	s.row(sheetSummary, 8, []any{"Lowest daily", r.Summary.MinDaily.InexactFloat64()})
	s.row(sheetSummary, 9, []any{"Average daily", r.Summary.AverageDaily.InexactFloat64()})

	if r.Budget != nil {
		s.row(sheetSummary, 11, []any{budgetLine(*r.Budget, m)})
	}

	s.style(sheetSummary, "A1", "A1", s.bold)
	s.style(sheetSummary, "B4", "B4", s.amount)
	s.style(sheetSummary, "B6", "B9", s.amount)
	s.width(sheetSummary, "A", "A", 20)
	s.width(sheetSummary, "B", "B", 16)
}

func (s *sheetWriter) categories(r Report) {
	s.row(sheetCategories, 1, []any{"Category", "Total", "Count", "Average", "Share %"})
	for i, c := range r.Categories {
		s.row(sheetCategories, i+2, []any{
			string(c.Category),
			c.Total.InexactFloat64(),
			c.Count,
			c.Average.InexactFloat64(),
			c.Share.InexactFloat64(),
		})
	}

	last := len(r.Categories) + 1
	s.style(sheetCategories, "A1", "E1", s.bold)
	if last > 1 {
		s.style(sheetCategories, "B2", cellName(2, last), s.amount)
		s.style(sheetCategories, "D2", cellName(5, last), s.amount)
	}
	s.width(sheetCategories, "A", "A", 20)
	s.width(sheetCategories, "B", "E", 14)
}

func (s *sheetWriter) expenses(r Report) {
	s.row(sheetExpenses, 1, []any{"Date", "Payment method", "Amount", "Description", "Category", "Paid by"})
	for i, e := range r.Expenses {
		s.row(sheetExpenses, i+2, []any{
			e.Date.String(),
			optional(e.PaymentMethod),
			e.Amount.InexactFloat64(),
			e.Description,
			string(e.Category),
			optional(e.PaidBy),
		})
	}

	last := len(r.Expenses) + 1
	s.style(sheetExpenses, "A1", "F1", s.bold)
	if last > 1 {
		s.style(sheetExpenses, "C2", cellName(3, last), s.amount)
	}
	s.width(sheetExpenses, "A", "C", 14)
	s.width(sheetExpenses, "D", "D", 40)
	s.width(sheetExpenses, "E", "F", 18)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
