// Package report renders monthly expense reports as PDF, XLSX and text tables.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/expense-tracker/backend/internal/aggregate"
	"github.com/expense-tracker/backend/internal/budget"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/money"
	"github.com/expense-tracker/backend/internal/types"
)

var ErrNothingToExport = errors.New("there are no expenses to export")

// Report is everything a rendered report shows.
type Report struct {
	Month       types.Month
	GeneratedAt time.Time
	Summary     aggregate.PeriodSummary
	Categories  []aggregate.CategorySummary
	Expenses    []models.Expense // Newest first
	Budget      *budget.Evaluation
}

// Options control rendering.
type Options struct {
	Money money.Formatter
}

// Build collects the report for month. It fails with ErrNothingToExport
// when there are no expenses in the month.
func Build(expenses []models.Expense, month types.Month, now time.Time) (Report, error) {
	filtered := aggregate.FilterByMonth(expenses, month)
	if len(filtered) == 0 {
		return Report{}, fmt.Errorf("%w for %s", ErrNothingToExport, month)
	}

	return Report{
		Month:       month,
		GeneratedAt: now,
		Summary:     aggregate.Summarize(filtered),
		Categories:  aggregate.ByCategory(filtered),
		Expenses:    aggregate.Sort(filtered, aggregate.SortByDate),
	}, nil
}

// WithBudget adds the budget evaluation for the report's month. A nil budget
// is shown as "no budget set".
func (r Report) WithBudget(b *models.Budget) Report {
	e := budget.Evaluate(r.Summary.Total, b)
	r.Budget = &e
	return r
}

// Title is the report heading, e.g. "Expense Report - March 2024".
func (r Report) Title() string {
	return "Expense Report - " + r.Month.Name()
}

// Filename returns the download name for a report, e.g. Expense_Report_March_2024.pdf.
func Filename(month types.Month, ext string) string {
	t := time.Time(month)
	return fmt.Sprintf("Expense_Report_%s_%d.%s", t.Month(), t.Year(), ext)
}

func (o Options) money() money.Formatter {
	if o.Money.Marker == "" {
		return money.New("")
	}
	return o.Money
}

func optional[T ~string](v *T) string {
	if v == nil {
		return "-"
	}
	return string(*v)
}

// generatedOn formats the generation timestamp shown on every page.
func generatedOn(t time.Time) string {
	return "Generated on " + t.Format("02 Jan 2006, 15:04")
}

func displayDate(d types.Date) string {
	return d.Time().Format("02 Jan 2006")
}
