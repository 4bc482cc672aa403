package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/expense-tracker/backend/internal/budget"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TableOptions control the plain text rendering.
type TableOptions struct {
	Options
	Expenses bool // Also list every expense
	Color    bool // Color the budget status
}

// WriteTable renders the report as text tables for terminals.
func WriteTable(w io.Writer, r Report, opts TableOptions) {
	m := opts.money()

	fmt.Fprintf(w, "%s\n%s\n\n", r.Title(), generatedOn(r.GeneratedAt))

	summary := newTable(w)
	summary.AppendRows([]table.Row{
		{"Total spent", m.Format(r.Summary.Total)},
		{"Transactions", r.Summary.Count},
		{"Average expense", m.Format(r.Summary.Average)},
		{"Highest daily", m.Format(r.Summary.MaxDaily)},
		{"Lowest daily", m.Format(r.Summary.MinDaily)},
		{"Average daily", m.Format(r.Summary.AverageDaily)},
	})
	summary.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	summary.Render()

	if r.Budget != nil {
		line := budgetLine(*r.Budget, m)
		if opts.Color {
			line = statusColor(r.Budget.Status).Sprint(line)
		}
		fmt.Fprintf(w, "\n%s\n", line)
	}

	fmt.Fprintln(w)
	categories := newTable(w)
	categories.AppendHeader(table.Row{"Category", "Total", "Count", "Average", "Share"})
	for _, c := range r.Categories {
		categories.AppendRow(table.Row{c.Category, m.Format(c.Total), c.Count, m.Format(c.Average), c.Share.StringFixed(2) + "%"})
	}
	categories.AppendFooter(table.Row{"Total", m.Format(r.Summary.Total), r.Summary.Count, "", ""})
	categories.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	categories.Render()

	if !opts.Expenses {
		return
	}

	fmt.Fprintln(w)
	expenses := newTable(w)
	expenses.AppendHeader(table.Row{"Date", "Payment", "Amount", "Description", "Category", "Paid by"})
	for _, e := range r.Expenses {
		expenses.AppendRow(table.Row{e.Date.String(), optional(e.PaymentMethod), m.Format(e.Amount), e.Description, e.Category, optional(e.PaidBy)})
	}
	expenses.AppendFooter(table.Row{"", strconv.Itoa(len(r.Expenses)) + " expenses", m.Format(r.Summary.Total), "", "", ""})
	expenses.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, WidthMax: 40},
	})
	expenses.Render()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	return t
}

func statusColor(s budget.Status) text.Colors {
	switch s {
	case budget.StatusSafe:
		return text.Colors{text.FgGreen}
	case budget.StatusWarning:
		return text.Colors{text.FgYellow}
	case budget.StatusDanger:
		return text.Colors{text.FgRed, text.Bold}
	default:
		return text.Colors{}
	}
}
