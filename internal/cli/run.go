package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/database"
	"github.com/expense-tracker/backend/internal/importer/parser/csvfile"
	"github.com/expense-tracker/backend/internal/importer/parser/workbook"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/money"
	"github.com/expense-tracker/backend/internal/report"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/rs/zerolog/log"
)

var ErrImportFormat = errors.New("only .csv and .xlsx files can be imported")

// Options select what a run does.
type Options struct {
	Month    types.Month // Zero means the month of Now
	Import   string      // CSV or XLSX file to add to the store first
	PDF      bool
	XLSX     bool
	Expenses bool // List every expense in the table output
	Color    bool
	Now      time.Time
}

// Run prints the report for a month and writes the requested files.
func Run(ctx context.Context, s Settings, o Options, stdout io.Writer) error {
	db, err := database.Open(s.StorageBackend, s.DataDir)
	if err != nil {
		return err
	}
	defer db.Close()

	expenses := store.NewExpenses(ctx, db)
	budgets := store.NewBudgets(ctx, db)

	if o.Import != "" {
		added, skipped, err := importFile(ctx, expenses, o.Import)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Imported %d expenses, skipped %d already known\n\n", added, skipped)
	}

	month := o.Month
	if month.IsZero() {
		month = types.MonthOf(o.Now)
	}

	r, err := report.Build(expenses.List(), month, o.Now)
	if err != nil {
		return err
	}

	var monthBudget *models.Budget
	if b, ok := budgets.Get(month); ok {
		monthBudget = &b
	}
	r = r.WithBudget(monthBudget)

	opts := report.Options{Money: money.New(s.CurrencyMarker)}
	report.WriteTable(stdout, r, report.TableOptions{Options: opts, Expenses: o.Expenses, Color: o.Color})

	writers := []struct {
		enabled bool
		ext     string
		render  func(io.Writer, report.Report, report.Options) error
	}{
		{o.PDF, "pdf", report.WritePDF},
		{o.XLSX, "xlsx", report.WriteXLSX},
	}

	for _, w := range writers {
		if !w.enabled {
			continue
		}

		path := filepath.Join(s.OutDir, report.Filename(month, w.ext))
		if err := writeFile(path, func(f io.Writer) error { return w.render(f, r, opts) }); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Wrote %s\n", path)
	}

	return nil
}

func importFile(ctx context.Context, expenses *store.Expenses, path string) (added, skipped int, err error) {
	var parse func(io.Reader) ([]models.Expense, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		parse = csvfile.Parse
	case ".xlsx":
		parse = workbook.Parse
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrImportFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	parsed, err := parse(f)
	if err != nil {
		return 0, 0, err
	}

	for _, e := range parsed {
		if !expenses.AddIfAbsent(ctx, e) {
			skipped++
			continue
		}
		added++
	}

	log.Debug().Str("file", path).Int("added", added).Int("skipped", skipped).Msg("import")
	return added, skipped, nil
}

// writeFile creates path, removing it again when rendering fails.
func writeFile(path string, render func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	return f.Close()
}
