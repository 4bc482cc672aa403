// Package workbook parses expenses from Excel workbooks.
package workbook

import (
	"fmt"
	"io"

	"github.com/expense-tracker/backend/internal/importer"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
)

// Sheet is read when the workbook has it, the first sheet otherwise.
// The XLSX reports write their expenses there.
const Sheet = "Expenses"

// Parse reads expenses from an XLSX workbook with a header row.
func Parse(r io.Reader) ([]models.Expense, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open the workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if slices.Contains(f.GetSheetList(), Sheet) {
		sheet = Sheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []models.Expense{}, nil
	}

	columns, err := importer.NewColumns(rows[0])
	if err != nil {
		return nil, fmt.Errorf("error in row 1 of sheet %s: %w", sheet, err)
	}

	expenses := make([]models.Expense, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if empty(row) {
			continue
		}

		expense, err := columns.Expense(row)
		if err != nil {
			return nil, fmt.Errorf("error in row %d of sheet %s: %w", i+2, sheet, err)
		}

		expenses = append(expenses, expense)
	}

	return importer.Dedupe(expenses), nil
}

func empty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
