// Package csvfile parses expenses from CSV files.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/expense-tracker/backend/internal/importer"
	"github.com/expense-tracker/backend/internal/models"
)

// Parse reads expenses from a CSV file with a header row.
func Parse(f io.Reader) ([]models.Expense, error) {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []models.Expense{}, nil
	}
	if err != nil {
		return []models.Expense{}, fmt.Errorf("could not read the header: %w", err)
	}

	columns, err := importer.NewColumns(header)
	if err != nil {
		return csvReadError(reader, err)
	}

	expenses := make([]models.Expense, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ParseError already contains the line
			return []models.Expense{}, fmt.Errorf("could not read line in CSV: %w", err)
		}

		expense, err := columns.Expense(record)
		if err != nil {
			return csvReadError(reader, err)
		}

		expenses = append(expenses, expense)
	}

	return importer.Dedupe(expenses), nil
}

// csvReadError returns the error with the line of the last record read.
func csvReadError(r *csv.Reader, err error) ([]models.Expense, error) {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(0)

	return []models.Expense{}, fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
