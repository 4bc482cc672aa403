// Package importer reads expenses from spreadsheets and backups.
//
// Spreadsheet rows are identified by a hash of their content, so importing
// the same file twice yields the same IDs and duplicates can be skipped.
package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/expense-tracker/backend/internal/importer/helpers"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingColumn = errors.New("the header is missing a required column")
	ErrAmount        = errors.New("the amount could not be parsed to a decimal")
	ErrDate          = errors.New("the date could not be parsed, use YYYY-MM-DD or DD Mon YYYY")
)

// Column names are matched case insensitive, ignoring spaces.
const (
	columnDate          = "date"
	columnDescription   = "description"
	columnAmount        = "amount"
	columnCategory      = "category"
	columnPaidBy        = "paidby"
	columnPaymentMethod = "paymentmethod"
)

var aliases = map[string]string{
	"payment": columnPaymentMethod,
	"payer":   columnPaidBy,
	"note":    columnDescription,
}

var required = []string{columnDate, columnDescription, columnAmount, columnCategory}

// absent marks an unset optional value, as written by the report exporters.
const absent = "-"

// Columns maps column names to their index in a record.
type Columns map[string]int

// NewColumns reads the header row.
func NewColumns(header []string) (Columns, error) {
	c := make(Columns)
	for i, name := range header {
		key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
		if alias, ok := aliases[key]; ok {
			key = alias
		}
		c[key] = i
	}

	for _, name := range required {
		if _, ok := c[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	return c, nil
}

func (c Columns) value(record []string, column string) string {
	i, ok := c[column]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// Expense parses one record. The expense is validated.
func (c Columns) Expense(record []string) (models.Expense, error) {
	date, err := parseDate(c.value(record, columnDate))
	if err != nil {
		return models.Expense{}, err
	}

	amount, err := parseAmount(c.value(record, columnAmount))
	if err != nil {
		return models.Expense{}, err
	}

	e := models.Expense{
		ID:          helpers.Sha256String(strings.Join(record, ",")),
		Amount:      amount,
		Description: c.value(record, columnDescription),
		Category:    models.Category(c.value(record, columnCategory)),
		Date:        date,
	}

	if v := c.value(record, columnPaidBy); v != "" && v != absent {
		p := models.PaidBy(v)
		e.PaidBy = &p
	}

	if v := c.value(record, columnPaymentMethod); v != "" && v != absent {
		p := models.PaymentMethod(v)
		e.PaymentMethod = &p
	}

	if err := e.Validate(); err != nil {
		return models.Expense{}, err
	}

	return e, nil
}

// Dedupe gives expenses that share an ID a numbered suffix. Identical rows
// in one file are separate expenses, e.g. two coffees on the same day.
func Dedupe(expenses []models.Expense) []models.Expense {
	seen := make(map[string]int, len(expenses))
	for i, e := range expenses {
		seen[e.ID]++
		if n := seen[e.ID]; n > 1 {
			expenses[i].ID = fmt.Sprintf("%s-%d", e.ID, n)
		}
	}

	return expenses
}

// parseAmount accepts amounts with a currency marker and digit grouping,
// e.g. "Rs. 1,23,456.78".
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimLeftFunc(s, func(r rune) bool { return !unicode.IsDigit(r) && r != '-' })
	s = strings.NewReplacer(",", "", " ", "").Replace(s)

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmount, s)
	}

	return amount, nil
}

func parseDate(s string) (types.Date, error) {
	if d, err := types.ParseDate(s); err == nil {
		return d, nil
	}

	for _, layout := range []string{"02 Jan 2006", "2 Jan 2006", "02-Jan-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return types.DateOf(t), nil
		}
	}

	return types.Date{}, fmt.Errorf("%w: %q", ErrDate, s)
}
