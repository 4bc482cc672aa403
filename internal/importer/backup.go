package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/expense-tracker/backend/internal/models"
)

var ErrBackupFormat = errors.New("the file is not a backup of this application")

// Backup is the content of both collections.
type Backup struct {
	Expenses []models.Expense `json:"expenses"`
	Budgets  []models.Budget  `json:"budgets"`
}

// export is the shape written by the export endpoint.
type export struct {
	Data *Backup `json:"data"`
}

// ParseBackup reads a backup. Both the export document and a bare JSON
// array of expenses are accepted. Every entry is validated.
func ParseBackup(r io.Reader) (Backup, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Backup{}, err
	}

	var b Backup
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		if err := json.Unmarshal(trimmed, &b.Expenses); err != nil {
			return Backup{}, fmt.Errorf("%w: %s", ErrBackupFormat, err)
		}
	case bytes.HasPrefix(trimmed, []byte("{")):
		var e export
		if err := json.Unmarshal(trimmed, &e); err != nil {
			return Backup{}, fmt.Errorf("%w: %s", ErrBackupFormat, err)
		}
		if e.Data == nil {
			return Backup{}, ErrBackupFormat
		}
		b = *e.Data
	default:
		return Backup{}, ErrBackupFormat
	}

	if b.Expenses == nil {
		b.Expenses = make([]models.Expense, 0)
	}

	if b.Budgets == nil {
		b.Budgets = make([]models.Budget, 0)
	}

	for i := range b.Expenses {
		if b.Expenses[i].ID == "" {
			b.Expenses[i].ID = models.NewID()
		}

		if err := b.Expenses[i].Validate(); err != nil {
			return Backup{}, fmt.Errorf("expense %d: %w", i+1, err)
		}
	}

	for i, budget := range b.Budgets {
		if err := budget.Validate(); err != nil {
			return Backup{}, fmt.Errorf("budget %d: %w", i+1, err)
		}
	}

	return b, nil
}
