package store_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/expense-tracker/backend/internal/database"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var errDiskFull = errors.New("disk full")

// brokenBlobs fails every read and write.
type brokenBlobs struct{}

func (brokenBlobs) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, errDiskFull
}

func (brokenBlobs) Put(_ context.Context, _ string, _ []byte) error {
	return errDiskFull
}

// captureLog redirects the global logger into a buffer for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func expense(id string, amount int64, category models.Category, date string) models.Expense {
	d, _ := types.ParseDate(date)
	return models.Expense{
		ID:          id,
		Amount:      decimal.NewFromInt(amount),
		Description: "test " + id,
		Category:    category,
		Date:        d,
	}
}

func memoryWith(t *testing.T, key, value string) *database.Memory {
	m := database.NewMemory()
	assert.Nil(t, m.Put(context.Background(), key, []byte(value)))
	return m
}

func timeMonth(m int) time.Month {
	return time.Month(m)
}
