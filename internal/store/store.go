// Package store holds the expense and budget collections.
//
// Each collection lives in memory and is written as a whole to a blob
// backend after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// Keys the collections are persisted under.
const (
	ExpensesKey = "expenses"
	BudgetsKey  = "budgets"
)

// Blobs is where the stores persist their collections.
type Blobs interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// load reads a collection. Missing or unreadable data yields an empty
// collection, errors are only logged.
func load[T any](ctx context.Context, blobs Blobs, key string) []T {
	items := make([]T, 0)

	data, err := blobs.Get(ctx, key)
	if errors.Is(err, models.ErrResourceNotFound) {
		log.Debug().Str("key", key).Msg("no stored collection, starting empty")
		return items
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("could not read stored collection, starting empty")
		return items
	}

	if err := json.Unmarshal(data, &items); err != nil {
		log.Error().Err(err).Str("key", key).Msg("could not parse stored collection, starting empty")
		return make([]T, 0)
	}

	return items
}

// persist writes a collection. Failures are logged, the caller keeps its
// in-memory state.
func persist(ctx context.Context, blobs Blobs, key string, items any) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("could not serialize collection")
		return
	}

	if err := blobs.Put(ctx, key, data); err != nil {
		log.Error().Err(err).Str("key", key).Msg("could not persist collection")
	}
}
