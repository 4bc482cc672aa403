package store

import (
	"context"
	"sync"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"golang.org/x/exp/slices"
)

// Budgets holds one budget per month.
type Budgets struct {
	mu      sync.RWMutex
	blobs   Blobs
	budgets map[string]models.Budget
}

// NewBudgets loads the budget collection from blobs.
//
// Stored collections may contain several entries for a month, the last one wins.
func NewBudgets(ctx context.Context, blobs Blobs) *Budgets {
	s := &Budgets{
		blobs:   blobs,
		budgets: make(map[string]models.Budget),
	}

	for _, b := range load[models.Budget](ctx, blobs, BudgetsKey) {
		if b.Month.IsZero() {
			continue
		}
		s.budgets[b.Month.String()] = b
	}

	return s
}

// List returns all budgets, most recent month first.
func (s *Budgets) List() []models.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.list()
}

func (s *Budgets) list() []models.Budget {
	budgets := make([]models.Budget, 0, len(s.budgets))
	for _, b := range s.budgets {
		budgets = append(budgets, b)
	}

	slices.SortFunc(budgets, func(a, b models.Budget) int {
		switch {
		case a.Month.After(b.Month):
			return -1
		case a.Month.Before(b.Month):
			return 1
		}
		return 0
	})

	return budgets
}

// Get returns the budget for a month.
func (s *Budgets) Get(month types.Month) (models.Budget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.budgets[month.String()]
	return b, ok
}

// Set creates or replaces the budget for the budget's month.
func (s *Budgets) Set(ctx context.Context, budget models.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.budgets[budget.Month.String()] = budget
	s.persist(ctx)
}

// Delete removes the budget for a month.
func (s *Budgets) Delete(ctx context.Context, month types.Month) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.budgets[month.String()]; !ok {
		return false
	}

	delete(s.budgets, month.String())
	s.persist(ctx)
	return true
}

// Replace swaps the whole collection.
func (s *Budgets) Replace(ctx context.Context, budgets []models.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.budgets = make(map[string]models.Budget, len(budgets))
	for _, b := range budgets {
		s.budgets[b.Month.String()] = b
	}
	s.persist(ctx)
}

// persist must be called with the write lock held.
func (s *Budgets) persist(ctx context.Context) {
	persist(ctx, s.blobs, BudgetsKey, s.list())
}
