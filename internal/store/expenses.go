package store

import (
	"context"
	"sync"

	"github.com/expense-tracker/backend/internal/models"
	"golang.org/x/exp/slices"
)

// Expenses is the ordered expense collection.
type Expenses struct {
	mu       sync.RWMutex
	blobs    Blobs
	expenses []models.Expense
}

// NewExpenses loads the expense collection from blobs.
func NewExpenses(ctx context.Context, blobs Blobs) *Expenses {
	expenses := load[models.Expense](ctx, blobs, ExpensesKey)
	for i := range expenses {
		expenses[i].Normalize()
	}

	return &Expenses{
		blobs:    blobs,
		expenses: expenses,
	}
}

// List returns a copy of all expenses in insertion order.
func (s *Expenses) List() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.expenses)
}

// Get returns the expense with the given ID.
func (s *Expenses) Get(id string) (models.Expense, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(id)
	if i < 0 {
		return models.Expense{}, false
	}

	return s.expenses[i].Copy(), true
}

// Len returns the number of expenses.
func (s *Expenses) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.expenses)
}

// Add appends an expense.
func (s *Expenses) Add(ctx context.Context, expense models.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = append(s.expenses, expense)
	s.persist(ctx)
}

// AddIfAbsent appends the expense unless one with the same ID exists.
// It reports whether the expense was added.
func (s *Expenses) AddIfAbsent(ctx context.Context, expense models.Expense) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(expense.ID) >= 0 {
		return false
	}

	s.expenses = append(s.expenses, expense)
	s.persist(ctx)
	return true
}

// Update replaces the expense with the same ID. It reports false and
// changes nothing if there is no such expense.
func (s *Expenses) Update(ctx context.Context, expense models.Expense) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(expense.ID)
	if i < 0 {
		return false
	}

	s.expenses[i] = expense
	s.persist(ctx)
	return true
}

// Delete removes the expense with the given ID.
func (s *Expenses) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false
	}

	s.expenses = slices.Delete(s.expenses, i, i+1)
	s.persist(ctx)
	return true
}

// Clear removes all expenses.
func (s *Expenses) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = make([]models.Expense, 0)
	s.persist(ctx)
}

// Replace swaps the whole collection.
func (s *Expenses) Replace(ctx context.Context, expenses []models.Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = slices.Clone(expenses)
	if s.expenses == nil {
		s.expenses = make([]models.Expense, 0)
	}
	s.persist(ctx)
}

func (s *Expenses) index(id string) int {
	return slices.IndexFunc(s.expenses, func(e models.Expense) bool {
		return e.ID == id
	})
}

// persist must be called with the write lock held.
func (s *Expenses) persist(ctx context.Context) {
	persist(ctx, s.blobs, ExpensesKey, s.expenses)
}
