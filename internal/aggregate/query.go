package aggregate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// AllCategories matches every category in a Filter.
const AllCategories = "All"

// Filter selects expenses for listing. Zero values match everything.
type Filter struct {
	Month    types.Month
	Category models.Category
	Search   string // Case insensitive. Terms containing * are glob patterns, others substrings of the description.
}

// SortOrder is the order expense lists are returned in.
type SortOrder string

const (
	SortByDate        SortOrder = "date"        // Newest first
	SortByAmount      SortOrder = "amount"      // Largest first
	SortByCategory    SortOrder = "category"    // Alphabetical
	SortByDescription SortOrder = "description" // Alphabetical, case insensitive
)

var SortOrders = []SortOrder{SortByDate, SortByAmount, SortByCategory, SortByDescription}

var ErrInvalidSortOrder = errors.New("the sort order is not valid")

// ParseSortOrder parses a sort order, defaulting to SortByDate for "".
func ParseSortOrder(s string) (SortOrder, error) {
	if s == "" {
		return SortByDate, nil
	}

	order := SortOrder(strings.ToLower(s))
	if !slices.Contains(SortOrders, order) {
		return "", fmt.Errorf("%w: %q, must be one of date, amount, category, description", ErrInvalidSortOrder, s)
	}

	return order, nil
}

// Query returns the expenses matching the filter, in input order.
func Query(expenses []models.Expense, f Filter) []models.Expense {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	allCategories := f.Category == "" || strings.EqualFold(string(f.Category), AllCategories)

	filtered := make([]models.Expense, 0)
	for _, e := range expenses {
		if !f.Month.IsZero() && !f.Month.Contains(e.Date) {
			continue
		}

		if !allCategories && e.Category != f.Category {
			continue
		}

		if search != "" && !matches(strings.ToLower(e.Description), search) {
			continue
		}

		filtered = append(filtered, e)
	}

	return filtered
}

func matches(description, search string) bool {
	if strings.Contains(search, glob.GLOB) {
		return glob.Glob(search, description)
	}

	return strings.Contains(description, search)
}

// Sort returns a sorted copy of expenses. Ties keep their input order.
func Sort(expenses []models.Expense, order SortOrder) []models.Expense {
	sorted := slices.Clone(expenses)
	if sorted == nil {
		sorted = make([]models.Expense, 0)
	}

	var cmp func(a, b models.Expense) int
	switch order {
	case SortByAmount:
		cmp = func(a, b models.Expense) int { return b.Amount.Cmp(a.Amount) }
	case SortByCategory:
		cmp = func(a, b models.Expense) int { return strings.Compare(string(a.Category), string(b.Category)) }
	case SortByDescription:
		cmp = func(a, b models.Expense) int {
			return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
		}
	default:
		cmp = func(a, b models.Expense) int { return compareDates(b.Date, a.Date) }
	}

	slices.SortStableFunc(sorted, cmp)
	return sorted
}
