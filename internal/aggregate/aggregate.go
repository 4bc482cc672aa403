// Package aggregate computes summaries over expense collections.
//
// All functions are pure. They never modify their input and return empty,
// non-nil results for empty input.
package aggregate

import (
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// CategorySummary is the spending in one category.
type CategorySummary struct {
	Category models.Category `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" example:"300" swaggertype:"number"`
	Count    int             `json:"count" example:"2"`
	Average  decimal.Decimal `json:"average" example:"150" swaggertype:"number"`
	Share    decimal.Decimal `json:"share" example:"85.71" swaggertype:"number"` // Percentage of the total spending
}

// DailySummary is the spending on one day.
type DailySummary struct {
	Date  types.Date      `json:"date" example:"2024-03-01" swaggertype:"string"`
	Total decimal.Decimal `json:"total" example:"100" swaggertype:"number"`
	Count int             `json:"count" example:"1"`
}

// PeriodSummary summarizes the spending in a set of expenses.
type PeriodSummary struct {
	Total        decimal.Decimal `json:"total" example:"350" swaggertype:"number"`
	Count        int             `json:"count" example:"3"`
	Average      decimal.Decimal `json:"average" example:"116.67" swaggertype:"number"`
	MaxDaily     decimal.Decimal `json:"maxDaily" example:"200" swaggertype:"number"`
	MinDaily     decimal.Decimal `json:"minDaily" example:"50" swaggertype:"number"`
	AverageDaily decimal.Decimal `json:"averageDaily" example:"116.67" swaggertype:"number"`
}

// FilterByMonth returns the expenses that happened in month.
func FilterByMonth(expenses []models.Expense, month types.Month) []models.Expense {
	filtered := make([]models.Expense, 0)
	for _, e := range expenses {
		if month.Contains(e.Date) {
			filtered = append(filtered, e)
		}
	}

	return filtered
}

// Total is the sum of all amounts.
func Total(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return total
}

// ByCategory groups expenses by category, largest total first.
//
// Categories with equal totals keep the order they were first seen in.
func ByCategory(expenses []models.Expense) []CategorySummary {
	summaries := make([]CategorySummary, 0)
	index := make(map[models.Category]int)

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			i = len(summaries)
			index[e.Category] = i
			summaries = append(summaries, CategorySummary{Category: e.Category, Total: decimal.Zero})
		}

		summaries[i].Total = summaries[i].Total.Add(e.Amount)
		summaries[i].Count++
	}

	total := Total(expenses)
	for i := range summaries {
		summaries[i].Average = average(summaries[i].Total, summaries[i].Count)
		summaries[i].Share = percentage(summaries[i].Total, total)
	}

	slices.SortStableFunc(summaries, func(a, b CategorySummary) int {
		return b.Total.Cmp(a.Total)
	})

	return summaries
}

// ByDay groups expenses by date, most recent day first.
func ByDay(expenses []models.Expense) []DailySummary {
	days := make([]DailySummary, 0)
	index := make(map[string]int)

	for _, e := range expenses {
		key := e.Date.String()
		i, ok := index[key]
		if !ok {
			i = len(days)
			index[key] = i
			days = append(days, DailySummary{Date: e.Date, Total: decimal.Zero})
		}

		days[i].Total = days[i].Total.Add(e.Amount)
		days[i].Count++
	}

	slices.SortStableFunc(days, func(a, b DailySummary) int {
		return compareDates(b.Date, a.Date)
	})

	return days
}

// Summarize computes the summary statistics for a set of expenses.
func Summarize(expenses []models.Expense) PeriodSummary {
	summary := PeriodSummary{
		Total:        Total(expenses),
		Count:        len(expenses),
		Average:      decimal.Zero,
		MaxDaily:     decimal.Zero,
		MinDaily:     decimal.Zero,
		AverageDaily: decimal.Zero,
	}

	summary.Average = average(summary.Total, summary.Count)

	days := ByDay(expenses)
	if len(days) == 0 {
		return summary
	}

	summary.MaxDaily = days[0].Total
	summary.MinDaily = days[0].Total
	for _, d := range days[1:] {
		summary.MaxDaily = decimal.Max(summary.MaxDaily, d.Total)
		summary.MinDaily = decimal.Min(summary.MinDaily, d.Total)
	}

	summary.AverageDaily = average(summary.Total, len(days))

	return summary
}

// AvailableMonths returns the distinct months that have expenses, plus the
// months in include, most recent first.
func AvailableMonths(expenses []models.Expense, include ...types.Month) []types.Month {
	months := make([]types.Month, 0)
	seen := make(map[string]bool)

	add := func(m types.Month) {
		if m.IsZero() || seen[m.String()] {
			return
		}
		seen[m.String()] = true
		months = append(months, m)
	}

	for _, e := range expenses {
		add(e.Date.Month())
	}

	for _, m := range include {
		add(m)
	}

	slices.SortFunc(months, func(a, b types.Month) int {
		switch {
		case a.After(b):
			return -1
		case a.Before(b):
			return 1
		}
		return 0
	})

	return months
}

// average divides total by count, rounded to currency precision. It is zero
// for a count of zero.
func average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}

	return total.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// percentage returns part as percentage of whole, zero if whole is zero.
func percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}

	return part.Div(whole).Mul(hundred).Round(2)
}

func compareDates(a, b types.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}
