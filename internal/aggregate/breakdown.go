package aggregate

import (
	"math"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Bucket is the spending for one value of an optional field. A nil Key
// collects the expenses where the field is absent.
type Bucket[K ~string] struct {
	Key   *K              `json:"key"`
	Total decimal.Decimal `json:"total" swaggertype:"number"`
	Count int             `json:"count"`
}

// ByPaidBy groups expenses by who paid, largest total first.
func ByPaidBy(expenses []models.Expense) []Bucket[models.PaidBy] {
	return byOptional(expenses, func(e models.Expense) *models.PaidBy { return e.PaidBy })
}

// ByPaymentMethod groups expenses by payment method, largest total first.
func ByPaymentMethod(expenses []models.Expense) []Bucket[models.PaymentMethod] {
	return byOptional(expenses, func(e models.Expense) *models.PaymentMethod { return e.PaymentMethod })
}

func byOptional[K ~string](expenses []models.Expense, field func(models.Expense) *K) []Bucket[K] {
	buckets := make([]Bucket[K], 0)
	index := make(map[K]int)
	absent := -1

	for _, e := range expenses {
		value := field(e)

		var i int
		var ok bool
		if value == nil {
			i, ok = absent, absent >= 0
		} else {
			i, ok = index[*value]
		}

		if !ok {
			i = len(buckets)
			b := Bucket[K]{Total: decimal.Zero}
			if value == nil {
				absent = i
			} else {
				key := *value
				b.Key = &key
				index[key] = i
			}
			buckets = append(buckets, b)
		}

		buckets[i].Total = buckets[i].Total.Add(e.Amount)
		buckets[i].Count++
	}

	slices.SortStableFunc(buckets, func(a, b Bucket[K]) int {
		return b.Total.Cmp(a.Total)
	})

	return buckets
}

// Top returns the n largest expenses. Equal amounts are ordered newest first.
func Top(expenses []models.Expense, n int) []models.Expense {
	sorted := slices.Clone(expenses)
	if sorted == nil {
		sorted = make([]models.Expense, 0)
	}

	slices.SortStableFunc(sorted, func(a, b models.Expense) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return compareDates(b.Date, a.Date)
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

// HeatmapDay is the spending intensity of one calendar day.
type HeatmapDay struct {
	Date      types.Date      `json:"date" example:"2024-03-01" swaggertype:"string"`
	Total     decimal.Decimal `json:"total" example:"100" swaggertype:"number"`
	Count     int             `json:"count" example:"1"`
	Intensity float64         `json:"intensity" example:"0.5"` // Total relative to the busiest day, between 0 and 1
	Level     int             `json:"level" example:"2"`       // Intensity bucket from 0 (nothing spent) to 4
}

// HeatmapLevels is the number of non-empty intensity levels.
const HeatmapLevels = 4

// Heatmap returns one entry for every day of month, first day first.
func Heatmap(expenses []models.Expense, month types.Month) []HeatmapDay {
	totals := make(map[int]DailySummary)
	for _, d := range ByDay(FilterByMonth(expenses, month)) {
		totals[d.Date.Day()] = d
	}

	// Scale against at least one currency unit so tiny totals don't all max out
	peak := decimal.NewFromInt(1)
	for _, d := range totals {
		peak = decimal.Max(peak, d.Total)
	}

	days := make([]HeatmapDay, 0, month.Days())
	for day := 1; day <= month.Days(); day++ {
		entry := HeatmapDay{Date: month.Day(day), Total: decimal.Zero}

		if d, ok := totals[day]; ok {
			entry.Total = d.Total
			entry.Count = d.Count
			entry.Intensity = d.Total.Div(peak).InexactFloat64()
			entry.Level = int(math.Ceil(entry.Intensity * HeatmapLevels))
		}

		days = append(days, entry)
	}

	return days
}

// Direction is the direction of a change between two periods.
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStable Direction = "stable"
)

// Trend compares the spending of two periods.
type Trend struct {
	Direction  Direction       `json:"direction" example:"up"`
	Change     decimal.Decimal `json:"change" example:"150" swaggertype:"number"`      // current - previous
	Percentage decimal.Decimal `json:"percentage" example:"75" swaggertype:"number"` // Size of the change relative to previous, always positive
}

// Compare returns the trend from previous to current.
//
// When previous is zero, any spending counts as a 100% increase.
func Compare(current, previous decimal.Decimal) Trend {
	change := current.Sub(previous)

	trend := Trend{
		Direction:  DirectionStable,
		Change:     change,
		Percentage: decimal.Zero,
	}

	switch change.Sign() {
	case 1:
		trend.Direction = DirectionUp
	case -1:
		trend.Direction = DirectionDown
	default:
		return trend
	}

	if previous.IsZero() {
		trend.Percentage = hundred
		return trend
	}

	trend.Percentage = percentage(change.Abs(), previous.Abs())
	return trend
}
