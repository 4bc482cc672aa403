package v1

import (
	"github.com/expense-tracker/backend/internal/aggregate"
	"github.com/expense-tracker/backend/internal/budget"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
)

// The number of largest expenses listed by default.
const defaultTop = 5

type MonthListQuery struct {
	IncludeCurrent bool `form:"includeCurrent"` // Also list the current month
}

type MonthQuery struct {
	Top int `form:"top" binding:"min=0"` // Number of largest expenses to list
}

type MonthListResponse struct {
	Data  []types.Month `json:"data" swaggertype:"array,string" example:"2024-03,2024-02"` // Months, most recent first
	Error *string       `json:"error"`                                                      // The error, if any occurred
}

// Month is the full report for a month.
type Month struct {
	Month          types.Month                              `json:"month" swaggertype:"string" example:"2024-03"`
	Summary        aggregate.PeriodSummary                  `json:"summary"`
	Categories     []aggregate.CategorySummary              `json:"categories"`                                      // Spending per category, largest first
	Daily          []aggregate.DailySummary                 `json:"daily"`                                           // Spending per day, newest first
	PaidBy         []aggregate.Bucket[models.PaidBy]        `json:"paidBy"`                                          // Spending per payer. A null key collects expenses without payer
	PaymentMethods []aggregate.Bucket[models.PaymentMethod] `json:"paymentMethods"`                                  // Spending per payment method. A null key collects expenses without payment method
	Top            []models.Expense                         `json:"top"`                                             // Largest expenses
	Heatmap        []aggregate.HeatmapDay                   `json:"heatmap"`                                         // One entry for each day of the month
	Budget         budget.Evaluation                        `json:"budget"`
	Previous       types.Month                              `json:"previous" swaggertype:"string" example:"2024-02"` // The month the trend compares to
	Trend          aggregate.Trend                          `json:"trend"`                                           // Change compared to the previous month
}

type MonthResponse struct {
	Data  *Month  `json:"data"`
	Error *string `json:"error" example:"could not parse the month, did you use YYYY-MM format?"`
}

type EvaluationResponse struct {
	Data  *budget.Evaluation `json:"data"`
	Error *string            `json:"error" example:"could not parse the month, did you use YYYY-MM format?"`
}
