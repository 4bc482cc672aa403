package v1

import (
	"github.com/expense-tracker/backend/internal/types"
)

type URIID struct {
	ID string `uri:"id" example:"0b2e8fa3-8a3c-4c6e-9a57-5b1e6d0f2c11"` // ID of the expense
}

type URIMonth struct {
	Month types.Month `uri:"month" example:"2024-03" swaggertype:"string"` // Year and month in YYYY-MM format
}

// Links for the v1 API.
type Links struct {
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"` // URL of expense list endpoint
	Budgets  string `json:"budgets" example:"https://example.com/api/v1/budgets"`   // URL of budget list endpoint
	Months   string `json:"months" example:"https://example.com/api/v1/months"`     // URL of month list endpoint
	Export   string `json:"export" example:"https://example.com/api/v1/export"`     // URL of the backup endpoint
	Import   string `json:"import" example:"https://example.com/api/v1/import"`     // URL of the restore endpoint
}

type RootResponse struct {
	Links Links `json:"links"`
}
