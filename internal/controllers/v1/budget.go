package v1

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetListResponse struct {
	Data  []models.Budget `json:"data"`  // List of budgets, most recent month first
	Error *string         `json:"error"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *models.Budget `json:"data"`                                              // Data for the budget
	Error *string        `json:"error" example:"there is no budget for this month"` // The error, if any occurred
}

type BudgetEditable struct {
	Amount decimal.Decimal `json:"amount" example:"25000" swaggertype:"number"` // Spending ceiling for the month
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsBudgetList)
		r.GET("", co.GetBudgets)
	}

	{
		r.OPTIONS("/:month", co.OptionsBudgetDetail)
		r.GET("/:month", co.GetBudget)
		r.PUT("/:month", co.SetBudget)
		r.DELETE("/:month", co.DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Description	Budgets are identified by their month, so all verbs are allowed for months without a budget.
// @Tags			Budgets
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"Month, YYYY-MM"
// @Router			/v1/budgets/{month} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get budgets
// @Description	Returns all budgets, most recent month first
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, BudgetListResponse{Data: co.Budgets.List()})
}

// @Summary		Get budget
// @Description	Returns the budget for a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Param			month	path		string	true	"Month, YYYY-MM"
// @Router			/v1/budgets/{month} [get]
func (co Controller) GetBudget(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	budget, ok := co.Budgets.Get(uri.Month)
	if !ok {
		s := errBudgetNotFound.Error()
		c.JSON(status(errBudgetNotFound), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// @Summary		Set budget
// @Description	Sets the budget for a month, replacing an existing one
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Param			month	path		string			true	"Month, YYYY-MM"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{month} [put]
func (co Controller) SetBudget(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	budget := models.Budget{Month: uri.Month, Amount: editable.Amount}
	if err := budget.Validate(); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	co.Budgets.Set(c.Request.Context(), budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// @Summary		Delete budget
// @Description	Deletes the budget for a month
// @Tags			Budgets
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			month	path		string	true	"Month, YYYY-MM"
// @Router			/v1/budgets/{month} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if !co.Budgets.Delete(c.Request.Context(), uri.Month) {
		c.JSON(status(errBudgetNotFound), httpError{Error: errBudgetNotFound.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
