package v1

import (
	"net/http"

	"github.com/expense-tracker/backend/internal/aggregate"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpenses)
		r.DELETE("", co.DeleteExpenses)
	}

	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PATCH("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, ok := co.Expenses.Get(uri.ID); !ok {
		c.JSON(status(errExpenseNotFound), httpError{Error: errExpenseNotFound.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses, newest first unless sorted otherwise
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	ExpenseListResponse
// @Param			month		query		string	false	"Filter by month, YYYY-MM"
// @Param			category	query		string	false	"Filter by category"
// @Param			search		query		string	false	"Search in the description"
// @Param			sort		query		string	false	"Sort order: date, amount, category, description"
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var query ExpenseQueryFilter
	if err := httputil.BindQuery(c, &query); err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	filter, order, err := query.parse()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	expenses := aggregate.Sort(aggregate.Query(co.Expenses.List(), filter), order)
	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// parse turns the query into a filter and a sort order.
func (q ExpenseQueryFilter) parse() (aggregate.Filter, aggregate.SortOrder, error) {
	var filter aggregate.Filter

	if q.Month != "" {
		month, err := types.ParseMonth(q.Month)
		if err != nil {
			return filter, "", err
		}
		filter.Month = month
	}

	if q.Category != "" && q.Category != aggregate.AllCategories {
		category, err := models.ParseCategory(q.Category)
		if err != nil {
			return filter, "", err
		}
		filter.Category = category
	}

	filter.Search = q.Search

	order, err := aggregate.ParseSortOrder(q.Sort)
	if err != nil {
		return filter, "", err
	}

	return filter, order, nil
}

// @Summary		Create expenses
// @Description	Creates expenses from the list of submitted expense data. The response code is the highest response code number that a single expense creation would have caused.
// @Description	Expenses without an ID get a new UUID.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]models.Expense	true	"Expenses"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpenses(c *gin.Context) {
	var expenses []models.Expense
	if err := httputil.BindData(c, &expenses); err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{Error: &s})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{Data: make([]ExpenseResponse, 0, len(expenses))}

	for _, expense := range expenses {
		if expense.ID == "" {
			expense.ID = models.NewID()
		}

		if err := expense.Validate(); err != nil {
			status = r.appendError(err, status)
			continue
		}

		if !co.Expenses.AddIfAbsent(c.Request.Context(), expense) {
			status = r.appendError(errExpenseExists, status)
			continue
		}

		r.Data = append(r.Data, ExpenseResponse{Data: &expense})
	}

	c.JSON(status, r)
}

// @Summary		Delete all expenses
// @Description	Deletes every expense. Budgets are kept.
// @Tags			Expenses
// @Success		204
// @Failure		400		{object}	httpError
// @Param			confirm	query		string	true	"Confirmation to delete all expenses. Must be set to 'yes-please-delete-everything'"
// @Router			/v1/expenses [delete]
func (co Controller) DeleteExpenses(c *gin.Context) {
	var query CleanupQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if query.Confirm != cleanupConfirmation {
		c.JSON(status(errCleanupConfirmation), httpError{Error: errCleanupConfirmation.Error()})
		return
	}

	co.Expenses.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	expense, ok := co.Expenses.Get(uri.ID)
	if !ok {
		s := errExpenseNotFound.Error()
		c.JSON(status(errExpenseNotFound), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified. Set paidBy or paymentMethod to null to remove them.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Param			id		path		string			true	"ID of the expense"
// @Param			expense	body		models.Expense	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func (co Controller) UpdateExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	expense, ok := co.Expenses.Get(uri.ID)
	if !ok {
		s := errExpenseNotFound.Error()
		c.JSON(status(errExpenseNotFound), ExpenseResponse{Error: &s})
		return
	}

	// Fields in the body overwrite the existing values, all others are kept
	if err := httputil.BindData(c, &expense); err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	// The ID is immutable
	expense.ID = uri.ID

	if err := expense.Validate(); err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	if !co.Expenses.Update(c.Request.Context(), expense) {
		s := errExpenseNotFound.Error()
		c.JSON(status(errExpenseNotFound), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if !co.Expenses.Delete(c.Request.Context(), uri.ID) {
		c.JSON(status(errExpenseNotFound), httpError{Error: errExpenseNotFound.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
