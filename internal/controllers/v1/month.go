package v1

import (
	"bytes"
	"io"
	"net/http"

	"github.com/expense-tracker/backend/internal/aggregate"
	"github.com/expense-tracker/backend/internal/budget"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/report"
	"github.com/expense-tracker/backend/internal/types"
	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsMonthList)
		r.GET("", co.GetMonths)
	}

	{
		r.OPTIONS("/:month", co.OptionsMonthDetail)
		r.GET("/:month", co.GetMonth)
		r.OPTIONS("/:month/budget", co.OptionsMonthDetail)
		r.GET("/:month/budget", co.GetMonthBudget)
		r.OPTIONS("/:month/report.pdf", co.OptionsMonthDetail)
		r.GET("/:month/report.pdf", co.GetMonthPDF)
		r.OPTIONS("/:month/report.xlsx", co.OptionsMonthDetail)
		r.GET("/:month/report.xlsx", co.GetMonthXLSX)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func (co Controller) OptionsMonthList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"Month, YYYY-MM"
// @Router			/v1/months/{month} [options]
// @Router			/v1/months/{month}/budget [options]
// @Router			/v1/months/{month}/report.pdf [options]
// @Router			/v1/months/{month}/report.xlsx [options]
func (co Controller) OptionsMonthDetail(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get months
// @Description	Returns every month that has expenses, most recent first
// @Tags			Months
// @Produce		json
// @Success		200				{object}	MonthListResponse
// @Failure		400				{object}	MonthListResponse
// @Param			includeCurrent	query		bool	false	"Also list the current month"
// @Router			/v1/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	var query MonthListQuery
	if err := httputil.BindQuery(c, &query); err != nil {
		s := err.Error()
		c.JSON(status(err), MonthListResponse{Error: &s})
		return
	}

	var include []types.Month
	if query.IncludeCurrent {
		include = append(include, types.MonthOf(co.now()))
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: aggregate.AvailableMonths(co.Expenses.List(), include...)})
}

// @Summary		Get month
// @Description	Returns the full report for a month. Months without expenses are reported with zero values.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Param			month	path		string	true	"Month, YYYY-MM"
// @Param			top		query		int		false	"Number of largest expenses to list, default 5"
// @Router			/v1/months/{month} [get]
func (co Controller) GetMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	query := MonthQuery{Top: defaultTop}
	if err := httputil.BindQuery(c, &query); err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{Error: &s})
		return
	}

	all := co.Expenses.List()
	expenses := aggregate.FilterByMonth(all, uri.Month)
	summary := aggregate.Summarize(expenses)

	previous := uri.Month.AddDate(0, -1)
	previousTotal := aggregate.Total(aggregate.FilterByMonth(all, previous))

	data := Month{
		Month:          uri.Month,
		Summary:        summary,
		Categories:     aggregate.ByCategory(expenses),
		Daily:          aggregate.ByDay(expenses),
		PaidBy:         aggregate.ByPaidBy(expenses),
		PaymentMethods: aggregate.ByPaymentMethod(expenses),
		Top:            aggregate.Top(expenses, query.Top),
		Heatmap:        aggregate.Heatmap(expenses, uri.Month),
		Budget:         co.evaluate(uri.Month, summary),
		Previous:       previous,
		Trend:          aggregate.Compare(summary.Total, previousTotal),
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Get budget status
// @Description	Returns how much of the budget for the month has been spent
// @Tags			Months
// @Produce		json
// @Success		200		{object}	EvaluationResponse
// @Failure		400		{object}	EvaluationResponse
// @Param			month	path		string	true	"Month, YYYY-MM"
// @Router			/v1/months/{month}/budget [get]
func (co Controller) GetMonthBudget(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), EvaluationResponse{Error: &s})
		return
	}

	summary := aggregate.Summarize(aggregate.FilterByMonth(co.Expenses.List(), uri.Month))
	evaluation := co.evaluate(uri.Month, summary)
	c.JSON(http.StatusOK, EvaluationResponse{Data: &evaluation})
}

// @Summary		Download PDF report
// @Description	Returns the report for the month as PDF document
// @Tags			Months
// @Produce		application/pdf
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			month	path		string	true	"Month, YYYY-MM"
// @Router			/v1/months/{month}/report.pdf [get]
func (co Controller) GetMonthPDF(c *gin.Context) {
	co.download(c, "pdf", contentTypePDF, report.WritePDF)
}

// @Summary		Download XLSX report
// @Description	Returns the report for the month as Excel workbook
// @Tags			Months
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			month	path		string	true	"Month, YYYY-MM"
// @Router			/v1/months/{month}/report.xlsx [get]
func (co Controller) GetMonthXLSX(c *gin.Context) {
	co.download(c, "xlsx", contentTypeXLSX, report.WriteXLSX)
}

func (co Controller) download(c *gin.Context, ext, contentType string, render func(io.Writer, report.Report, report.Options) error) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	r, err := report.Build(co.Expenses.List(), uri.Month, co.now())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}
	r = r.WithBudget(co.budget(uri.Month))

	// Render into a buffer first so that errors can still be sent as JSON
	var buf bytes.Buffer
	if err := render(&buf, r, report.Options{Money: co.Money}); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
		return
	}

	httputil.Attachment(c, report.Filename(uri.Month, ext), contentType)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (co Controller) budget(month types.Month) *models.Budget {
	b, ok := co.Budgets.Get(month)
	if !ok {
		return nil
	}
	return &b
}

func (co Controller) evaluate(month types.Month, summary aggregate.PeriodSummary) budget.Evaluation {
	return budget.Evaluate(summary.Total, co.budget(month))
}
