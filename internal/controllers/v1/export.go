package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ExportResponse struct {
	Version      string                     `json:"version"`      // The version of the backend the export was made with
	Data         map[string]json.RawMessage `json:"data"`         // The exported collections
	CreationTime time.Time                  `json:"creationTime"` // Time the export was created
	Clacks       string                     `json:"clacks"`       // This will always have the value "GNU Terry Pratchett"
}

// RegisterExportRoutes registers the backup route with the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsExport)
	r.GET("", co.GetExport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func (co Controller) OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all expenses and budgets. The file can be restored with the import endpoint.
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	collections := map[string]any{
		store.ExpensesKey: co.Expenses.List(),
		store.BudgetsKey:  co.Budgets.List(),
	}

	resources := make(map[string]json.RawMessage, len(collections))
	for key, collection := range collections {
		b, err := json.Marshal(collection)
		if err != nil {
			log.Error().Err(err).Str("collection", key).Msg("could not export collection")
			c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
			return
		}

		resources[key] = b
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      co.Version,
		Data:         resources,
		CreationTime: co.now(),
		Clacks:       "GNU Terry Pratchett",
	})
}
