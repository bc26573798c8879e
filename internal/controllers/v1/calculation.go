package v1

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/salary-report/backend/internal/chart"
	"github.com/salary-report/backend/internal/finance"
	"github.com/salary-report/backend/internal/httputil"
	"github.com/salary-report/backend/pkg/salary"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "salary-report.xlsx"
)

// RegisterRoutes registers the routes for the v1 API with
// the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	calculations := r.Group("/calculations")

	// Calculation as JSON
	{
		calculations.OPTIONS("", OptionsCalculations)
		calculations.POST("", CreateCalculation)
	}

	// Calculation as spreadsheet
	{
		calculations.OPTIONS("/export", OptionsExport)
		calculations.POST("/export", ExportCalculation)
	}
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.BaseURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Calculations: url + "/v1/calculations",
			Export:       url + "/v1/calculations/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculations
// @Success		204
// @Router			/v1/calculations [options]
func OptionsCalculations(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Calculate report
// @Description	Validates the inputs and calculates income, expenses, savings and the savings percentage
// @Tags			Calculations
// @Accept			json
// @Produce		json
// @Success		200		{object}	salary.Calculation
// @Failure		400		{object}	httputil.HTTPError
// @Failure		422		{object}	salary.ValidationResponse
// @Failure		429		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			input	body		CalculationInput	true	"Salary and spending"
// @Param			plot	query		bool				false	"Include the chart data, defaults to true"
// @Param			locale	query		string				false	"Language tag for the formatted values, defaults to en"
// @Router			/v1/calculations [post]
func CreateCalculation(c *gin.Context) {
	var query CalculationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.ErrorHandler(c, fmt.Errorf("%w: %s", httputil.ErrInvalidQuery, err))
		return
	}

	p, err := printer(query.Locale)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	_, report, ok := calculate(c)
	if !ok {
		return
	}

	r := salary.Calculation{
		ID:           uuid.New(),
		Calculations: newCalculations(report),
		Formatted:    newFormatted(p, report),
	}

	if query.plot() {
		bar := chart.NewBar(report)
		r.Plot = &bar
	}

	log.Debug().Str("request-id", requestid.Get(c)).Str("id", r.ID.String()).Msg("calculation")
	c.JSON(http.StatusOK, r)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculations
// @Success		204
// @Router			/v1/calculations/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Export report
// @Description	Validates the inputs and returns the inputs and the report as spreadsheet with a bar chart
// @Tags			Calculations
// @Accept			json
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200		{file}		file
// @Failure		400		{object}	httputil.HTTPError
// @Failure		422		{object}	salary.ValidationResponse
// @Failure		429		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			input	body		CalculationInput	true	"Salary and spending"
// @Router			/v1/calculations/export [post]
func ExportCalculation(c *gin.Context) {
	record, report, ok := calculate(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := chart.WriteWorkbook(&buf, record, report); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", exportFilename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// calculate binds the request body, validates it and aggregates the report.
//
// If it returns false, the error response has already been written.
func calculate(c *gin.Context) (finance.Record, finance.Report, bool) {
	var input CalculationInput
	if err := httputil.BindData(c, &input); err != nil {
		httputil.ErrorHandler(c, err)
		return finance.Record{}, finance.Report{}, false
	}

	record, err := finance.Validate(input.raw())
	if err != nil {
		var validationErr *finance.ValidationError
		if !errors.As(err, &validationErr) {
			httputil.ErrorHandler(c, err)
			return finance.Record{}, finance.Report{}, false
		}

		observeValidationError(validationErr)
		log.Debug().Str("request-id", requestid.Get(c)).Str("issues", validationErr.Error()).Msg("validation failed")

		c.JSON(http.StatusUnprocessableEntity, newValidationResponse(validationErr))
		return finance.Record{}, finance.Report{}, false
	}

	calculationCount.WithLabelValues(outcomeSuccess).Inc()
	return record, finance.Aggregate(record), true
}
