package healthz

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/salary-report/backend/internal/finance"
	"github.com/salary-report/backend/internal/httputil"
	"github.com/shopspring/decimal"
)

var errSelfCheck = errors.New("the calculation self check returned an unexpected result")

// selfCheck is a known input whose report is verified on every health check.
var selfCheck = finance.RawInput{
	BasicSalary: finance.Number(5000),
	Incentives:  finance.Number(500),
	Spends:      finance.Number(1000),
	Recharges:   finance.Number(200),
	Grocery:     finance.Number(300),
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if err := check(); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func check() error {
	report, err := finance.Calculate(selfCheck)
	if err != nil {
		return err
	}

	if !report.NetSavings.Equal(decimal.NewFromInt(4000)) {
		return errSelfCheck
	}

	return nil
}
