package v1

import (
	"github.com/salary-report/backend/internal/finance"
	"github.com/salary-report/backend/pkg/salary"
)

// CalculationInput is the request body for calculations.
type CalculationInput struct {
	finance.RawInput

	// Older clients send the singular form. It is only used when "recharges" is not set.
	Recharge finance.Value `json:"recharge" swaggerignore:"true"`
}

// raw returns the input with the "recharge" alias resolved.
func (i CalculationInput) raw() finance.RawInput {
	raw := i.RawInput
	if !raw.Recharges.Present() && i.Recharge.Present() {
		raw.Recharges = i.Recharge
	}

	return raw
}

// CalculationQuery are the query parameters accepted by the calculation endpoints.
type CalculationQuery struct {
	Plot   *bool  `form:"plot" example:"false"` // Include the chart data in the response. Defaults to true
	Locale string `form:"locale" example:"de"`  // BCP 47 language tag used for the formatted values. Defaults to "en"
}

// plot reports whether the chart data is requested.
func (q CalculationQuery) plot() bool {
	return q.Plot == nil || *q.Plot
}

func newCalculations(report finance.Report) salary.Calculations {
	return salary.Calculations{
		TotalIncome:       salary.NewAmount(report.TotalIncome),
		TotalExpenses:     salary.NewAmount(report.TotalExpenses),
		NetSavings:        salary.NewAmount(report.NetSavings),
		SavingsPercentage: salary.NewAmount(report.SavingsPercentage),
	}
}

func newValidationResponse(err *finance.ValidationError) salary.ValidationResponse {
	issues := make([]salary.Issue, 0, len(err.Issues))
	for _, issue := range err.Issues {
		issues = append(issues, salary.Issue{
			Field:   issue.Field.String(),
			Reason:  string(issue.Reason),
			Message: issue.Message(),
		})
	}

	return salary.ValidationResponse{
		Error:  err.Error(),
		Errors: issues,
	}
}

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Calculations string `json:"calculations" example:"https://example.com/api/v1/calculations"`  // URL of the calculation endpoint
	Export       string `json:"export" example:"https://example.com/api/v1/calculations/export"` // URL of the spreadsheet export
}
