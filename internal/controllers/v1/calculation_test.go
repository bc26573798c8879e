package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/salary-report/backend/pkg/salary"
	"github.com/salary-report/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const calculationsURL = "http://example.com/v1/calculations"

func (suite *TestSuiteStandard) createCalculation(url string, body any, expectedStatus int) salary.Calculation {
	recorder := test.Request(suite.T(), http.MethodPost, url, body)
	test.AssertHTTPStatus(suite.T(), &recorder, expectedStatus)

	var r salary.Calculation
	if expectedStatus == http.StatusOK {
		test.DecodeResponse(suite.T(), &recorder, &r)
	}

	return r
}

func (suite *TestSuiteStandard) TestCalculationScenarios() {
	tests := []struct {
		name       string
		body       string
		income     float64
		expenses   float64
		savings    float64
		percentage float64
	}{
		{
			"Typical month",
			`{"basic_salary": 5000, "incentives": 500, "spends": 1000, "recharges": 200, "grocery": 300}`,
			5500, 1500, 4000, 72.727,
		},
		{
			"No income",
			`{"basic_salary": 0, "incentives": 0, "spends": 100, "recharges": 0, "grocery": 0}`,
			0, 100, -100, 0,
		},
		{
			"Overspent",
			`{"basic_salary": 1000, "incentives": 0, "spends": 2000, "recharges": 0, "grocery": 0}`,
			1000, 2000, -1000, -100,
		},
		{
			"Numbers as strings",
			`{"basic_salary": "5000", "incentives": "500.50", "spends": " 1000 ", "recharges": "0", "grocery": "1e2"}`,
			5500.5, 1100, 4400.5, 80.0018,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.createCalculation(calculationsURL, tt.body, http.StatusOK)

			assert.NotEqual(t, uuid.Nil, r.ID)
			assert.InDelta(t, tt.income, r.Calculations.TotalIncome.InexactFloat64(), 0.005)
			assert.InDelta(t, tt.expenses, r.Calculations.TotalExpenses.InexactFloat64(), 0.005)
			assert.InDelta(t, tt.savings, r.Calculations.NetSavings.InexactFloat64(), 0.005)
			assert.InDelta(t, tt.percentage, r.Calculations.SavingsPercentage.InexactFloat64(), 0.005)
		})
	}
}

func (suite *TestSuiteStandard) TestCalculationUniqueIDs() {
	body := `{"basic_salary": 1, "incentives": 1, "spends": 1, "recharges": 1, "grocery": 1}`

	first := suite.createCalculation(calculationsURL, body, http.StatusOK)
	second := suite.createCalculation(calculationsURL, body, http.StatusOK)

	suite.Assert().NotEqual(first.ID, second.ID)
	suite.Assert().True(first.Calculations.NetSavings.Equal(second.Calculations.NetSavings.Decimal))
}

func (suite *TestSuiteStandard) TestCalculationPlot() {
	body := `{"basic_salary": 5000, "incentives": 500, "spends": 1000, "recharges": 200, "grocery": 300}`

	r := suite.createCalculation(calculationsURL, body, http.StatusOK)
	suite.Require().NotNil(r.Plot)
	suite.Assert().Equal([]string{"Income", "Expenses", "Savings"}, r.Plot.Labels)
	suite.Require().Len(r.Plot.Datasets, 1)
	suite.Require().Len(r.Plot.Datasets[0].Data, 3)
	for i, expected := range []int64{5500, 1500, 4000} {
		suite.Assert().True(r.Plot.Datasets[0].Data[i].Equal(decimal.NewFromInt(expected)), "data[%d] is %s", i, r.Plot.Datasets[0].Data[i])
	}

	r = suite.createCalculation(calculationsURL+"?plot=false", body, http.StatusOK)
	suite.Assert().Nil(r.Plot)
	suite.Assert().Equal("5500", r.Calculations.TotalIncome.String())

	recorder := test.Request(suite.T(), http.MethodPost, calculationsURL+"?plot=maybe", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), "query string")
}

func (suite *TestSuiteStandard) TestCalculationFormatted() {
	body := `{"basic_salary": 5000, "incentives": 500, "spends": 1000, "recharges": 200, "grocery": 300}`

	r := suite.createCalculation(calculationsURL, body, http.StatusOK)
	suite.Assert().Equal("72.73", r.Formatted.SavingsPercentage)
	suite.Assert().Equal("5,500.00", r.Formatted.TotalIncome)
	suite.Assert().Equal("1,500.00", r.Formatted.TotalExpenses)

	r = suite.createCalculation(calculationsURL+"?locale=de", body, http.StatusOK)
	suite.Assert().Equal("72,73", r.Formatted.SavingsPercentage)
	suite.Assert().Equal("5.500,00", r.Formatted.TotalIncome)

	recorder := test.Request(suite.T(), http.MethodPost, calculationsURL+"?locale=!!!", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(test.DecodeError(suite.T(), recorder.Body.Bytes()), "locale")
}

func (suite *TestSuiteStandard) TestCalculationRechargeAlias() {
	r := suite.createCalculation(calculationsURL, `{"basic_salary": 5000, "incentives": 500, "spends": 1000, "recharge": 200, "grocery": 300}`, http.StatusOK)
	suite.Assert().Equal("1500", r.Calculations.TotalExpenses.String())

	// The canonical name wins
	r = suite.createCalculation(calculationsURL, `{"basic_salary": 5000, "incentives": 500, "spends": 1000, "recharges": 100, "recharge": 200, "grocery": 300}`, http.StatusOK)
	suite.Assert().Equal("1400", r.Calculations.TotalExpenses.String())
}

func (suite *TestSuiteStandard) TestCalculationBadRequest() {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{"Empty body", "", "must not be empty"},
		{"Broken JSON", `{"basic_salary": 5000`, "un-parseable data"},
		{"Array", `[5000, 500, 1000, 200, 300]`, "un-parseable data"},
		{"String", `"5000"`, "un-parseable data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, calculationsURL, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, recorder.Body.Bytes()), tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestCalculationValidation() {
	tests := []struct {
		name    string
		body    string
		message string
		issues  []salary.Issue
	}{
		{
			"Not a number and missing",
			`{"basic_salary": 5000, "incentives": 500, "spends": "abc", "recharges": 200}`,
			"spends must be a number; grocery is required",
			[]salary.Issue{
				{Field: "spends", Reason: "NOT_A_NUMBER", Message: "spends must be a number"},
				{Field: "grocery", Reason: "MISSING", Message: "grocery is required"},
			},
		},
		{
			"Negative",
			`{"basic_salary": -1, "incentives": 0, "spends": 0, "recharges": 0, "grocery": 0}`,
			"basic_salary must not be negative",
			[]salary.Issue{
				{Field: "basic_salary", Reason: "NEGATIVE", Message: "basic_salary must not be negative"},
			},
		},
		{
			"Null, blank and boolean",
			`{"basic_salary": null, "incentives": "  ", "spends": true, "recharges": 0, "grocery": 0}`,
			"basic_salary is required; incentives is required; spends must be a number",
			[]salary.Issue{
				{Field: "basic_salary", Reason: "MISSING", Message: "basic_salary is required"},
				{Field: "incentives", Reason: "MISSING", Message: "incentives is required"},
				{Field: "spends", Reason: "NOT_A_NUMBER", Message: "spends must be a number"},
			},
		},
		{
			"Empty object",
			`{}`,
			"basic_salary is required; incentives is required; spends is required; recharges is required; grocery is required",
			[]salary.Issue{
				{Field: "basic_salary", Reason: "MISSING", Message: "basic_salary is required"},
				{Field: "incentives", Reason: "MISSING", Message: "incentives is required"},
				{Field: "spends", Reason: "MISSING", Message: "spends is required"},
				{Field: "recharges", Reason: "MISSING", Message: "recharges is required"},
				{Field: "grocery", Reason: "MISSING", Message: "grocery is required"},
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, calculationsURL, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnprocessableEntity)

			var r salary.ValidationResponse
			test.DecodeResponse(t, &recorder, &r)

			assert.Equal(t, tt.message, r.Error)
			assert.Equal(t, tt.issues, r.Errors)
		})
	}
}

func (suite *TestSuiteStandard) TestCalculationBeyondFloatRange() {
	recorder := test.Request(suite.T(), http.MethodPost, calculationsURL, `{"basic_salary": 1e308, "incentives": 1e308, "spends": 0, "recharges": 0, "grocery": 0}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Require().NotEmpty(recorder.Body.String())

	var r salary.Calculation
	test.DecodeResponse(suite.T(), &recorder, &r)

	income := decimal.RequireFromString("2e308")
	suite.Assert().True(r.Calculations.TotalIncome.Equal(income), "total_income is %s", r.Calculations.TotalIncome)
	suite.Assert().True(r.Calculations.TotalExpenses.IsZero())
	suite.Assert().True(r.Calculations.NetSavings.Equal(income))
	suite.Assert().True(r.Calculations.SavingsPercentage.Equal(decimal.NewFromInt(100)))
	suite.Assert().Equal(income.String()+".00", r.Formatted.TotalIncome)
	suite.Require().NotNil(r.Plot)
	suite.Assert().True(r.Plot.Datasets[0].Data[0].Equal(income))
}
