// Package salary contains the request and response types of the salary report API.
package salary

import (
	"github.com/google/uuid"
)

// Input is the request body for calculations.
//
// Values may be numbers, numeric strings or anything else the API should reject.
// A nil value is not sent, the API then reports the field as missing.
type Input struct {
	BasicSalary any `json:"basic_salary,omitempty"`
	Incentives  any `json:"incentives,omitempty"`
	Spends      any `json:"spends,omitempty"`
	Recharges   any `json:"recharges,omitempty"`
	Grocery     any `json:"grocery,omitempty"`
}

type Calculations struct {
	TotalIncome       Amount `json:"total_income" swaggertype:"number" example:"5500"`         // Sum of basic salary and incentives
	TotalExpenses     Amount `json:"total_expenses" swaggertype:"number" example:"1500"`       // Sum of spends, recharges and grocery
	NetSavings        Amount `json:"net_savings" swaggertype:"number" example:"4000"`          // Income minus expenses, may be negative
	SavingsPercentage Amount `json:"savings_percentage" swaggertype:"number" example:"72.727"` // Net savings as percentage of the income. 0 if there is no income
}

// Formatted contains the calculated values rounded to two decimal places
// and formatted for the requested locale.
type Formatted struct {
	TotalIncome       string `json:"total_income" example:"5,500.00"`
	TotalExpenses     string `json:"total_expenses" example:"1,500.00"`
	NetSavings        string `json:"net_savings" example:"4,000.00"`
	SavingsPercentage string `json:"savings_percentage" example:"72.73"`
}

// Bar is a bar chart in the data format of chart.js.
type Bar struct {
	Labels   []string  `json:"labels" example:"Income,Expenses,Savings"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label           string   `json:"label" example:"Amount ($)"`
	Data            []Amount `json:"data" swaggertype:"array,number" example:"5500,1500,4000"`
	BackgroundColor []string `json:"backgroundColor"`
	BorderColor     []string `json:"borderColor"`
	BorderWidth     int      `json:"borderWidth" example:"1"`
}

// Calculation is the response for a successful calculation.
type Calculation struct {
	ID           uuid.UUID    `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // Identifier of this calculation, useful for support requests
	Calculations Calculations `json:"calculations"`                                      // The calculated values
	Formatted    Formatted    `json:"formatted"`                                         // The calculated values, ready for display
	Plot         *Bar         `json:"plot,omitempty"`                                    // Bar chart data for Income, Expenses and Savings
}

// Issue describes one problem with one input field.
type Issue struct {
	Field   string `json:"field" example:"grocery"`
	Reason  string `json:"reason" example:"MISSING" enums:"MISSING,NOT_A_NUMBER,NEGATIVE"`
	Message string `json:"message" example:"grocery is required"`
}

// ValidationResponse is the response when the input was rejected.
type ValidationResponse struct {
	Error  string  `json:"error" example:"grocery is required"` // All issues joined in field order
	Errors []Issue `json:"errors"`                              // The issues in field order
}
