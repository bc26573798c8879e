// Package chart renders reports as chart payloads and spreadsheets.
package chart

import (
	"github.com/salary-report/backend/internal/finance"
	"github.com/salary-report/backend/pkg/salary"
	"github.com/shopspring/decimal"
)

// Labels are the categories shown in the salary breakdown, in order.
var Labels = []string{"Income", "Expenses", "Savings"}

var (
	backgroundColors = []string{"rgba(73,192,192,0.6)", "rgba(255,99,132,0.6)", "rgba(54,162,235,0.6)"}
	borderColors     = []string{"rgba(75,192,192,1)", "rgba(255,99,132,1)", "rgba(54,162,235,1)"}
)

// Values returns income, expenses and savings of a report in the order of Labels.
func Values(r finance.Report) []decimal.Decimal {
	return []decimal.Decimal{
		r.TotalIncome,
		r.TotalExpenses,
		r.NetSavings,
	}
}

// NewBar returns the salary breakdown of a report as bar chart.
func NewBar(r finance.Report) salary.Bar {
	values := Values(r)
	data := make([]salary.Amount, 0, len(values))
	for _, v := range values {
		data = append(data, salary.NewAmount(v))
	}

	return salary.Bar{
		Labels: Labels,
		Datasets: []salary.Dataset{
			{
				Label:           "Amount ($)",
				Data:            data,
				BackgroundColor: backgroundColors,
				BorderColor:     borderColors,
				BorderWidth:     1,
			},
		},
	}
}
