package finance

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Report contains the totals derived from a Record.
type Report struct {
	TotalIncome       decimal.Decimal `json:"total_income"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	NetSavings        decimal.Decimal `json:"net_savings"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`
}

// Aggregate computes the Report for a Record.
//
// Values are not rounded. SavingsPercentage is zero when there is no income.
func Aggregate(r Record) Report {
	income := r.Amount(BasicSalary).Add(r.Amount(Incentives))
	expenses := r.Amount(Spends).Add(r.Amount(Recharges)).Add(r.Amount(Grocery))
	net := income.Sub(expenses)

	percentage := decimal.Zero
	if !income.IsZero() {
		percentage = net.Mul(hundred).Div(income)
	}

	return Report{
		TotalIncome:       income,
		TotalExpenses:     expenses,
		NetSavings:        net,
		SavingsPercentage: percentage,
	}
}

// Calculate validates the input and aggregates it.
func Calculate(raw RawInput) (Report, error) {
	record, err := Validate(raw)
	if err != nil {
		return Report{}, err
	}

	return Aggregate(record), nil
}
