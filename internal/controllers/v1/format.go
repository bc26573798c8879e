package v1

import (
	"errors"
	"fmt"

	"github.com/salary-report/backend/internal/finance"
	"github.com/salary-report/backend/pkg/salary"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var errInvalidLocale = errors.New("the locale is not a valid BCP 47 language tag")

// printer returns a message printer for the locale. An empty locale uses English.
func printer(locale string) (*message.Printer, error) {
	if locale == "" {
		return message.NewPrinter(language.English), nil
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errInvalidLocale, locale)
	}

	return message.NewPrinter(tag), nil
}

// maxLocalized is the magnitude from which on values are formatted without
// locale. Below it, two decimal places survive the conversion to float64.
var maxLocalized = decimal.New(1, 13)

// formatAmount rounds d half away from zero to two decimal places and formats
// it for the locale of p.
func formatAmount(p *message.Printer, d decimal.Decimal) string {
	d = d.Round(2)
	if d.Abs().GreaterThanOrEqual(maxLocalized) {
		return d.StringFixed(2)
	}

	return p.Sprint(number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

func newFormatted(p *message.Printer, report finance.Report) salary.Formatted {
	return salary.Formatted{
		TotalIncome:       formatAmount(p, report.TotalIncome),
		TotalExpenses:     formatAmount(p, report.TotalExpenses),
		NetSavings:        formatAmount(p, report.NetSavings),
		SavingsPercentage: formatAmount(p, report.SavingsPercentage),
	}
}
