package chart

import (
	"fmt"
	"io"
	"math"

	"github.com/salary-report/backend/internal/finance"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the worksheet holding the report.
const SheetName = "Report"

// Rows of the summary block. The chart references the first three.
const (
	summaryFirstRow = 8
	summaryLastRow  = 10
)

// twoDecimals is the built-in excel number format "0.00".
const twoDecimals = 2

// WriteWorkbook writes the inputs and totals of a report as XLSX workbook
// with a column chart of the salary breakdown.
func WriteWorkbook(w io.Writer, record finance.Record, report finance.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	rows := [][]any{{"Field", "Amount"}}
	for _, field := range finance.Fields {
		rows = append(rows, []any{string(field), cellValue(record.Amount(field))})
	}

	// Row 7 stays empty to separate inputs from the summary
	rows = append(rows, []any{})

	values := Values(report)
	for i, label := range Labels {
		rows = append(rows, []any{label, cellValue(values[i])})
	}
	rows = append(rows, []any{"Savings (%)", cellValue(report.SavingsPercentage)})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: twoDecimals})
	if err != nil {
		return err
	}

	if err := f.SetCellStyle(SheetName, "B2", fmt.Sprintf("B%d", len(rows)), style); err != nil {
		return err
	}

	err = f.AddChart(SheetName, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{
				Name:       "Amount ($)",
				Categories: fmt.Sprintf("%s!$A$%d:$A$%d", SheetName, summaryFirstRow, summaryLastRow),
				Values:     fmt.Sprintf("%s!$B$%d:$B$%d", SheetName, summaryFirstRow, summaryLastRow),
			},
		},
		Title:  []excelize.RichTextRun{{Text: "Salary Breakdown"}},
		Legend: excelize.ChartLegend{Position: "none"},
	})
	if err != nil {
		return fmt.Errorf("adding chart: %w", err)
	}

	_, err = f.WriteTo(w)
	return err
}

// cellValue returns d as number. Spreadsheet numbers are float64, amounts
// beyond that range are written as text.
func cellValue(d decimal.Decimal) any {
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return d.String()
	}
	return f
}
