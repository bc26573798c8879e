package chart_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/salary-report/backend/internal/chart"
	"github.com/salary-report/backend/internal/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func calculate(t *testing.T, input map[string]any) (finance.Record, finance.Report) {
	record, err := finance.Validate(finance.ParseRawInput(input))
	require.Nil(t, err)
	return record, finance.Aggregate(record)
}

func TestNewBar(t *testing.T) {
	_, report := calculate(t, map[string]any{"basic_salary": 1000, "incentives": 0, "spends": 2000, "recharges": 0, "grocery": 0})

	bar := chart.NewBar(report)
	assert.Equal(t, []string{"Income", "Expenses", "Savings"}, bar.Labels)
	require.Len(t, bar.Datasets, 1)
	require.Len(t, bar.Datasets[0].Data, 3)
	for i, expected := range []string{"1000", "2000", "-1000"} {
		assert.Equal(t, expected, bar.Datasets[0].Data[i].String())
	}
	assert.Len(t, bar.Datasets[0].BackgroundColor, 3)
	assert.Len(t, bar.Datasets[0].BorderColor, 3)

	out, err := json.Marshal(bar)
	require.Nil(t, err)
	assert.Contains(t, string(out), `"backgroundColor"`)
	assert.Contains(t, string(out), `"label":"Amount ($)"`)
	assert.Contains(t, string(out), `"data":[1000,2000,-1000]`)
}

func TestNewBarBeyondFloatRange(t *testing.T) {
	_, report := calculate(t, map[string]any{"basic_salary": "1e308", "incentives": "1e308", "spends": 0, "recharges": 0, "grocery": 0})

	out, err := json.Marshal(chart.NewBar(report))
	require.Nil(t, err)
	assert.Contains(t, string(out), `"data":[2`+strings.Repeat("0", 308)+`,0,2`)
}

func TestWriteWorkbookBeyondFloatRange(t *testing.T) {
	record, report := calculate(t, map[string]any{"basic_salary": "1e308", "incentives": "1e308", "spends": 0, "recharges": 0, "grocery": 0})

	var buf bytes.Buffer
	require.Nil(t, chart.WriteWorkbook(&buf, record, report))

	f, err := excelize.OpenReader(&buf)
	require.Nil(t, err)
	defer f.Close()

	income, err := f.GetCellValue(chart.SheetName, "B8")
	require.Nil(t, err)
	assert.Equal(t, "2"+strings.Repeat("0", 308), income)
}

func TestWriteWorkbook(t *testing.T) {
	record, report := calculate(t, map[string]any{"basic_salary": 5000, "incentives": 500, "spends": 1000, "recharges": 200, "grocery": 300})

	var buf bytes.Buffer
	require.Nil(t, chart.WriteWorkbook(&buf, record, report))

	f, err := excelize.OpenReader(&buf)
	require.Nil(t, err)
	defer f.Close()

	assert.Equal(t, []string{chart.SheetName}, f.GetSheetList())

	tests := []struct {
		cell  string
		value string
	}{
		{"A2", "basic_salary"},
		{"A6", "grocery"},
		{"A8", "Income"},
		{"B8", "5500.00"},
		{"A9", "Expenses"},
		{"B9", "1500.00"},
		{"A10", "Savings"},
		{"B10", "4000.00"},
		{"A11", "Savings (%)"},
		{"B11", "72.73"},
	}

	for _, tt := range tests {
		v, err := f.GetCellValue(chart.SheetName, tt.cell)
		require.Nil(t, err)
		assert.Equal(t, tt.value, v, "cell %s", tt.cell)
	}
}
