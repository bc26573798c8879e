package v1_test

import (
	"bytes"
	"net/http"

	"github.com/salary-report/backend/internal/chart"
	"github.com/salary-report/backend/pkg/salary"
	"github.com/salary-report/backend/test"
	"github.com/xuri/excelize/v2"
)

const exportURL = "http://example.com/v1/calculations/export"

func (suite *TestSuiteStandard) TestExport() {
	body := `{"basic_salary": 5000, "incentives": 500, "spends": 1000, "recharge": 200, "grocery": 300}`

	recorder := test.Request(suite.T(), http.MethodPost, exportURL, body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
	suite.Assert().Equal("attachment; filename=salary-report.xlsx", recorder.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(recorder.Body.Bytes()))
	suite.Require().Nil(err)
	defer f.Close()

	recharges, err := f.GetCellValue(chart.SheetName, "B5")
	suite.Require().Nil(err)
	suite.Assert().Equal("200.00", recharges)

	savings, err := f.GetCellValue(chart.SheetName, "B10")
	suite.Require().Nil(err)
	suite.Assert().Equal("4000.00", savings)
}

func (suite *TestSuiteStandard) TestExportValidation() {
	recorder := test.Request(suite.T(), http.MethodPost, exportURL, `{"basic_salary": "five thousand"}`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnprocessableEntity)

	var r salary.ValidationResponse
	test.DecodeResponse(suite.T(), &recorder, &r)

	suite.Require().Len(r.Errors, 5)
	suite.Assert().Equal("NOT_A_NUMBER", r.Errors[0].Reason)
	suite.Assert().Equal("incentives is required", r.Errors[1].Message)
}

func (suite *TestSuiteStandard) TestExportEmptyBody() {
	recorder := test.Request(suite.T(), http.MethodPost, exportURL, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
