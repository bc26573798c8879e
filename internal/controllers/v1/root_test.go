package v1_test

import (
	"net/http"

	v1 "github.com/salary-report/backend/internal/controllers/v1"
	"github.com/salary-report/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var r v1.Response
	test.DecodeResponse(suite.T(), &recorder, &r)

	suite.Assert().Equal("http://example.com/v1/calculations", r.Links.Calculations)
	suite.Assert().Equal("http://example.com/v1/calculations/export", r.Links.Export)
}
