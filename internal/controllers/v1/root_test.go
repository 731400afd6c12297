package v1_test

import (
	"net/http"

	v1 "github.com/meu-painel/backend/internal/controllers/v1"
	"github.com/meu-painel/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		Profiles:      "http://example.com/v1/profiles",
		Transactions:  "http://example.com/v1/transactions",
		Goals:         "http://example.com/v1/goals",
		Categories:    "http://example.com/v1/categories",
		CategoryRules: "http://example.com/v1/category-rules",
		Analysis:      "http://example.com/v1/analysis/combined",
		Import:        "http://example.com/v1/import",
		Preferences:   "http://example.com/v1/preferences",
		Export:        "http://example.com/v1/export",
	}, response.Links)
}
