package v1_test

import (
	"net/http"

	v1 "github.com/meu-painel/backend/internal/controllers/v1"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoriesGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?type=income", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), ledger.SuggestedCategories(ledger.Income), response.Data)
	assert.Contains(suite.T(), response.Data, ledger.CategorySalary)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?type=expense", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), response.Data, ledger.CategoryFood)
	assert.NotContains(suite.T(), response.Data, ledger.CategorySalary)
}

func (suite *TestSuiteStandard) TestCategoriesGetInvalidType() {
	for _, path := range []string{
		"http://example.com/v1/categories",
		"http://example.com/v1/categories?type=transfer",
	} {
		r := test.Request(suite.T(), http.MethodGet, path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var response v1.CategoryListResponse
		test.DecodeResponse(suite.T(), &r, &response)
		assert.Equal(suite.T(), "the type must be one of 'income' or 'expense'", *response.Error)
	}
}
