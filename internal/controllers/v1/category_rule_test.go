package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/meu-painel/backend/internal/controllers/v1"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryRulesCreate() {
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 1, Pattern: " *UBER* ", Category: ledger.CategoryTransport})

	assert.Equal(suite.T(), "*UBER*", rule.Data.Pattern)
	assert.Equal(suite.T(), ledger.CategoryTransport, rule.Data.Category)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/category-rules/%s", rule.Data.ID), rule.Data.Links.Self)

	// An empty category is stored as "Outros"
	other := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Pattern: "*PIX*"})
	assert.Equal(suite.T(), ledger.CategoryOther, other.Data.Category)
}

func (suite *TestSuiteStandard) TestCategoryRulesCreateFails() {
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Pattern: "*UBER*", Category: ledger.CategoryTransport})

	tests := []struct {
		name     string
		editable v1.CategoryRuleEditable
		err      error
	}{
		{"Empty pattern", v1.CategoryRuleEditable{Pattern: " ", Category: ledger.CategoryFood}, models.ErrCategoryRulePatternEmpty},
		{"Duplicate pattern", v1.CategoryRuleEditable{Pattern: "*UBER*", Category: ledger.CategoryLeisure}, models.ErrCategoryRulePatternNotUnique},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/category-rules", []v1.CategoryRuleEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.CategoryRuleCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRulesGetList() {
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 5, Pattern: "*IFOOD*", Category: ledger.CategoryFood})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 1, Pattern: "*UBER*", Category: ledger.CategoryTransport})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Priority: 5, Pattern: "*MERCADO*", Category: ledger.CategoryFood})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/category-rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	patterns := make([]string, 0, len(response.Data))
	for _, rule := range response.Data {
		patterns = append(patterns, rule.Pattern)
	}
	assert.Equal(suite.T(), []string{"*UBER*", "*IFOOD*", "*MERCADO*"}, patterns, "rules are sorted by priority, then creation")

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Priority", "priority=5", 2},
		{"Pattern", "pattern=*UBER*", 1},
		{"Category", "category=Transporte", 1},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=1", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/category-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryRuleListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryRulesUpdate() {
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Pattern: "*UBER*", Category: ledger.CategoryTransport})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Pattern: "*99*", Category: ledger.CategoryTransport})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{"category": "Lazer", "priority": 3})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CategoryRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), ledger.CategoryLeisure, updated.Data.Category)
	assert.Equal(suite.T(), uint(3), updated.Data.Priority)
	assert.Equal(suite.T(), "*UBER*", updated.Data.Pattern)

	r = test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, `{"pattern": "*99*"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, `{"pattern": ""}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/category-rules/%s", uuid.New()), `{"pattern": "*"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryRulesDelete() {
	rule := createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Pattern: "*UBER*"})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The pattern can be used again
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Pattern: "*UBER*"})
}
