package v1_test

import (
	"net/http"
	"path/filepath"
	"testing"

	v1 "github.com/meu-painel/backend/internal/controllers/v1"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCleanup() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p.Data.ID, Amount: decimal.NewFromInt(10)})
	_ = createTestGoal(suite.T(), v1.GoalEditable{ProfileID: p.Data.ID})
	_ = createTestCategoryRule(suite.T(), v1.CategoryRuleEditable{Pattern: "*UBER*"})
	require.NoError(suite.T(), models.SetTheme(models.DB, models.ThemeDark))

	file := filepath.Join(v1.Snapshots.Dir, p.Data.ID.String()+".json")
	require.FileExists(suite.T(), file)

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	paths := []string{
		"http://example.com/v1/profiles",
		"http://example.com/v1/transactions",
		"http://example.com/v1/goals",
		"http://example.com/v1/category-rules",
	}

	for _, path := range paths {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", path)
		})
	}

	theme, err := models.GetTheme(models.DB)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ThemeSystem, theme)

	assert.NoFileExists(suite.T(), file)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "http://example.com/v1?confirm=invalid-value"},
		{"Confirmation missing", "http://example.com/v1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
