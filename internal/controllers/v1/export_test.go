package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/meu-painel/backend/internal/controllers/v1"
	"github.com/meu-painel/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExport() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Casa"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p.Data.ID, Amount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "GNU Terry Pratchett", response.Clacks)
	assert.False(suite.T(), response.CreationTime.IsZero())

	for _, name := range []string{"CategoryRule", "Goal", "Preference", "Profile", "Transaction"} {
		assert.Contains(suite.T(), response.Data, name)
	}

	var profiles []map[string]any
	require.NoError(suite.T(), json.Unmarshal(response.Data["Profile"], &profiles))
	require.Len(suite.T(), profiles, 1)
	assert.Equal(suite.T(), "Casa", profiles[0]["Name"])

	var transactions []map[string]any
	require.NoError(suite.T(), json.Unmarshal(response.Data["Transaction"], &transactions))
	assert.Len(suite.T(), transactions, 1)
}

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExportDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
