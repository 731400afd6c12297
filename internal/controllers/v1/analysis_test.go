package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/meu-painel/backend/internal/controllers/v1"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCombinedAnalysis() {
	p1 := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Ana"})
	p2 := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Bruno"})
	p3 := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Não combinado"})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p1.Data.ID, Type: ledger.Income, Amount: decimal.NewFromInt(3000)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p1.Data.ID, Category: ledger.CategoryFood, Amount: decimal.NewFromInt(400)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p2.Data.ID, Type: ledger.Income, Amount: decimal.NewFromInt(2000)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p2.Data.ID, Category: ledger.CategoryFood, Amount: decimal.NewFromInt(600)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p2.Data.ID, Category: ledger.CategoryHousing, Amount: decimal.NewFromInt(1500)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p3.Data.ID, Type: ledger.Income, Amount: decimal.NewFromInt(99999)})

	// The second profile is given twice, it only counts once
	path := fmt.Sprintf("http://example.com/v1/analysis/combined?profile=%s&profile=%s&profile=%s", p1.Data.ID, p2.Data.ID, p2.Data.ID)
	r := test.Request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CombinedAnalysisResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	data := response.Data
	require.Len(suite.T(), data.Profiles, 2)
	assert.Equal(suite.T(), "Ana", data.Profiles[0].Name)
	assert.True(suite.T(), data.Income.Equal(decimal.NewFromInt(5000)), data.Income.String())
	assert.True(suite.T(), data.Expense.Equal(decimal.NewFromInt(2500)), data.Expense.String())
	assert.True(suite.T(), data.Balance.Equal(decimal.NewFromInt(2500)), data.Balance.String())
	assert.True(suite.T(), data.SavingsRate.Equal(decimal.NewFromInt(50)), data.SavingsRate.String())

	totals := make(map[ledger.Category]decimal.Decimal)
	for _, c := range data.ExpenseByCategory {
		totals[c.Category] = c.Amount
	}
	assert.True(suite.T(), totals[ledger.CategoryFood].Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), totals[ledger.CategoryHousing].Equal(decimal.NewFromInt(1500)))
}

func (suite *TestSuiteStandard) TestCombinedAnalysisFails() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"No profile", "", http.StatusBadRequest},
		{"Invalid profile", fmt.Sprintf("profile=%s&profile=nope", p.Data.ID), http.StatusBadRequest},
		{"Profile does not exist", fmt.Sprintf("profile=%s&profile=%s", p.Data.ID, uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/analysis/combined?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
