package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/meu-painel/backend/internal/controllers/v1"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/types"
	"github.com/meu-painel/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	t := createTestTransaction(suite.T(), v1.TransactionEditable{
		ProfileID:   p.Data.ID,
		Description: "  Conta de luz ",
		Amount:      decimal.NewFromFloat(149.9),
		Category:    "",
		DueDate:     dueDate(2024, time.June, 10),
	})

	assert.Equal(suite.T(), "Conta de luz", t.Data.Description)
	assert.Equal(suite.T(), ledger.CategoryOther, t.Data.Category, "empty categories default to Outros")
	assert.False(suite.T(), t.Data.Date.IsZero(), "the date defaults to now")
	require.NotNil(suite.T(), t.Data.DueDate)
	assert.Equal(suite.T(), types.NewDate(2024, time.June, 10), *t.Data.DueDate)
	assert.True(suite.T(), t.Data.Overdue)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/profiles/%s", p.Data.ID), t.Data.Links.Profile)

	// Income never carries a due date
	income := createTestTransaction(suite.T(), v1.TransactionEditable{
		ProfileID: p.Data.ID,
		Type:      ledger.Income,
		Amount:    decimal.NewFromInt(3000),
		DueDate:   dueDate(2024, time.June, 10),
	})
	assert.Nil(suite.T(), income.Data.DueDate)
	assert.False(suite.T(), income.Data.Overdue)

	doc := v1.Snapshots.Load(p.Data.ID.String())
	assert.Len(suite.T(), doc.Transactions, 2)
}

func (suite *TestSuiteStandard) TestTransactionsCreateFails() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name     string
		editable v1.TransactionEditable
		status   int
		err      error
	}{
		{"Empty description", v1.TransactionEditable{ProfileID: p.Data.ID, Description: " ", Type: ledger.Expense, Amount: decimal.NewFromInt(10)}, http.StatusBadRequest, ledger.ErrDescriptionEmpty},
		{"Zero amount", v1.TransactionEditable{ProfileID: p.Data.ID, Description: "Mercado", Type: ledger.Expense}, http.StatusBadRequest, ledger.ErrAmountNotPositive},
		{"Negative amount", v1.TransactionEditable{ProfileID: p.Data.ID, Description: "Mercado", Type: ledger.Expense, Amount: decimal.NewFromInt(-5)}, http.StatusBadRequest, ledger.ErrAmountNotPositive},
		{"Invalid type", v1.TransactionEditable{ProfileID: p.Data.ID, Description: "Mercado", Type: "transfer", Amount: decimal.NewFromInt(5)}, http.StatusBadRequest, ledger.ErrTransactionTypeInvalid},
		{"Profile does not exist", v1.TransactionEditable{ProfileID: uuid.New(), Description: "Mercado", Type: ledger.Expense, Amount: decimal.NewFromInt(5)}, http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			require.NotNil(t, response.Data[0].Error)

			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
			}
		})
	}

	doc := v1.Snapshots.Load(p.Data.ID.String())
	assert.Empty(suite.T(), doc.Transactions, "nothing is persisted for failed creations")
}

func (suite *TestSuiteStandard) TestTransactionsCreateMixed() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{
		{ProfileID: p.Data.ID, Description: "Mercado", Type: ledger.Expense, Amount: decimal.NewFromInt(10)},
		{ProfileID: uuid.New(), Description: "Mercado", Type: ledger.Expense, Amount: decimal.NewFromInt(10)},
		{ProfileID: p.Data.ID, Description: "", Type: ledger.Expense, Amount: decimal.NewFromInt(10)},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.NotNil(suite.T(), response.Data[1].Error)
	assert.NotNil(suite.T(), response.Data[2].Error)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", `{"description": "not a list"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsGetSorted() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p.Data.ID, Description: "Segundo", Amount: decimal.NewFromInt(1), Date: base.Add(24 * time.Hour)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p.Data.ID, Description: "Primeiro", Amount: decimal.NewFromInt(1), Date: base})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p.Data.ID, Description: "Terceiro", Amount: decimal.NewFromInt(1), Date: base.Add(48 * time.Hour)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?profile=%s", p.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	descriptions := make([]string, 0, len(response.Data))
	for _, t := range response.Data {
		descriptions = append(descriptions, t.Description)
	}
	assert.Equal(suite.T(), []string{"Terceiro", "Segundo", "Primeiro"}, descriptions)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	p1 := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Casa"})
	p2 := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Trabalho"})

	past := types.DateOf(time.Now().AddDate(0, 0, -3))
	future := types.DateOf(time.Now().AddDate(0, 0, 3))

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p1.Data.ID, Description: "Salário", Type: ledger.Income, Category: ledger.CategorySalary, Amount: decimal.NewFromInt(3000)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p1.Data.ID, Description: "Conta de luz", Category: ledger.CategoryBills, Amount: decimal.NewFromInt(150), DueDate: &past})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p1.Data.ID, Description: "Internet", Category: ledger.CategoryBills, Amount: decimal.NewFromInt(100), DueDate: &future})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p2.Data.ID, Description: "Mercado", Category: ledger.CategoryFood, Amount: decimal.NewFromInt(200)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Profile 1", fmt.Sprintf("profile=%s", p1.Data.ID), 3},
		{"Profile 2", fmt.Sprintf("profile=%s", p2.Data.ID), 1},
		{"Income", "type=income", 1},
		{"Expense", "type=expense", 3},
		{"Bills", "category=Contas", 2},
		{"Category and profile", fmt.Sprintf("category=Contas&profile=%s", p2.Data.ID), 0},
		{"Search", "search=conta", 1},
		{"Search no match", "search=aluguel", 0},
		{"Overdue", "overdue=true", 1},
		{"Not overdue", "overdue=false", 3},
		{"Due from today", fmt.Sprintf("dueFrom=%s", types.DateOf(time.Now())), 1},
		{"Due until today", fmt.Sprintf("dueUntil=%s", types.DateOf(time.Now())), 1},
		{"Due range", fmt.Sprintf("dueFrom=%s&dueUntil=%s", past, future), 2},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=3", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len, "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?overdue=true", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Conta de luz", response.Data[0].Description)
	assert.True(suite.T(), response.Data[0].Overdue)
	assert.Equal(suite.T(), int64(1), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestTransactionsGetFilterInvalid() {
	tests := []string{
		"profile=NotAUUID",
		"offset=-1",
		"overdue=maybe",
		"dueFrom=10/06/2024",
	}

	for _, query := range tests {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGet() {
	t := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(42)})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Exists", t.Data.Links.Self, http.StatusOK},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), http.StatusNotFound},
		{"Invalid UUID", "http://example.com/v1/transactions/Transaction", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	t := createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p.Data.ID, Amount: decimal.NewFromInt(42), DueDate: dueDate(2024, time.June, 10)})

	r := test.Request(suite.T(), http.MethodPatch, t.Data.Links.Self, map[string]any{
		"description": "Feira",
		"amount":      "55.5",
		"category":    "Alimentação",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Feira", updated.Data.Description)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromFloat(55.5)))
	assert.Equal(suite.T(), ledger.CategoryFood, updated.Data.Category)
	assert.NotNil(suite.T(), updated.Data.DueDate, "fields not sent are kept")
	assert.True(suite.T(), updated.Data.Date.Equal(t.Data.Date))

	// Sending the unchanged date is fine
	r = test.Request(suite.T(), http.MethodPatch, t.Data.Links.Self, map[string]any{"date": t.Data.Date})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// A zero date is treated as not sent
	r = test.Request(suite.T(), http.MethodPatch, t.Data.Links.Self, map[string]any{"date": time.Time{}, "description": "Feira livre"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Feira livre", updated.Data.Description)
	assert.True(suite.T(), updated.Data.Date.Equal(t.Data.Date))

	// Changing the type to income drops the due date
	r = test.Request(suite.T(), http.MethodPatch, t.Data.Links.Self, map[string]any{"type": "income"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Nil(suite.T(), updated.Data.DueDate)

	doc := v1.Snapshots.Load(p.Data.ID.String())
	require.Len(suite.T(), doc.Transactions, 1)
	assert.Equal(suite.T(), ledger.Income, doc.Transactions[0].Type)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateMoveProfile() {
	p1 := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Casa"})
	p2 := createTestProfile(suite.T(), v1.ProfileEditable{Name: "Trabalho"})
	t := createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p1.Data.ID, Amount: decimal.NewFromInt(42)})

	r := test.Request(suite.T(), http.MethodPatch, t.Data.Links.Self, map[string]any{"profileId": p2.Data.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var moved v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &moved)
	assert.Equal(suite.T(), p2.Data.ID, moved.Data.ProfileID)
	assert.True(suite.T(), moved.Data.Date.Equal(t.Data.Date))

	assert.Empty(suite.T(), v1.Snapshots.Load(p1.Data.ID.String()).Transactions)
	assert.Len(suite.T(), v1.Snapshots.Load(p2.Data.ID.String()).Transactions, 1)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateFails() {
	t := createTestTransaction(suite.T(), v1.TransactionEditable{Amount: decimal.NewFromInt(42)})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid type", t.Data.Links.Self, `{"type": "transfer"}`, http.StatusBadRequest},
		{"Empty description", t.Data.Links.Self, `{"description": ""}`, http.StatusBadRequest},
		{"Zero amount", t.Data.Links.Self, `{"amount": "0"}`, http.StatusBadRequest},
		{"Date changed", t.Data.Links.Self, map[string]any{"date": t.Data.Date.Add(-time.Hour)}, http.StatusBadRequest},
		{"Broken body", t.Data.Links.Self, `{"description": 2}`, http.StatusBadRequest},
		{"Profile does not exist", t.Data.Links.Self, map[string]any{"profileId": uuid.New()}, http.StatusNotFound},
		{"Transaction does not exist", fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), `{"description": "Feira"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, t.Data.Links.Self, "")
	var unchanged v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &unchanged)
	assert.Equal(suite.T(), "Mercado", unchanged.Data.Description)
	assert.True(suite.T(), unchanged.Data.Amount.Equal(decimal.NewFromInt(42)))
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	t := createTestTransaction(suite.T(), v1.TransactionEditable{ProfileID: p.Data.ID, Amount: decimal.NewFromInt(42)})
	require.Len(suite.T(), v1.Snapshots.Load(p.Data.ID.String()).Transactions, 1)

	r := test.Request(suite.T(), http.MethodDelete, t.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, t.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	assert.Empty(suite.T(), v1.Snapshots.Load(p.Data.ID.String()).Transactions)

	r = test.Request(suite.T(), http.MethodDelete, t.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDatabaseError() {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"GET Collection", http.MethodGet, "http://example.com/v1/transactions"},
		{"GET Single", http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New())},
		{"PATCH Single", http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New())},
		{"DELETE Single", http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New())},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, tt.method, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}
