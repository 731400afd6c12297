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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGoalsCreate() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})
	g := createTestGoal(suite.T(), v1.GoalEditable{ProfileID: p.Data.ID, Name: " Reserva de emergência ", TargetAmount: decimal.NewFromInt(6000)})

	assert.Equal(suite.T(), "Reserva de emergência", g.Data.Name)
	assert.True(suite.T(), g.Data.CurrentAmount.IsZero())
	assert.True(suite.T(), g.Data.Progress.IsZero())
	assert.False(suite.T(), g.Data.Achieved)
	assert.Equal(suite.T(), g.Data.Links.Self+"/deposits", g.Data.Links.Deposits)

	doc := v1.Snapshots.Load(p.Data.ID.String())
	require.Len(suite.T(), doc.SavingsGoals, 1)
	assert.Equal(suite.T(), "Reserva de emergência", doc.SavingsGoals[0].Name)
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	p := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name     string
		editable v1.GoalEditable
		status   int
	}{
		{"Empty name", v1.GoalEditable{ProfileID: p.Data.ID, Name: "  ", TargetAmount: decimal.NewFromInt(100)}, http.StatusBadRequest},
		{"Zero target", v1.GoalEditable{ProfileID: p.Data.ID, Name: "Carro"}, http.StatusBadRequest},
		{"Negative target", v1.GoalEditable{ProfileID: p.Data.ID, Name: "Carro", TargetAmount: decimal.NewFromInt(-100)}, http.StatusBadRequest},
		{"Profile does not exist", v1.GoalEditable{ProfileID: uuid.New(), Name: "Carro", TargetAmount: decimal.NewFromInt(100)}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", []v1.GoalEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", `{"name": "not a list"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsGetList() {
	p1 := createTestProfile(suite.T(), v1.ProfileEditable{})
	p2 := createTestProfile(suite.T(), v1.ProfileEditable{})

	_ = createTestGoal(suite.T(), v1.GoalEditable{ProfileID: p1.Data.ID, Name: "Viagem para Salvador"})
	_ = createTestGoal(suite.T(), v1.GoalEditable{ProfileID: p1.Data.ID, Name: "Carro"})
	_ = createTestGoal(suite.T(), v1.GoalEditable{ProfileID: p2.Data.ID, Name: "Viagem"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Profile", fmt.Sprintf("profile=%s", p1.Data.ID), 2},
		{"Name", "name=Viagem", 1},
		{"Search", "search=viagem", 2},
		{"Search and profile", fmt.Sprintf("search=viagem&profile=%s", p2.Data.ID), 1},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.GoalListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?profile=%s", p1.Data.ID), "")
	var response v1.GoalListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Viagem para Salvador", response.Data[0].Name, "goals are listed in creation order")

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals?profile=nope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsGet() {
	g := createTestGoal(suite.T(), v1.GoalEditable{})

	r := test.Request(suite.T(), http.MethodGet, g.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "there is no goal matching your query", *response.Error)
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	g := createTestGoal(suite.T(), v1.GoalEditable{Name: "Viagem", TargetAmount: decimal.NewFromInt(1000)})

	r := test.Request(suite.T(), http.MethodPatch, g.Data.Links.Self, map[string]any{"name": "Viagem para Recife"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "Viagem para Recife", updated.Data.Name)
	assert.True(suite.T(), updated.Data.TargetAmount.Equal(decimal.NewFromInt(1000)))

	// Sending the unchanged values is fine
	r = test.Request(suite.T(), http.MethodPatch, g.Data.Links.Self, map[string]any{"targetAmount": "1000", "profileId": g.Data.ProfileID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	doc := v1.Snapshots.Load(g.Data.ProfileID.String())
	assert.Equal(suite.T(), "Viagem para Recife", doc.SavingsGoals[0].Name)
}

func (suite *TestSuiteStandard) TestGoalsUpdateFails() {
	g := createTestGoal(suite.T(), v1.GoalEditable{})
	other := createTestProfile(suite.T(), v1.ProfileEditable{})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		err    string
	}{
		{"Target changed", g.Data.Links.Self, `{"targetAmount": "2000"}`, http.StatusBadRequest, models.ErrGoalTargetImmutable.Error()},
		{"Profile changed", g.Data.Links.Self, map[string]any{"profileId": other.Data.ID}, http.StatusBadRequest, "the profile of a goal cannot be changed"},
		{"Empty name", g.Data.Links.Self, `{"name": ""}`, http.StatusBadRequest, ledger.ErrGoalNameEmpty.Error()},
		{"Broken body", g.Data.Links.Self, `{"name": 1}`, http.StatusBadRequest, ""},
		{"Does not exist", fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), `{"name": "Carro"}`, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.err != "" {
				var response v1.GoalResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.err, *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsDeposit() {
	g := createTestGoal(suite.T(), v1.GoalEditable{Name: "Viagem", TargetAmount: decimal.NewFromInt(200)})

	r := test.Request(suite.T(), http.MethodPost, g.Data.Links.Deposits, `{"amount": "150"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var deposit v1.DepositResponse
	test.DecodeResponse(suite.T(), &r, &deposit)
	require.NotNil(suite.T(), deposit.Data)
	assert.True(suite.T(), deposit.Data.Goal.CurrentAmount.Equal(decimal.NewFromInt(150)))
	assert.True(suite.T(), deposit.Data.Goal.Progress.Equal(decimal.NewFromInt(75)))
	assert.False(suite.T(), deposit.Data.Goal.Achieved)

	transaction := deposit.Data.Transaction
	assert.Equal(suite.T(), "Depósito na meta Viagem", transaction.Description)
	assert.Equal(suite.T(), ledger.Expense, transaction.Type)
	assert.Equal(suite.T(), ledger.CategorySavings, transaction.Category)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromInt(150)))
	assert.Nil(suite.T(), transaction.DueDate)

	// Deposits can go past the target
	r = test.Request(suite.T(), http.MethodPost, g.Data.Links.Deposits, `{"amount": "100"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	test.DecodeResponse(suite.T(), &r, &deposit)
	assert.True(suite.T(), deposit.Data.Goal.CurrentAmount.Equal(decimal.NewFromInt(250)))
	assert.True(suite.T(), deposit.Data.Goal.Progress.Equal(decimal.NewFromInt(125)), "progress is not capped")
	assert.True(suite.T(), deposit.Data.Goal.Achieved)

	doc := v1.Snapshots.Load(g.Data.ProfileID.String())
	assert.Len(suite.T(), doc.Transactions, 2)
	assert.True(suite.T(), ledger.Balance(doc.Transactions).Equal(decimal.NewFromInt(-250)))
}

func (suite *TestSuiteStandard) TestGoalsDepositFails() {
	g := createTestGoal(suite.T(), v1.GoalEditable{})

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"Zero", g.Data.Links.Deposits, `{"amount": "0"}`, http.StatusBadRequest},
		{"Negative", g.Data.Links.Deposits, `{"amount": "-1"}`, http.StatusBadRequest},
		{"No body", g.Data.Links.Deposits, "", http.StatusBadRequest},
		{"Not a number", g.Data.Links.Deposits, `{"amount": "muito"}`, http.StatusBadRequest},
		{"Goal does not exist", fmt.Sprintf("http://example.com/v1/goals/%s/deposits", uuid.New()), `{"amount": "10"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, g.Data.Links.Self, "")
	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.CurrentAmount.IsZero())
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	g := createTestGoal(suite.T(), v1.GoalEditable{})

	r := test.Request(suite.T(), http.MethodPost, g.Data.Links.Deposits, `{"amount": "10"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodDelete, g.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, g.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	doc := v1.Snapshots.Load(g.Data.ProfileID.String())
	assert.Empty(suite.T(), doc.SavingsGoals)
	assert.Len(suite.T(), doc.Transactions, 1, "deposit expenses are kept")
}

func (suite *TestSuiteStandard) TestGoalsDatabaseError() {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"GET Collection", http.MethodGet, "http://example.com/v1/goals"},
		{"GET Single", http.MethodGet, fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New())},
		{"POST Deposit", http.MethodPost, fmt.Sprintf("http://example.com/v1/goals/%s/deposits", uuid.New())},
		{"DELETE Single", http.MethodDelete, fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New())},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, tt.method, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}
