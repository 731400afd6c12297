package v1_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/meu-painel/backend/internal/controllers/v1"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/test"
	"github.com/shopspring/decimal"
)

func createTestProfile(t *testing.T, c v1.ProfileEditable, expectedStatus ...int) v1.ProfileResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	requestBody := []v1.ProfileEditable{c}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/profiles", requestBody)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var response v1.ProfileCreateResponse
	test.DecodeResponse(t, &recorder, &response)

	return response.Data[0]
}

func createTestTransaction(t *testing.T, c v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	if c.ProfileID == uuid.Nil {
		c.ProfileID = createTestProfile(t, v1.ProfileEditable{}).Data.ID
	}

	if c.Description == "" {
		c.Description = "Mercado"
	}

	if c.Type == "" {
		c.Type = ledger.Expense
	}

	requestBody := []v1.TransactionEditable{c}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", requestBody)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(t, &recorder, &response)

	return response.Data[0]
}

func createTestGoal(t *testing.T, c v1.GoalEditable, expectedStatus ...int) v1.GoalResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	if c.ProfileID == uuid.Nil {
		c.ProfileID = createTestProfile(t, v1.ProfileEditable{}).Data.ID
	}

	if c.Name == "" {
		c.Name = "Viagem"
	}

	if c.TargetAmount.IsZero() {
		c.TargetAmount = decimal.NewFromInt(1000)
	}

	requestBody := []v1.GoalEditable{c}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/goals", requestBody)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var response v1.GoalCreateResponse
	test.DecodeResponse(t, &recorder, &response)

	return response.Data[0]
}

func createTestCategoryRule(t *testing.T, c v1.CategoryRuleEditable, expectedStatus ...int) v1.CategoryRuleResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	requestBody := []v1.CategoryRuleEditable{c}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/category-rules", requestBody)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var response v1.CategoryRuleCreateResponse
	test.DecodeResponse(t, &recorder, &response)

	return response.Data[0]
}
