package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/models"
)

type CategoryRuleEditable struct {
	Priority uint            `json:"priority" example:"3"`         // The priority of the rule. Rules with lower numbers are checked first.
	Pattern  string          `json:"pattern" example:"*UBER*"`     // The pattern to match the description against. '*' matches any sequence of characters, case is ignored.
	Category ledger.Category `json:"category" example:"Transporte"` // The category to set for matching transactions
}

func (editable CategoryRuleEditable) model() models.CategoryRule {
	return models.CategoryRule{
		Priority: editable.Priority,
		Pattern:  editable.Pattern,
		Category: editable.Category,
	}
}

type CategoryRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/category-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The category rule itself
}

// CategoryRule is the API representation of a CategoryRule.
type CategoryRule struct {
	models.DefaultModel
	CategoryRuleEditable
	Links CategoryRuleLinks `json:"links"`
}

func newCategoryRule(c *gin.Context, model models.CategoryRule) CategoryRule {
	return CategoryRule{
		DefaultModel: model.DefaultModel,
		CategoryRuleEditable: CategoryRuleEditable{
			Priority: model.Priority,
			Pattern:  model.Pattern,
			Category: model.Category,
		},
		Links: CategoryRuleLinks{
			Self: fmt.Sprintf("%s/v1/category-rules/%s", c.GetString(string(models.DBContextURL)), model.ID),
		},
	}
}

type CategoryRuleListResponse struct {
	Data       []CategoryRule `json:"data"`                                                          // List of category rules
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type CategoryRuleCreateResponse struct {
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryRuleResponse `json:"data"`                                                          // List of created category rules
}

func (m *CategoryRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, CategoryRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryRuleResponse struct {
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category rule
	Data  *CategoryRule `json:"data"`                                                          // The category rule data, if creation was successful
}

// CategoryRuleQueryFilter contains the fields that category rules can be filtered with.
type CategoryRuleQueryFilter struct {
	Priority uint            `form:"priority"`                   // By priority
	Pattern  string          `form:"pattern"`                    // By exact pattern
	Category ledger.Category `form:"category"`                   // By category
	Offset   uint            `form:"offset" filterField:"false"` // The offset of the first category rule returned. Defaults to 0.
	Limit    int             `form:"limit" filterField:"false"`  // Maximum number of category rules to return. Defaults to 50.
}

func (f CategoryRuleQueryFilter) model() models.CategoryRule {
	return models.CategoryRule{
		Priority: f.Priority,
		Pattern:  f.Pattern,
		Category: f.Category,
	}
}
