// Package advisor derives the financial tips report from a profile.
//
// Rules are evaluated in a fixed order, each one independently deciding if it
// contributes a section. Sections carry data only; Format turns them into the
// markdown text shown to users.
package advisor

import (
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Kind identifies the rule that produced a section.
type Kind string

const (
	KindOverdue         Kind = "overdue"
	KindUpcoming        Kind = "upcoming"
	KindTopCategory     Kind = "top-category"
	KindNegativeBalance Kind = "negative-balance"
	KindBudgetCaution   Kind = "budget-caution"
	KindPositiveBalance Kind = "positive-balance"
	KindTips            Kind = "tips"
)

// Kinds lists all kinds in report order.
var Kinds = []Kind{
	KindOverdue,
	KindUpcoming,
	KindTopCategory,
	KindNegativeBalance,
	KindBudgetCaution,
	KindPositiveBalance,
	KindTips,
}

// Bill is an expense with a due date.
type Bill struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     types.Date      `json:"dueDate"`
	Days        int             `json:"days"` // Calendar days until the due date, negative when overdue
}

// Totals are the figures the balance commentary is based on.
type Totals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// Section is one part of the report.
type Section struct {
	Kind   Kind                  `json:"kind"`
	Bills  []Bill                `json:"bills,omitempty"`  // Set for overdue and upcoming
	Top    *ledger.CategoryTotal `json:"top,omitempty"`    // Set for top-category
	Totals *Totals               `json:"totals,omitempty"` // Set for the balance commentary
}
