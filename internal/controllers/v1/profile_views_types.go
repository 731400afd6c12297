package v1

import (
	"github.com/meu-painel/backend/internal/advisor"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/savings"
	"github.com/shopspring/decimal"
)

// maxHistoryMonths is the longest balance history that can be requested.
const maxHistoryMonths = 24

type AnalysisQueryFilter struct {
	Month  string `form:"month" example:"2024-06"` // The last month of the balance history. Defaults to the current month.
	Months int    `form:"months" example:"6"`      // Number of months in the balance history. Defaults to 6.
}

// Analysis contains the dashboard figures of a profile.
type Analysis struct {
	ledger.Summary
	SavingsRateBand       ledger.SavingsBand     `json:"savingsRateBand" example:"boa"`              // Classification of the savings rate
	SpendingControl       ledger.SpendingStatus  `json:"spendingControl" example:"controlado"`       // Classification of expenses relative to income
	AverageMonthlyExpense decimal.Decimal        `json:"averageMonthlyExpense" example:"512.5"`      // Expenses divided by the months of the history
	BiggestExpense        *ledger.Transaction    `json:"biggestExpense"`                             // The largest single expense, if there is one
	TopCategory           *ledger.CategoryTotal  `json:"topCategory"`                                // The category with the highest expenses, if there is one
	History               []ledger.MonthBalance  `json:"history"`                                    // Balance per month, oldest first
	Categories            []ledger.CategoryShare `json:"categories"`                                 // All expense categories, largest first
	TopCategories         []ledger.CategoryShare `json:"topCategories"`                              // The five largest expense categories
}

type AnalysisResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Analysis `json:"data"`                                                          // The analysis
}

type AdviceQueryFilter struct {
	Date string `form:"date" example:"2024-06-15"` // The date the report is created for. Defaults to today.
}

// AdviceSection is one section of the advisory report. Which fields are set
// depends on the kind.
type AdviceSection struct {
	Kind     advisor.Kind     `json:"kind" example:"overdue"`
	Bills    []advisor.Bill   `json:"bills,omitempty"`
	Category *ledger.Category `json:"category,omitempty" example:"Alimentação"`
	Amount   *decimal.Decimal `json:"amount,omitempty" example:"350.5"`
	Income   *decimal.Decimal `json:"income,omitempty" example:"3000"`
	Expense  *decimal.Decimal `json:"expense,omitempty" example:"2450"`
	Balance  *decimal.Decimal `json:"balance,omitempty" example:"550"`
}

func newAdviceSection(s advisor.Section) AdviceSection {
	section := AdviceSection{
		Kind:  s.Kind,
		Bills: s.Bills,
	}

	if s.Top != nil {
		section.Category = &s.Top.Category
		section.Amount = &s.Top.Amount
	}

	if s.Totals != nil {
		section.Income = &s.Totals.Income
		section.Expense = &s.Totals.Expense
		section.Balance = &s.Totals.Balance
	}

	return section
}

type Advice struct {
	Sections []AdviceSection `json:"sections"`                                                        // The sections in report order
	Report   string          `json:"report" example:"# 💰 Saldo Positivo!\n\n**Bom trabalho!** ..."` // Markdown rendering of the report
}

type AdviceResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Advice `json:"data"`                                                          // The advisory report
}

type SavingsSuggestions struct {
	Balance     decimal.Decimal      `json:"balance" example:"1000"` // The current balance of the profile
	Suggestions []savings.Suggestion `json:"suggestions"`            // Suggested amounts to save
	Goal        *Goal                `json:"goal"`                   // The goal deposits go to. Not set when the profile has no goals.
}

type SavingsSuggestionsResponse struct {
	Error *string             `json:"error" example:"savings suggestions need a positive balance"` // The error, if any occurred
	Data  *SavingsSuggestions `json:"data"`                                                        // The suggestions
}

type SavingsSuggestionApply struct {
	Amount decimal.Decimal `json:"amount" example:"50"` // The amount to save
}

type SavingsSuggestionApplied struct {
	Goal        *Goal             `json:"goal,omitempty"`        // The goal the amount was deposited to
	Transaction *Transaction      `json:"transaction,omitempty"` // The expense created for the deposit
	Seed        *savings.GoalSeed `json:"seed,omitempty"`        // The goal to create when the profile has no goals yet
}

type SavingsSuggestionApplyResponse struct {
	Error *string                   `json:"error" example:"deposits must be larger than zero"` // The error, if any occurred
	Data  *SavingsSuggestionApplied `json:"data"`                                              // The result
}
