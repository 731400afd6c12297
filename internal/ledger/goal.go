package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SavingsGoal is a named target amount filled by deposits.
type SavingsGoal struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
}

var hundred = decimal.NewFromInt(100)

// Validate checks the invariants of a goal.
func (g SavingsGoal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrGoalNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	return nil
}

// Progress is the saved share of the target in percent. It is not capped at 100.
func (g SavingsGoal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}

	return g.CurrentAmount.Div(g.TargetAmount).Mul(hundred).Round(2)
}

// Achieved reports if the target has been reached.
func (g SavingsGoal) Achieved() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
