// Package savings computes suggested amounts to put aside from a positive balance.
package savings

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("savings suggestions need a positive balance")

// Percentages offered as suggestions, in order.
var Percentages = []int64{5, 10, 15}

// SeedName is the name of the goal proposed when a profile has no goals yet.
const SeedName = "Nova Meta"

// Suggestion is a share of the balance.
type Suggestion struct {
	Percent int64           `json:"percent"`
	Amount  decimal.Decimal `json:"amount"`
}

// GoalSeed is a goal the client can create to receive a suggestion.
type GoalSeed struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
}

// Suggest returns the suggested amounts for the balance, rounded to cents.
func Suggest(balance decimal.Decimal) ([]Suggestion, error) {
	if !balance.IsPositive() {
		return nil, fmt.Errorf("%w, the balance is %s", ErrInvalidInput, balance.StringFixed(2))
	}

	suggestions := make([]Suggestion, 0, len(Percentages))
	for _, p := range Percentages {
		suggestions = append(suggestions, Suggestion{
			Percent: p,
			Amount:  balance.Mul(decimal.NewFromInt(p)).Div(decimal.NewFromInt(100)).Round(2),
		})
	}

	return suggestions, nil
}

// Seed proposes a goal with the amount rounded up to whole reais as target.
func Seed(amount decimal.Decimal) GoalSeed {
	return GoalSeed{
		Name:         SeedName,
		TargetAmount: amount.Ceil(),
	}
}
