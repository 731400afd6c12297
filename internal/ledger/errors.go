package ledger

import "errors"

var (
	ErrDescriptionEmpty       = errors.New("the description must not be empty")
	ErrAmountNotPositive      = errors.New("the amount must be larger than zero")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be one of 'income' or 'expense'")
	ErrTransactionNotFound    = errors.New("there is no transaction with this ID")
	ErrGoalNameEmpty          = errors.New("the goal name must not be empty")
	ErrGoalTargetNotPositive  = errors.New("the goal target amount must be larger than zero")
	ErrGoalCurrentNegative    = errors.New("the current amount of a goal must not be negative")
	ErrGoalNotFound           = errors.New("there is no savings goal with this ID")
	ErrDepositNotPositive     = errors.New("deposits must be larger than zero")
)
