package ledger

import (
	"strings"
	"time"

	"github.com/meu-painel/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Valid reports if the type is income or expense.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single dated money movement.
type Transaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // Always positive, the direction is defined by Type
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	Date        time.Time       `json:"date"`              // Creation time
	DueDate     *types.Date     `json:"dueDate,omitempty"` // Bill due date, only used for expenses
}

// Validate checks the fields a user provides.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionEmpty
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	return nil
}

// Normalize trims text fields, defaults the category and drops due dates
// from income transactions.
func (t Transaction) Normalize() Transaction {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = NormalizeCategory(string(t.Category))

	if t.Type == Income || (t.DueDate != nil && t.DueDate.IsZero()) {
		t.DueDate = nil
	}

	if !t.Date.IsZero() {
		t.Date = t.Date.UTC()
	}

	return t
}

// Signed returns the amount with a negative sign for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// DaysUntilDue returns the whole calendar days from today to the due date.
// ok is false when the transaction is not a bill.
func (t Transaction) DaysUntilDue(today time.Time) (days int, ok bool) {
	if t.Type != Expense || t.DueDate == nil || t.DueDate.IsZero() {
		return 0, false
	}

	return types.DateOf(today).DaysUntil(*t.DueDate), true
}

// Overdue reports if the transaction is a bill that was due before today.
func (t Transaction) Overdue(today time.Time) bool {
	days, ok := t.DaysUntilDue(today)
	return ok && days < 0
}
