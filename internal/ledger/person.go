package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultName is the name of a freshly created profile.
const DefaultName = "Meu Painel"

// PersonData is the finance data of one person or household.
type PersonData struct {
	Name         string        `json:"name"`
	Transactions []Transaction `json:"transactions"`
	SavingsGoals []SavingsGoal `json:"savingsGoals"`
}

// Default returns an empty document with the default name.
func Default() PersonData {
	return PersonData{
		Name:         DefaultName,
		Transactions: []Transaction{},
		SavingsGoals: []SavingsGoal{},
	}
}

// Validate checks every transaction and goal of the document.
func (p PersonData) Validate() error {
	for i, t := range p.Transactions {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}

	for i, g := range p.SavingsGoals {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("savings goal %d: %w", i, err)
		}
	}

	return nil
}

// clone copies the slices so that the result can be changed without
// affecting p.
func (p PersonData) clone() PersonData {
	return PersonData{
		Name:         p.Name,
		Transactions: append(make([]Transaction, 0, len(p.Transactions)+1), p.Transactions...),
		SavingsGoals: append(make([]SavingsGoal, 0, len(p.SavingsGoals)+1), p.SavingsGoals...),
	}
}

// Rename returns a copy with a new name. An empty name resets it to the default.
func (p PersonData) Rename(name string) PersonData {
	n := p.clone()
	n.Name = strings.TrimSpace(name)
	if n.Name == "" {
		n.Name = DefaultName
	}
	return n
}

// AddTransaction validates t and returns a copy with t appended. ID and
// Date are assigned when empty.
func (p PersonData) AddTransaction(t Transaction, now time.Time) (PersonData, Transaction, error) {
	t = t.Normalize()
	if err := t.Validate(); err != nil {
		return p, Transaction{}, err
	}

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	if t.Date.IsZero() {
		t.Date = now.UTC()
	}

	n := p.clone()
	n.Transactions = append(n.Transactions, t)
	return n, t, nil
}

// UpdateTransaction replaces the transaction with the same ID. The creation
// date is kept.
func (p PersonData) UpdateTransaction(t Transaction) (PersonData, error) {
	t = t.Normalize()
	if err := t.Validate(); err != nil {
		return p, err
	}

	for i, existing := range p.Transactions {
		if existing.ID != t.ID {
			continue
		}

		t.Date = existing.Date
		n := p.clone()
		n.Transactions[i] = t
		return n, nil
	}

	return p, ErrTransactionNotFound
}

// DeleteTransaction returns a copy without the transaction.
func (p PersonData) DeleteTransaction(id string) (PersonData, error) {
	for i, existing := range p.Transactions {
		if existing.ID != id {
			continue
		}

		n := p.clone()
		n.Transactions = append(n.Transactions[:i], n.Transactions[i+1:]...)
		return n, nil
	}

	return p, ErrTransactionNotFound
}

// AddGoal returns a copy with a new goal. New goals always start empty.
func (p PersonData) AddGoal(g SavingsGoal) (PersonData, SavingsGoal, error) {
	g.Name = strings.TrimSpace(g.Name)
	g.CurrentAmount = decimal.Zero

	if err := g.Validate(); err != nil {
		return p, SavingsGoal{}, err
	}

	if g.ID == "" {
		g.ID = uuid.NewString()
	}

	n := p.clone()
	n.SavingsGoals = append(n.SavingsGoals, g)
	return n, g, nil
}

// Deposit adds amount to the goal and appends the matching expense
// transaction in category "Poupança". It returns the new document together
// with the updated goal and the created transaction.
func (p PersonData) Deposit(goalID string, amount decimal.Decimal, now time.Time) (PersonData, SavingsGoal, Transaction, error) {
	if !amount.IsPositive() {
		return p, SavingsGoal{}, Transaction{}, ErrDepositNotPositive
	}

	for i, g := range p.SavingsGoals {
		if g.ID != goalID {
			continue
		}

		n, t, err := p.AddTransaction(Transaction{
			Description: DepositDescription(g.Name),
			Amount:      amount,
			Type:        Expense,
			Category:    CategorySavings,
		}, now)
		if err != nil {
			return p, SavingsGoal{}, Transaction{}, err
		}

		g.CurrentAmount = g.CurrentAmount.Add(amount)
		n.SavingsGoals[i] = g
		return n, g, t, nil
	}

	return p, SavingsGoal{}, Transaction{}, ErrGoalNotFound
}

// DepositDescription is the description of the expense mirroring a deposit.
func DepositDescription(goalName string) string {
	return fmt.Sprintf("Depósito na meta %s", goalName)
}

// RecentFirst returns the transactions ordered by date, newest first. Equal
// dates keep the later added transaction first.
func RecentFirst(transactions []Transaction) []Transaction {
	sorted := make([]Transaction, len(transactions))
	for i, t := range transactions {
		sorted[len(transactions)-1-i] = t
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	return sorted
}
