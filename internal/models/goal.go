package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Goal is a savings goal of a profile.
type Goal struct {
	DefaultModel
	ProfileID     uuid.UUID       `gorm:"index"`
	Profile       Profile         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name          string
	TargetAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)
	return checkProfile(tx, g.ProfileID)
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	return g.Ledger().Validate()
}

// Ledger converts the goal to its domain value.
func (g Goal) Ledger() ledger.SavingsGoal {
	return ledger.SavingsGoal{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
	}
}

// GoalFromLedger converts a domain goal for the profile. An ID that is not
// a UUID is replaced.
func GoalFromLedger(profileID uuid.UUID, l ledger.SavingsGoal) Goal {
	return Goal{
		DefaultModel:  DefaultModel{ID: parseID(l.ID)},
		ProfileID:     profileID,
		Name:          l.Name,
		TargetAmount:  l.TargetAmount,
		CurrentAmount: l.CurrentAmount,
	}
}

// Deposit adds amount to the goal and creates the matching expense in the
// same database transaction. The goal is read again inside the transaction,
// so g may be stale; it is replaced with the stored state after the deposit.
func (g *Goal) Deposit(db *gorm.DB, amount decimal.Decimal, now time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ledger.ErrDepositNotPositive
	}

	var transaction Transaction
	var current Goal

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&current, "id = ?", g.ID).Error; err != nil {
			return err
		}

		doc := ledger.PersonData{SavingsGoals: []ledger.SavingsGoal{current.Ledger()}}
		_, updated, lt, err := doc.Deposit(current.ID.String(), amount, now)
		if err != nil {
			return err
		}

		transaction = TransactionFromLedger(current.ProfileID, lt)
		if err := tx.Create(&transaction).Error; err != nil {
			return err
		}

		current.CurrentAmount = updated.CurrentAmount
		return tx.Model(&current).Update("CurrentAmount", current.CurrentAmount).Error
	})
	if err != nil {
		return Transaction{}, err
	}

	*g = current
	return transaction, nil
}

// Returns all goals on this instance for export
func (Goal) Export() (json.RawMessage, error) {
	var goals []Goal
	err := DB.Where(&Goal{}).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&goals)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
