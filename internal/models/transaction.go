package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is an income or expense of a profile.
type Transaction struct {
	DefaultModel
	ProfileID   uuid.UUID `gorm:"index"`
	Profile     Profile   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type        ledger.TransactionType
	Category    ledger.Category `gorm:"index"`
	Date        time.Time       // Creation time, used for sorting
	DueDate     *types.Date     // Only used for expenses
	ImportHash  string          `gorm:"index"` // The SHA256 hash of a unique combination of values to use in duplicate detection when importing transactions
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)
	return checkProfile(tx, t.ProfileID)
}

// BeforeUpdate verifies the profile, which can be changed.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return checkProfile(tx, t.ProfileID)
}

// BeforeSave normalizes the transaction and rejects invalid data.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.ImportHash = strings.TrimSpace(t.ImportHash)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	}

	l := t.Ledger().Normalize()
	if err := l.Validate(); err != nil {
		return err
	}

	t.Description = l.Description
	t.Category = l.Category
	t.Date = l.Date
	t.DueDate = l.DueDate

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// Ledger converts the transaction to its domain value.
func (t Transaction) Ledger() ledger.Transaction {
	return ledger.Transaction{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      t.Amount,
		Type:        t.Type,
		Category:    t.Category,
		Date:        t.Date,
		DueDate:     t.DueDate,
	}
}

// TransactionFromLedger converts a domain transaction for the profile.
// An ID that is not a UUID is replaced.
func TransactionFromLedger(profileID uuid.UUID, l ledger.Transaction) Transaction {
	return Transaction{
		DefaultModel: DefaultModel{ID: parseID(l.ID)},
		ProfileID:    profileID,
		Description:  l.Description,
		Amount:       l.Amount,
		Type:         l.Type,
		Category:     l.Category,
		Date:         l.Date,
		DueDate:      l.DueDate,
	}
}

// Returns all transactions on this instance for export
func (Transaction) Export() (json.RawMessage, error) {
	var transactions []Transaction
	err := DB.Where(&Transaction{}).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&transactions)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

// checkProfile verifies that the referenced profile exists.
func checkProfile(tx *gorm.DB, id uuid.UUID) error {
	return tx.Session(&gorm.Session{NewDB: true}).Where("id = ?", id).First(&Profile{}).Error
}
