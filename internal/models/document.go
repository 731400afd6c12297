package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/snapshot"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// insertionOrder sorts rows in the order they were created.
const insertionOrder = "created_at ASC, rowid ASC"

// Document assembles the profile with all its transactions and goals.
// Transactions and goals are in insertion order.
func (p Profile) Document(db *gorm.DB) (ledger.PersonData, error) {
	var transactions []Transaction
	err := db.Where(&Transaction{ProfileID: p.ID}).Order(insertionOrder).Find(&transactions).Error
	if err != nil {
		return ledger.PersonData{}, err
	}

	var goals []Goal
	err = db.Where(&Goal{ProfileID: p.ID}).Order(insertionOrder).Find(&goals).Error
	if err != nil {
		return ledger.PersonData{}, err
	}

	doc := ledger.Default().Rename(p.Name)
	for _, t := range transactions {
		doc.Transactions = append(doc.Transactions, t.Ledger())
	}

	for _, g := range goals {
		doc.SavingsGoals = append(doc.SavingsGoals, g.Ledger())
	}

	return doc, nil
}

// Goals returns the goals of the profile in insertion order.
func (p Profile) Goals(db *gorm.DB) ([]Goal, error) {
	var goals []Goal
	err := db.Where(&Goal{ProfileID: p.ID}).Order(insertionOrder).Find(&goals).Error
	return goals, err
}

// CreateProfile stores a document as a new profile. If id is uuid.Nil, a new
// one is generated.
func CreateProfile(db *gorm.DB, id uuid.UUID, doc ledger.PersonData) (Profile, error) {
	if err := doc.Validate(); err != nil {
		return Profile{}, err
	}

	profile := Profile{DefaultModel: DefaultModel{ID: id}, Name: doc.Name}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		for _, t := range doc.Transactions {
			transaction := TransactionFromLedger(profile.ID, t)
			if err := tx.Create(&transaction).Error; err != nil {
				return fmt.Errorf("transaction %s: %w", t.Description, err)
			}
		}

		for _, g := range doc.SavingsGoals {
			goal := GoalFromLedger(profile.ID, g)
			if err := tx.Create(&goal).Error; err != nil {
				return fmt.Errorf("goal %s: %w", g.Name, err)
			}
		}

		return nil
	})
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}

// Bootstrap creates a profile for every snapshot entry when the database
// does not contain any profile yet.
func Bootstrap(db *gorm.DB, entries []snapshot.Entry) error {
	var count int64
	if err := db.Model(&Profile{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for _, e := range entries {
		id, err := uuid.Parse(e.ID)
		if err != nil {
			id = uuid.Nil
		}

		profile, err := CreateProfile(db, id, e.Data)
		if err != nil {
			return fmt.Errorf("restoring snapshot %q: %w", e.ID, err)
		}

		log.Info().Str("id", profile.ID.String()).Str("name", profile.Name).Int("transactions", len(e.Data.Transactions)).Msg("Restored profile from snapshot")
	}

	return nil
}
