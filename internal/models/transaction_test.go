package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionNormalize() {
	profile := suite.createTestProfile(models.Profile{Name: "Casa"})
	due := types.NewDate(2024, 6, 20)

	transaction := suite.createTestTransaction(models.Transaction{
		ProfileID:   profile.ID,
		Description: "  Salário \t",
		Type:        ledger.Income,
		Amount:      decimal.NewFromInt(3000),
		DueDate:     &due,
	})

	suite.Assert().Equal("Salário", transaction.Description)
	suite.Assert().Equal(ledger.CategoryOther, transaction.Category)
	suite.Assert().Nil(transaction.DueDate, "income has no due date")
	suite.Assert().False(transaction.Date.IsZero())
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDueDateStored() {
	profile := suite.createTestProfile(models.Profile{})
	due := types.NewDate(2024, 6, 20)

	transaction := suite.createTestTransaction(models.Transaction{ProfileID: profile.ID, DueDate: &due})

	var loaded models.Transaction
	suite.Require().NoError(models.DB.First(&loaded, "id = ?", transaction.ID).Error)
	suite.Require().NotNil(loaded.DueDate)
	suite.Assert().Equal("2024-06-20", loaded.DueDate.String())
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	profile := suite.createTestProfile(models.Profile{})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Empty description", models.Transaction{ProfileID: profile.ID, Description: " ", Amount: decimal.NewFromInt(1), Type: ledger.Expense}, ledger.ErrDescriptionEmpty},
		{"Zero amount", models.Transaction{ProfileID: profile.ID, Description: "a", Type: ledger.Expense}, ledger.ErrAmountNotPositive},
		{"Negative amount", models.Transaction{ProfileID: profile.ID, Description: "a", Amount: decimal.NewFromInt(-5), Type: ledger.Expense}, ledger.ErrAmountNotPositive},
		{"Invalid type", models.Transaction{ProfileID: profile.ID, Description: "a", Amount: decimal.NewFromInt(1), Type: "transfer"}, ledger.ErrTransactionTypeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionProfileMissing() {
	err := models.DB.Create(&models.Transaction{
		ProfileID:   uuid.New(),
		Description: "Mercado",
		Amount:      decimal.NewFromInt(1),
		Type:        ledger.Expense,
	}).Error

	suite.Require().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().True(strings.Contains(err.Error(), "profile"))
}

func (suite *TestSuiteStandard) TestTransactionsDeletedWithProfile() {
	profile := suite.createTestProfile(models.Profile{})
	suite.createTestTransaction(models.Transaction{ProfileID: profile.ID})
	suite.createTestGoal(models.Goal{ProfileID: profile.ID, Name: "Viagem", TargetAmount: decimal.NewFromInt(100)})

	suite.Require().NoError(models.DB.Delete(&profile).Error)

	var transactions, goals int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&transactions).Error)
	suite.Require().NoError(models.DB.Model(&models.Goal{}).Count(&goals).Error)
	suite.Assert().Zero(transactions)
	suite.Assert().Zero(goals)
}
