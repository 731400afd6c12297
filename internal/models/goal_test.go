package models_test

import (
	"time"

	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGoalTrimWhitespace() {
	profile := suite.createTestProfile(models.Profile{})

	goal := suite.createTestGoal(models.Goal{
		ProfileID:    profile.ID,
		Name:         "  Viagem \t",
		TargetAmount: decimal.NewFromInt(100),
	})

	suite.Assert().Equal("Viagem", goal.Name)
}

func (suite *TestSuiteStandard) TestGoalValidation() {
	profile := suite.createTestProfile(models.Profile{})

	err := models.DB.Create(&models.Goal{ProfileID: profile.ID, Name: "Viagem"}).Error
	suite.Assert().ErrorIs(err, ledger.ErrGoalTargetNotPositive)

	err = models.DB.Create(&models.Goal{ProfileID: profile.ID, TargetAmount: decimal.NewFromInt(1)}).Error
	suite.Assert().ErrorIs(err, ledger.ErrGoalNameEmpty)
}

func (suite *TestSuiteStandard) TestGoalDeposit() {
	profile := suite.createTestProfile(models.Profile{})
	other := suite.createTestTransaction(models.Transaction{ProfileID: profile.ID})
	goal := suite.createTestGoal(models.Goal{ProfileID: profile.ID, Name: "Reserva", TargetAmount: decimal.NewFromInt(1000)})

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	transaction, err := goal.Deposit(models.DB, decimal.NewFromInt(150), now)
	suite.Require().NoError(err)

	suite.Assert().Equal("Depósito na meta Reserva", transaction.Description)
	suite.Assert().Equal(ledger.CategorySavings, transaction.Category)
	suite.Assert().Equal(ledger.Expense, transaction.Type)
	suite.Assert().True(transaction.Amount.Equal(decimal.NewFromInt(150)))
	suite.Assert().True(goal.CurrentAmount.Equal(decimal.NewFromInt(150)))

	var stored models.Goal
	suite.Require().NoError(models.DB.First(&stored, "id = ?", goal.ID).Error)
	suite.Assert().True(stored.CurrentAmount.Equal(decimal.NewFromInt(150)))

	var transactions []models.Transaction
	suite.Require().NoError(models.DB.Where(&models.Transaction{ProfileID: profile.ID}).Find(&transactions).Error)
	suite.Require().Len(transactions, 2)

	var unchanged models.Transaction
	suite.Require().NoError(models.DB.First(&unchanged, "id = ?", other.ID).Error)
	suite.Assert().True(unchanged.Amount.Equal(other.Amount))
}

func (suite *TestSuiteStandard) TestGoalDepositNotPositive() {
	profile := suite.createTestProfile(models.Profile{})
	goal := suite.createTestGoal(models.Goal{ProfileID: profile.ID, Name: "Reserva", TargetAmount: decimal.NewFromInt(1000)})

	_, err := goal.Deposit(models.DB, decimal.Zero, time.Now())
	suite.Assert().ErrorIs(err, ledger.ErrDepositNotPositive)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Zero(count)
}

func (suite *TestSuiteStandard) TestGoalDepositStaleCopies() {
	profile := suite.createTestProfile(models.Profile{})
	goal := suite.createTestGoal(models.Goal{ProfileID: profile.ID, Name: "Reserva", TargetAmount: decimal.NewFromInt(1000)})

	// Two independently loaded copies of the same goal, as two concurrent
	// requests would have them
	var first, second models.Goal
	suite.Require().NoError(models.DB.First(&first, "id = ?", goal.ID).Error)
	suite.Require().NoError(models.DB.First(&second, "id = ?", goal.ID).Error)

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	_, err := first.Deposit(models.DB, decimal.NewFromInt(100), now)
	suite.Require().NoError(err)

	_, err = second.Deposit(models.DB, decimal.NewFromInt(50), now)
	suite.Require().NoError(err)
	suite.Assert().True(second.CurrentAmount.Equal(decimal.NewFromInt(150)), "the second copy sees the first deposit, got %s", second.CurrentAmount)

	var stored models.Goal
	suite.Require().NoError(models.DB.First(&stored, "id = ?", goal.ID).Error)
	suite.Assert().True(stored.CurrentAmount.Equal(decimal.NewFromInt(150)), "both deposits are kept, got %s", stored.CurrentAmount)

	var deposits int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Where(&models.Transaction{ProfileID: profile.ID, Category: ledger.CategorySavings}).Count(&deposits).Error)
	suite.Assert().Equal(int64(2), deposits)
}

func (suite *TestSuiteStandard) TestGoalDepositMissing() {
	profile := suite.createTestProfile(models.Profile{})
	goal := suite.createTestGoal(models.Goal{ProfileID: profile.ID, Name: "Reserva", TargetAmount: decimal.NewFromInt(1000)})
	suite.Require().NoError(models.DB.Delete(&goal).Error)

	_, err := goal.Deposit(models.DB, decimal.NewFromInt(10), time.Now())
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Zero(count)
}
