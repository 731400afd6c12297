package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/meu-painel/backend/internal/ledger"
	"github.com/meu-painel/backend/internal/models"
	"github.com/meu-painel/backend/internal/snapshot"
	"github.com/meu-painel/backend/internal/types"
	"github.com/shopspring/decimal"
)

func testDocument() ledger.PersonData {
	due := types.NewDate(2024, 6, 20)

	doc := ledger.Default().Rename("Família")
	doc.Transactions = []ledger.Transaction{
		{ID: "not-a-uuid", Description: "Salário", Amount: decimal.NewFromInt(5000), Type: ledger.Income, Category: ledger.CategorySalary, Date: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)},
		{ID: uuid.NewString(), Description: "Aluguel", Amount: decimal.NewFromInt(1500), Type: ledger.Expense, Category: ledger.CategoryHousing, Date: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC), DueDate: &due},
	}
	doc.SavingsGoals = []ledger.SavingsGoal{
		{ID: uuid.NewString(), Name: "Reserva", TargetAmount: decimal.NewFromInt(10000), CurrentAmount: decimal.NewFromInt(500)},
		{ID: uuid.NewString(), Name: "Viagem", TargetAmount: decimal.NewFromInt(3000)},
	}

	return doc
}

func (suite *TestSuiteStandard) TestCreateProfileDocument() {
	doc := testDocument()

	profile, err := models.CreateProfile(models.DB, uuid.Nil, doc)
	suite.Require().NoError(err)
	suite.Assert().NotEqual(uuid.Nil, profile.ID)
	suite.Assert().Equal("Família", profile.Name)

	loaded, err := profile.Document(models.DB)
	suite.Require().NoError(err)

	suite.Assert().Equal("Família", loaded.Name)
	suite.Require().Len(loaded.Transactions, 2)
	suite.Assert().Equal("Salário", loaded.Transactions[0].Description)
	suite.Assert().NotEqual("not-a-uuid", loaded.Transactions[0].ID)
	suite.Assert().Equal(doc.Transactions[1].ID, loaded.Transactions[1].ID)
	suite.Assert().True(loaded.Transactions[0].Date.Equal(doc.Transactions[0].Date))
	suite.Require().NotNil(loaded.Transactions[1].DueDate)
	suite.Assert().Equal("2024-06-20", loaded.Transactions[1].DueDate.String())

	suite.Require().Len(loaded.SavingsGoals, 2)
	suite.Assert().Equal("Reserva", loaded.SavingsGoals[0].Name)
	suite.Assert().True(loaded.SavingsGoals[0].CurrentAmount.Equal(decimal.NewFromInt(500)))

	goals, err := profile.Goals(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Equal("Reserva", goals[0].Name, "goals are kept in insertion order")
}

func (suite *TestSuiteStandard) TestCreateProfileInvalidDocument() {
	doc := testDocument()
	doc.Transactions[0].Amount = decimal.Zero

	_, err := models.CreateProfile(models.DB, uuid.Nil, doc)
	suite.Assert().ErrorIs(err, ledger.ErrAmountNotPositive)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.Profile{}).Count(&count).Error)
	suite.Assert().Zero(count)
}

func (suite *TestSuiteStandard) TestBootstrap() {
	id := uuid.New()
	entries := []snapshot.Entry{
		{ID: id.String(), Data: testDocument()},
		{ID: "", Data: ledger.Default()},
	}

	suite.Require().NoError(models.Bootstrap(models.DB, entries))

	var profiles []models.Profile
	suite.Require().NoError(models.DB.Order("name").Find(&profiles).Error)
	suite.Require().Len(profiles, 2)
	suite.Assert().Equal("Família", profiles[0].Name)
	suite.Assert().Equal(id, profiles[0].ID)
	suite.Assert().Equal(ledger.DefaultName, profiles[1].Name)

	// A second bootstrap does not change anything
	suite.Require().NoError(models.Bootstrap(models.DB, entries))
	var count int64
	suite.Require().NoError(models.DB.Model(&models.Profile{}).Count(&count).Error)
	suite.Assert().Equal(int64(2), count)
}
