package models_test

import (
	"github.com/meu-painel/backend/internal/models"
)

func (suite *TestSuiteStandard) TestTheme() {
	theme, err := models.GetTheme(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Equal(models.ThemeSystem, theme, "the theme defaults to the system setting")

	suite.Require().NoError(models.SetTheme(models.DB, models.ThemeDark))
	suite.Require().NoError(models.SetTheme(models.DB, models.ThemeLight))

	theme, err = models.GetTheme(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Equal(models.ThemeLight, theme)

	suite.Assert().ErrorIs(models.SetTheme(models.DB, "sepia"), models.ErrThemeInvalid)
}

func (suite *TestSuiteStandard) TestCategoryRules() {
	for _, r := range []models.CategoryRule{
		{Priority: 5, Pattern: "*", Category: "Diversos"},
		{Priority: 1, Pattern: " netflix* ", Category: "Lazer"},
	} {
		suite.Require().NoError(models.DB.Create(&r).Error)
	}

	err := models.DB.Create(&models.CategoryRule{Pattern: "netflix*"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryRulePatternNotUnique)

	err = models.DB.Create(&models.CategoryRule{Pattern: "  "}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryRulePatternEmpty)

	rules, err := models.ImportRules(models.DB)
	suite.Require().NoError(err)
	suite.Require().Len(rules, 2)
	suite.Assert().Equal("netflix*", rules[0].Pattern)
}

func (suite *TestSuiteStandard) TestExportRegistry() {
	suite.createTestProfile(models.Profile{Name: "Casa"})

	for _, model := range models.Registry {
		raw, err := model.Export()
		suite.Require().NoError(err)
		suite.Assert().NotEmpty(raw)
	}
}
