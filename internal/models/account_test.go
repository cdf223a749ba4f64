package models_test

import (
	"strings"

	"github.com/homeledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	household := suite.createTestHousehold(models.Household{})

	name := " Joint checking  \t"
	note := "  Whitespace everywhere   "

	account := suite.createTestAccount(models.Account{
		HouseholdID: household.ID,
		Name:        name,
		Note:        note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), account.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), account.Note)
}

func (suite *TestSuiteStandard) TestAccountNameUniquePerHousehold() {
	household := suite.createTestHousehold(models.Household{})
	suite.createTestAccount(models.Account{HouseholdID: household.ID, Name: "Checking"})

	duplicate := models.Account{HouseholdID: household.ID, Name: "Checking"}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrAccountNameNotUnique)

	// The same name is fine in another household
	other := suite.createTestHousehold(models.Household{})
	suite.createTestAccount(models.Account{HouseholdID: other.ID, Name: "Checking"})
}

func (suite *TestSuiteStandard) TestAccountInvalidHousehold() {
	account := models.Account{Name: "Orphaned"}
	err := models.DB.Create(&account).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerHousehold() {
	household := suite.createTestHousehold(models.Household{})
	suite.createTestCategory(models.Category{HouseholdID: household.ID, Name: "Groceries"})

	duplicate := models.Category{HouseholdID: household.ID, Name: "Groceries"}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}
