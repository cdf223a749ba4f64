package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategorySpend() {
	household := suite.createTestHousehold(models.Household{})
	account := suite.createTestAccount(models.Account{HouseholdID: household.ID})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	// Two expenses in the window
	suite.createTestTransaction(models.Transaction{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-100),
	})
	suite.createTestTransaction(models.Transaction{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-50.5),
	})

	// Income never counts
	suite.createTestTransaction(models.Transaction{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(2000),
	})

	// Transfers never count
	suite.createTestTransaction(models.Transaction{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-300),
		IsTransfer: true,
	})

	// Outside the window
	suite.createTestTransaction(models.Transaction{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-40),
	})
	suite.createTestTransaction(models.Transaction{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Date:       until,
		Amount:     decimal.NewFromFloat(-40),
	})

	spent, err := models.CategorySpend(models.DB, household.ID, category.ID, from, until, nil)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.Equal(decimal.NewFromFloat(150.5)), "Spent amount is wrong: %s", spent)
}

func (suite *TestSuiteStandard) TestCategorySpendWindowStartInclusive() {
	household := suite.createTestHousehold(models.Household{})
	account := suite.createTestAccount(models.Account{HouseholdID: household.ID})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	suite.createTestTransaction(models.Transaction{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Date:       from,
		Amount:     decimal.NewFromFloat(-25),
	})

	spent, err := models.CategorySpend(models.DB, household.ID, category.ID, from, until, nil)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.Equal(decimal.NewFromFloat(25)), "Spent amount is wrong: %s", spent)
}

func (suite *TestSuiteStandard) TestCategorySpendAccountFilter() {
	household := suite.createTestHousehold(models.Household{})
	counted := suite.createTestAccount(models.Account{HouseholdID: household.ID})
	ignored := suite.createTestAccount(models.Account{HouseholdID: household.ID})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	suite.createTestTransaction(models.Transaction{
		AccountID:  counted.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-10),
	})
	suite.createTestTransaction(models.Transaction{
		AccountID:  ignored.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-90),
	})

	spent, err := models.CategorySpend(models.DB, household.ID, category.ID, from, until, []uuid.UUID{counted.ID})
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.Equal(decimal.NewFromFloat(10)), "Spent amount is wrong: %s", spent)
}

func (suite *TestSuiteStandard) TestCategorySpendArchivedAccount() {
	household := suite.createTestHousehold(models.Household{})
	account := suite.createTestAccount(models.Account{HouseholdID: household.ID})
	archived := suite.createTestAccount(models.Account{HouseholdID: household.ID, Archived: true})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	suite.createTestTransaction(models.Transaction{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-10),
	})
	suite.createTestTransaction(models.Transaction{
		AccountID:  archived.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-500),
	})

	// Archived accounts are excluded even when explicitly listed
	spent, err := models.CategorySpend(models.DB, household.ID, category.ID, from, until, []uuid.UUID{account.ID, archived.ID})
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.Equal(decimal.NewFromFloat(10)), "Spent amount is wrong: %s", spent)
}

func (suite *TestSuiteStandard) TestCategorySpendEmpty() {
	household := suite.createTestHousehold(models.Household{})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	spent, err := models.CategorySpend(models.DB, household.ID, category.ID, from, until, nil)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.IsZero(), "Spent amount is wrong: %s", spent)
}

func (suite *TestSuiteStandard) TestCategorySpendOtherHousehold() {
	household := suite.createTestHousehold(models.Household{})
	other := suite.createTestHousehold(models.Household{})
	otherAccount := suite.createTestAccount(models.Account{HouseholdID: other.ID})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	suite.createTestTransaction(models.Transaction{
		AccountID:  otherAccount.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-10),
	})

	spent, err := models.CategorySpend(models.DB, household.ID, category.ID, from, until, nil)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), spent.IsZero(), "Spent amount is wrong: %s", spent)
}
