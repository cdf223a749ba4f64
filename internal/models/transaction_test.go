package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionZeroAmount() {
	household := suite.createTestHousehold(models.Household{})
	account := suite.createTestAccount(models.Account{HouseholdID: household.ID})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	transaction := models.Transaction{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Date:       time.Now(),
	}

	err := models.DB.Create(&transaction).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionAmountRequired)
}

func (suite *TestSuiteStandard) TestTransactionInvalidReferences() {
	household := suite.createTestHousehold(models.Household{})
	account := suite.createTestAccount(models.Account{HouseholdID: household.ID})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	tests := []struct {
		name       string
		accountID  uuid.UUID
		categoryID uuid.UUID
	}{
		{"invalid account", uuid.New(), category.ID},
		{"invalid category", account.ID, uuid.New()},
	}

	for _, tt := range tests {
		transaction := models.Transaction{
			AccountID:  tt.accountID,
			CategoryID: tt.categoryID,
			Date:       time.Now(),
			Amount:     decimal.NewFromFloat(-10),
		}

		err := models.DB.Create(&transaction).Error
		assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound, "Error for %q is wrong: %s", tt.name, err)
	}
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	household := suite.createTestHousehold(models.Household{})
	account := suite.createTestAccount(models.Account{HouseholdID: household.ID})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	berlin, err := time.LoadLocation("Europe/Berlin")
	assert.Nil(suite.T(), err)

	transaction := suite.createTestTransaction(models.Transaction{
		AccountID:  account.ID,
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 5, 14, 30, 0, 0, berlin),
		Amount:     decimal.NewFromFloat(-10),
	})

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())

	var reloaded models.Transaction
	err = models.DB.First(&reloaded, transaction.ID).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), time.UTC, reloaded.Date.Location())
}
