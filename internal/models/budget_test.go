package models_test

import (
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetInvalidPeriod() {
	household := suite.createTestHousehold(models.Household{})

	budget := models.Budget{
		HouseholdID: household.ID,
		Name:        "Weekly spending",
		Period:      "weekly",
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetPeriodInvalid)
}

func (suite *TestSuiteStandard) TestBudgetNegativeBuffer() {
	household := suite.createTestHousehold(models.Household{})

	budget := models.Budget{
		HouseholdID: household.ID,
		Name:        "Negative buffer",
		Period:      types.PeriodMonthly,
		Buffer:      decimal.NewFromFloat(-1),
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetBufferNegative)
}

func (suite *TestSuiteStandard) TestBudgetLineNegativeAmount() {
	household := suite.createTestHousehold(models.Household{})
	budget := suite.createTestBudget(models.Budget{HouseholdID: household.ID})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	line := models.BudgetLine{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(-100),
	}

	err := models.DB.Create(&line).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetLineAmountNegative)
}

func (suite *TestSuiteStandard) TestBudgetLineCategoryUnique() {
	household := suite.createTestHousehold(models.Household{})
	budget := suite.createTestBudget(models.Budget{HouseholdID: household.ID})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	suite.createTestBudgetLine(models.BudgetLine{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(100),
	})

	duplicate := models.BudgetLine{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(200),
	}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetLineCategoryInUse)
}

func (suite *TestSuiteStandard) TestBudgetDeleteCascadesLines() {
	household := suite.createTestHousehold(models.Household{})
	budget := suite.createTestBudget(models.Budget{HouseholdID: household.ID})
	category := suite.createTestCategory(models.Category{HouseholdID: household.ID})

	suite.createTestBudgetLine(models.BudgetLine{
		BudgetID:   budget.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(100),
	})

	err := models.DB.Delete(&budget).Error
	require.Nil(suite.T(), err)

	var count int64
	err = models.DB.Model(&models.BudgetLine{}).Where("budget_id = ?", budget.ID).Count(&count).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestBudgetLines() {
	household := suite.createTestHousehold(models.Household{})
	budget := suite.createTestBudget(models.Budget{HouseholdID: household.ID})

	groceries := suite.createTestCategory(models.Category{HouseholdID: household.ID, Name: "Groceries"})
	leisure := suite.createTestCategory(models.Category{HouseholdID: household.ID, Name: "Leisure"})

	suite.createTestBudgetLine(models.BudgetLine{
		BudgetID:   budget.ID,
		CategoryID: groceries.ID,
		Amount:     decimal.NewFromFloat(500),
	})
	suite.createTestBudgetLine(models.BudgetLine{
		BudgetID:   budget.ID,
		CategoryID: leisure.ID,
		Amount:     decimal.NewFromFloat(150),
	})

	lines, err := budget.Lines(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), lines, 2)

	// The category is preloaded so that views can use its name
	assert.Equal(suite.T(), "Groceries", lines[0].Category.Name)
	assert.Equal(suite.T(), "Leisure", lines[1].Category.Name)
}

func (suite *TestSuiteStandard) TestBudgetInvalidHousehold() {
	budget := models.Budget{
		HouseholdID: uuid.New(),
		Name:        "Orphaned",
		Period:      types.PeriodMonthly,
	}

	err := models.DB.Create(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
