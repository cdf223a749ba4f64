package models_test

import (
	"github.com/google/uuid"
	"github.com/homeledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNotFoundMessages() {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			"household",
			models.DB.First(&models.Household{}, uuid.New()).Error,
			"there is no household matching your query",
		},
		{
			"category",
			models.DB.First(&models.Category{}, uuid.New()).Error,
			"there is no category matching your query",
		},
		{
			"budget line",
			models.DB.First(&models.BudgetLine{}, uuid.New()).Error,
			"there is no budget line matching your query",
		},
	}

	for _, tt := range tests {
		assert.ErrorIs(suite.T(), tt.err, models.ErrResourceNotFound, "Error for %q is wrong", tt.name)
		assert.Equal(suite.T(), tt.expected, tt.err.Error(), "Message for %q is wrong", tt.name)
	}
}

func (suite *TestSuiteStandard) TestClosedDatabase() {
	suite.CloseDB()

	err := models.DB.First(&models.Household{}, uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
