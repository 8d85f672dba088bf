package models_test

import (
	"github.com/chandran2006/saveup-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestResourceNotFoundError() {
	err := models.DB.First(&models.Transaction{}, uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no transaction matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestClosedDatabaseError() {
	suite.CloseDB()

	err := models.DB.First(&models.Transaction{}, uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
