package models_test

import (
	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestClosedDB() {
	suite.CloseDB()

	var transactions []models.Transaction
	err := models.DB.Find(&transactions).Error

	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestCheckConstraintErrors() {
	tests := []struct {
		name string
		run  func() error
		err  error
	}{
		{
			"goal with negative target",
			func() error {
				return models.DB.Create(&models.Goal{Name: "Broken", Target: decimal.NewFromFloat(-1)}).Error
			},
			models.ErrGoalTargetNotPositive,
		},
		{
			"subscription with negative cost",
			func() error {
				return models.DB.Create(&models.Subscription{Name: "Broken", Cost: decimal.NewFromFloat(-1)}).Error
			},
			models.ErrSubscriptionCostNotPositive,
		},
	}

	for _, tt := range tests {
		err := tt.run()
		assert.ErrorIs(suite.T(), err, tt.err, tt.name)
	}
}
