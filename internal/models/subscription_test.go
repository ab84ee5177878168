package models_test

import (
	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestSubscriptionAfterSave() {
	tests := []struct {
		cost decimal.Decimal
		err  error
	}{
		{decimal.NewFromFloat(-10), models.ErrSubscriptionCostNotPositive},
		{decimal.Zero, models.ErrSubscriptionCostNotPositive},
		{decimal.NewFromFloat(12.99), nil},
	}

	for _, tt := range tests {
		s := models.Subscription{
			Cost: tt.cost,
		}

		err := s.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestSubscriptionPay() {
	subscription := suite.createTestSubscription(models.Subscription{
		Name: "Netflix",
		Cost: decimal.NewFromFloat(12.99),
	})

	transaction, err := subscription.Pay(models.DB)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "Netflix payment", transaction.Label)
	assert.Equal(suite.T(), models.CategorySubscriptions, transaction.Category)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(-12.99)))
	assert.False(suite.T(), transaction.Date.IsZero(), "payment must be stamped with the current date")
}

func (suite *TestSuiteStandard) TestSubscriptionPayTwice() {
	subscription := suite.createTestSubscription(models.Subscription{
		Name: "Spotify",
		Cost: decimal.NewFromFloat(9.99),
	})

	_, err := subscription.Pay(models.DB)
	require.Nil(suite.T(), err)

	_, err = subscription.Pay(models.DB)
	require.Nil(suite.T(), err)

	// Paying twice books twice
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(2), count)

	balance, err := models.Balance(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromFloat(-19.98)), "balance is %s", balance)
}

func (suite *TestSuiteStandard) TestSubscriptionDeleteKeepsPayments() {
	subscription := suite.createTestSubscription(models.Subscription{
		Name: "Gym",
		Cost: decimal.NewFromFloat(30),
	})

	transaction, err := subscription.Pay(models.DB)
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), models.DB.Delete(&subscription).Error)

	var reloaded models.Transaction
	require.Nil(suite.T(), models.DB.First(&reloaded, transaction.ID).Error)
}
