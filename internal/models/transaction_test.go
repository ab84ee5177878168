package models_test

import (
	"strings"
	"time"

	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionDateStamped() {
	transaction := suite.createTestTransaction(models.Transaction{
		Label:  "Coffee",
		Amount: decimal.NewFromFloat(-3.5),
	})

	assert.False(suite.T(), transaction.Date.IsZero(), "transaction without a date must be stamped on save")
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDateKept() {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	transaction := suite.createTestTransaction(models.Transaction{
		Date:   date,
		Label:  "Groceries",
		Amount: decimal.NewFromFloat(-14.5),
	})

	var reloaded models.Transaction
	err := models.DB.First(&reloaded, transaction.ID).Error
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), date.Equal(reloaded.Date), "expected %s, got %s", date, reloaded.Date)
}

func (suite *TestSuiteStandard) TestTransactionIncome() {
	tests := []struct {
		amount decimal.Decimal
		income bool
	}{
		{decimal.NewFromFloat(500), true},
		{decimal.NewFromFloat(-14.5), false},
		{decimal.Zero, false},
	}

	for _, tt := range tests {
		t := models.Transaction{Amount: tt.amount}
		assert.Equal(suite.T(), tt.income, t.Income(), "amount: %s", tt.amount)
	}
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", "a6a9b384-3b7d-4c27-8b1e-d14d8f14f3d1").Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.True(suite.T(), strings.Contains(err.Error(), "transaction"), "error message must name the resource: %s", err)
}
