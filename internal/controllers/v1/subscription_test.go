package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/CarlosRW/Fince-AI-Budget/internal/controllers/v1"
	"github.com/CarlosRW/Fince-AI-Budget/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSubscriptionsCreate() {
	subscription := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name: "Netflix",
		Cost: decimal.NewFromFloat(12.99),
	})

	require.NotNil(suite.T(), subscription.Data)
	assert.Equal(suite.T(), "Netflix", subscription.Data.Name)
	assert.Equal(suite.T(), subscription.Data.Links.Self+"/pay", subscription.Data.Links.Pay)
}

func (suite *TestSuiteStandard) TestSubscriptionsCreateInvalidCost() {
	tests := []struct {
		name string
		cost decimal.Decimal
	}{
		{"Zero cost", decimal.Zero},
		{"Negative cost", decimal.NewFromFloat(-5)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_ = createTestSubscription(t, v1.SubscriptionEditable{Name: "Broken", Cost: tt.cost}, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestSubscriptionPay() {
	subscription := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name: "Spotify",
		Cost: decimal.NewFromFloat(9.99),
	})

	r := test.Request(suite.T(), http.MethodPost, subscription.Data.Links.Pay, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SubscriptionPayResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Transaction)
	assert.Equal(suite.T(), "Spotify payment", response.Transaction.Label)
	assert.Equal(suite.T(), "Subscriptions", response.Transaction.Category)
	assert.True(suite.T(), response.Transaction.Amount.Equal(decimal.NewFromFloat(-9.99)))
}

func (suite *TestSuiteStandard) TestSubscriptionPayTwice() {
	subscription := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name: "Gym",
		Cost: decimal.NewFromFloat(30),
	})

	for i := 0; i < 2; i++ {
		r := test.Request(suite.T(), http.MethodPost, subscription.Data.Links.Pay, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	}

	// Paying twice books twice
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestSubscriptionUpdate() {
	subscription := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name: "Cloud storage",
		Cost: decimal.NewFromFloat(2.99),
	})

	r := test.Request(suite.T(), http.MethodPatch, subscription.Data.Links.Self, map[string]any{
		"cost": 3.99,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SubscriptionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Cost.Equal(decimal.NewFromFloat(3.99)))
	assert.Equal(suite.T(), "Cloud storage", response.Data.Name)
}

func (suite *TestSuiteStandard) TestSubscriptionDeleteKeepsPayments() {
	subscription := createTestSubscription(suite.T(), v1.SubscriptionEditable{
		Name: "Magazine",
		Cost: decimal.NewFromFloat(5),
	})

	r := test.Request(suite.T(), http.MethodPost, subscription.Data.Links.Pay, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodDelete, subscription.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The payment stays in the ledger
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Magazine payment", response.Data[0].Label)
}

func (suite *TestSuiteStandard) TestSubscriptionNotFound() {
	tests := []struct {
		method string
		url    string
	}{
		{http.MethodGet, "http://example.com/v1/subscriptions/5f0cab7f-cf5c-4ae2-b580-8aafba53f6e1"},
		{http.MethodPost, "http://example.com/v1/subscriptions/5f0cab7f-cf5c-4ae2-b580-8aafba53f6e1/pay"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}
}
