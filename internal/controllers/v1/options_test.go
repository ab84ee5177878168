package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/CarlosRW/Fince-AI-Budget/internal/controllers/v1"
	"github.com/CarlosRW/Fince-AI-Budget/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestOptions verifies that all endpoints return the correct allowed methods.
func (suite *TestSuiteStandard) TestOptions() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Label: "Options"})
	goal := createTestGoal(suite.T(), v1.GoalEditable{Name: "Options", Target: decimal.NewFromFloat(1)})
	subscription := createTestSubscription(suite.T(), v1.SubscriptionEditable{Name: "Options", Cost: decimal.NewFromFloat(1)})

	tests := []struct {
		url   string
		allow string
	}{
		{"http://example.com/v1/transactions", "GET, POST"},
		{transaction.Data.Links.Self, "GET, PATCH, DELETE"},
		{"http://example.com/v1/goals", "GET, POST"},
		{goal.Data.Links.Self, "GET, PATCH, DELETE"},
		{goal.Data.Links.Complete, "POST"},
		{goal.Data.Links.Revert, "POST"},
		{"http://example.com/v1/subscriptions", "GET, POST"},
		{subscription.Data.Links.Self, "GET, PATCH, DELETE"},
		{subscription.Data.Links.Pay, "POST"},
		{"http://example.com/v1/settings", "GET, PATCH"},
		{"http://example.com/v1/balance", "GET"},
		{"http://example.com/v1/activity", "GET"},
		{"http://example.com/v1/chart", "GET"},
		{"http://example.com/v1/extract", "POST"},
		{"http://example.com/v1/advice", "POST"},
		{"http://example.com/v1/export", "GET"},
		{"http://example.com/v1", "GET, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestOptionsDetailNotFound verifies OPTIONS on nonexistent resources.
func (suite *TestSuiteStandard) TestOptionsDetailNotFound() {
	tests := []string{
		"http://example.com/v1/transactions/4e743e94-6a4b-44d6-aba5-d77c82103fa7",
		"http://example.com/v1/goals/4e743e94-6a4b-44d6-aba5-d77c82103fa7",
		"http://example.com/v1/subscriptions/4e743e94-6a4b-44d6-aba5-d77c82103fa7",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt, "")
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}
}
