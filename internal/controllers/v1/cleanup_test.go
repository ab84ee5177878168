package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/CarlosRW/Fince-AI-Budget/internal/controllers/v1"
	"github.com/CarlosRW/Fince-AI-Budget/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCleanup() {
	patchTestSettings(suite.T(), map[string]any{"initialBalance": 1000, "darkMode": true})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Label: "Salary", Amount: decimal.NewFromFloat(500)})
	_ = createTestGoal(suite.T(), v1.GoalEditable{Name: "Bike", Target: decimal.NewFromFloat(300)})
	_ = createTestSubscription(suite.T(), v1.SubscriptionEditable{Name: "Netflix", Cost: decimal.NewFromFloat(12.99)})

	// Delete
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// Verify
	tests := []string{
		"http://example.com/v1/transactions",
		"http://example.com/v1/goals",
		"http://example.com/v1/subscriptions",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}

	// The settings are back to the defaults
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	var settings v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &settings)
	require.NotNil(suite.T(), settings.Data)
	assert.True(suite.T(), settings.Data.InitialBalance.Equal(decimal.Zero))
	assert.False(suite.T(), settings.Data.DarkMode)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"No confirmation", ""},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
