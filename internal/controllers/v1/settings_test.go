package v1_test

import (
	"net/http"

	v1 "github.com/CarlosRW/Fince-AI-Budget/internal/controllers/v1"
	"github.com/CarlosRW/Fince-AI-Budget/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.InitialBalance.Equal(decimal.Zero))
	assert.Equal(suite.T(), "$", response.Data.CurrencySymbol)
	assert.Equal(suite.T(), "USD", response.Data.CurrencyCode)
	assert.False(suite.T(), response.Data.DarkMode)
}

func (suite *TestSuiteStandard) TestSettingsPatchPartial() {
	response := patchTestSettings(suite.T(), map[string]any{
		"currencySymbol":  "€",
		"currencyCode":    "EUR",
		"currencyCountry": "Germany",
	})

	assert.Equal(suite.T(), "€", response.Data.CurrencySymbol)
	assert.Equal(suite.T(), "EUR", response.Data.CurrencyCode)

	// Fields not in the patch keep their values
	assert.True(suite.T(), response.Data.InitialBalance.Equal(decimal.Zero))
	assert.Equal(suite.T(), "#3b82f6", response.Data.AccentColor)
}

func (suite *TestSuiteStandard) TestSettingsPatchInitialBalance() {
	_ = patchTestSettings(suite.T(), map[string]any{"initialBalance": 1500})

	// The balance shifts with the initial balance
	balance := getTestBalance(suite.T())
	assert.True(suite.T(), balance.Equal(decimal.NewFromFloat(1500)), "balance is %s", balance)
}

func (suite *TestSuiteStandard) TestSettingsPatchDarkModeFalse() {
	_ = patchTestSettings(suite.T(), map[string]any{"darkMode": true})

	// Setting a boolean back to false must work, the patch selects fields
	// from the body, not from the zero values
	response := patchTestSettings(suite.T(), map[string]any{"darkMode": false})
	assert.False(suite.T(), response.Data.DarkMode)
}

func (suite *TestSuiteStandard) TestSettingsPatchInvalid() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", `{ broken`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSettingsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
