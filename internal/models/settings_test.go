package models_test

import (
	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSettingsCreatedOnConnect() {
	settings, err := models.GetSettings(models.DB)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), settings.InitialBalance.Equal(decimal.Zero))
	assert.Equal(suite.T(), "$", settings.CurrencySymbol)
	assert.Equal(suite.T(), "USD", settings.CurrencyCode)
	assert.Equal(suite.T(), "United States", settings.CurrencyCountry)
	assert.Equal(suite.T(), "#3b82f6", settings.AccentColor)
	assert.False(suite.T(), settings.DarkMode)
}

func (suite *TestSuiteStandard) TestSettingsSingleton() {
	// Connecting twice must not create a second row
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Settings{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestSettingsReset() {
	suite.setInitialBalance(decimal.NewFromFloat(5000))

	settings, err := models.GetSettings(models.DB)
	require.Nil(suite.T(), err)
	err = models.DB.Model(&settings).Select("DarkMode", "CurrencyCode").Updates(models.Settings{DarkMode: true, CurrencyCode: "EUR"}).Error
	require.Nil(suite.T(), err)

	require.Nil(suite.T(), models.ResetSettings(models.DB))

	settings, err = models.GetSettings(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), settings.InitialBalance.Equal(decimal.Zero))
	assert.Equal(suite.T(), "USD", settings.CurrencyCode)
	assert.False(suite.T(), settings.DarkMode)
}
