package v1

import (
	"fmt"

	"github.com/CarlosRW/Fince-AI-Budget/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SettingsEditable struct {
	InitialBalance  decimal.Decimal `json:"initialBalance" example:"1500" minimum:"-999999999999.99999999" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Starting balance of the ledger
	CurrencySymbol  string          `json:"currencySymbol" example:"€" default:"$"`              // Symbol shown next to amounts
	CurrencyCode    string          `json:"currencyCode" example:"EUR" default:"USD"`            // ISO 4217 code, used in export file names
	CurrencyCountry string          `json:"currencyCountry" example:"Germany" default:"United States"` // Country the currency belongs to
	AccentColor     string          `json:"accentColor" example:"#3b82f6" default:"#3b82f6"`     // Accent color for clients, as a hex value
	DarkMode        bool            `json:"darkMode" example:"true" default:"false"`             // Whether clients should render in dark mode
}

// model returns the database resource for the API representation of the editable fields
func (editable SettingsEditable) model() models.Settings {
	return models.Settings{
		InitialBalance:  editable.InitialBalance,
		CurrencySymbol:  editable.CurrencySymbol,
		CurrencyCode:    editable.CurrencyCode,
		CurrencyCountry: editable.CurrencyCountry,
		AccentColor:     editable.AccentColor,
		DarkMode:        editable.DarkMode,
	}
}

type SettingsLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/settings"` // The settings
}

type Settings struct {
	models.DefaultModel
	SettingsEditable
	Links SettingsLinks `json:"links"`
}

// newSettings returns the API representation of the resource
func newSettings(c *gin.Context, model models.Settings) Settings {
	url := c.GetString(string(models.DBContextURL))

	return Settings{
		DefaultModel: model.DefaultModel,
		SettingsEditable: SettingsEditable{
			InitialBalance:  model.InitialBalance,
			CurrencySymbol:  model.CurrencySymbol,
			CurrencyCode:    model.CurrencyCode,
			CurrencyCountry: model.CurrencyCountry,
			AccentColor:     model.AccentColor,
			DarkMode:        model.DarkMode,
		},
		Links: SettingsLinks{
			Self: fmt.Sprintf("%s/v1/settings", url),
		},
	}
}

type SettingsResponse struct {
	Error *string   `json:"error" example:"there is no setting matching your query"` // The error, if any occurred
	Data  *Settings `json:"data"`                                                     // The resource
}
