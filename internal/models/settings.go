package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Settings is a singleton resource holding the starting balance and the
// presentation preferences. Exactly one row exists at all times.
type Settings struct {
	DefaultModel
	InitialBalance  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrencySymbol  string
	CurrencyCode    string
	CurrencyCountry string
	AccentColor     string
	DarkMode        bool
}

// defaultSettings matches a fresh, unconfigured installation.
func defaultSettings() Settings {
	return Settings{
		InitialBalance:  decimal.Zero,
		CurrencySymbol:  "$",
		CurrencyCode:    "USD",
		CurrencyCountry: "United States",
		AccentColor:     "#3b82f6",
		DarkMode:        false,
	}
}

// ensureSettings creates the settings row if it does not exist yet.
func ensureSettings(db *gorm.DB) error {
	var count int64
	err := db.Model(&Settings{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	settings := defaultSettings()
	return db.Create(&settings).Error
}

// ResetSettings restores the settings singleton to its defaults.
func ResetSettings(db *gorm.DB) error {
	settings, err := GetSettings(db)
	if err != nil {
		return err
	}

	defaults := defaultSettings()
	return db.Model(&settings).
		Select("InitialBalance", "CurrencySymbol", "CurrencyCode", "CurrencyCountry", "AccentColor", "DarkMode").
		Updates(defaults).Error
}

// GetSettings returns the settings singleton.
func GetSettings(db *gorm.DB) (Settings, error) {
	var settings Settings
	err := db.First(&settings).Error
	return settings, err
}
