package model

import "strings"

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyLKR Currency = "LKR"
	CurrencyINR Currency = "INR"
	CurrencyEUR Currency = "EUR"
)

var Currencies = []Currency{CurrencyUSD, CurrencyLKR, CurrencyINR, CurrencyEUR}

// ParseCurrency accepts a code in any case and reports whether it is supported.
func ParseCurrency(v string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(v)))
	for _, known := range Currencies {
		if c == known {
			return c, true
		}
	}
	return "", false
}

type Settings struct {
	DarkMode            bool     `json:"darkMode" yaml:"darkMode"`
	StoreMode           bool     `json:"storeMode" yaml:"storeMode"`
	Notifications       bool     `json:"notifications" yaml:"notifications"`
	DefaultCategory     string   `json:"defaultCategory" yaml:"defaultCategory"`
	Budget              *float64 `json:"budget,omitempty" yaml:"budget,omitempty"`
	VoiceEnabled        bool     `json:"voiceEnabled" yaml:"voiceEnabled"`
	Currency            Currency `json:"currency" yaml:"currency"`
	DietaryPreferences  []string `json:"dietaryPreferences" yaml:"dietaryPreferences"`
	SustainabilityMode  bool     `json:"sustainabilityMode" yaml:"sustainabilityMode"`
	GamificationEnabled bool     `json:"gamificationEnabled" yaml:"gamificationEnabled"`
}

// DefaultSettings is what a fresh install starts with. Stored settings are
// merged over these so fields added later keep their defaults.
func DefaultSettings() Settings {
	return Settings{
		DarkMode:            false,
		StoreMode:           false,
		Notifications:       true,
		DefaultCategory:     DefaultCategory,
		Currency:            CurrencyLKR,
		DietaryPreferences:  []string{},
		SustainabilityMode:  false,
		GamificationEnabled: true,
	}
}
