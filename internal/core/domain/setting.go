package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	SettingFirewoodLowStockThreshold = "low_stock_threshold_firewood"
	SettingPackingLowStockThreshold  = "low_stock_threshold_packing"
	SettingConversionRatio           = "green_leaf_avg_conversion_ratio"
	SettingCurrency                  = "currency"
	SettingMadeTeaUnitValue          = "made_tea_unit_value"
)

// DefaultSettings are used whenever a key has no stored value.
var DefaultSettings = map[string]string{
	SettingFirewoodLowStockThreshold: "500",
	SettingPackingLowStockThreshold:  "1000",
	SettingConversionRatio:           "22",
	SettingCurrency:                  "LKR",
	SettingMadeTeaUnitValue:          "500",
}

// SystemSetting is a key/value configuration pair upserted by key.
type SystemSetting struct {
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Description   string    `json:"description,omitempty"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Settings is a resolved view over stored settings with defaults applied.
type Settings map[string]string

// String returns the stored value or the default for key.
func (s Settings) String(key string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return DefaultSettings[key]
}

// Decimal parses the value for key, falling back to the default when the
// stored value is not a number.
func (s Settings) Decimal(key string) decimal.Decimal {
	if d, err := decimal.NewFromString(s.String(key)); err == nil {
		return d
	}
	d, _ := decimal.NewFromString(DefaultSettings[key])
	return d
}
