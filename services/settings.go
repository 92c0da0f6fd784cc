package services

import (
	"errors"

	"foodly-api/models"

	"gorm.io/gorm"
)

// Settings manages the singleton settings row (tax rate, default fees,
// currency). Read-only input to order pricing.
type Settings struct {
	db *gorm.DB
}

func NewSettings(db *gorm.DB) *Settings {
	return &Settings{db: db}
}

// Get returns the settings row, creating it with defaults if absent.
func (s *Settings) Get() (*models.Setting, error) {
	var setting models.Setting
	err := s.db.First(&setting).Error
	if err == nil {
		return &setting, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	setting = models.Setting{
		SiteName:       "Foodly",
		Currency:       "USD",
		CurrencySymbol: "$",
		DeliveryFee:    5.0,
	}
	if err := s.db.Create(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// SettingUpdate lists the editable settings fields; nil means "leave as is".
type SettingUpdate struct {
	SiteName        *string  `json:"site_name"`
	Currency        *string  `json:"currency"`
	CurrencySymbol  *string  `json:"currency_symbol"`
	DeliveryFee     *float64 `json:"delivery_fee"`
	TaxRate         *float64 `json:"tax_rate"`
	MinimumOrder    *float64 `json:"minimum_order"`
	MaintenanceMode *bool    `json:"maintenance_mode"`
}

func (s *Settings) Update(upd SettingUpdate) (*models.Setting, error) {
	setting, err := s.Get()
	if err != nil {
		return nil, err
	}
	if upd.SiteName != nil {
		setting.SiteName = *upd.SiteName
	}
	if upd.Currency != nil {
		setting.Currency = *upd.Currency
	}
	if upd.CurrencySymbol != nil {
		setting.CurrencySymbol = *upd.CurrencySymbol
	}
	if upd.DeliveryFee != nil {
		setting.DeliveryFee = *upd.DeliveryFee
	}
	if upd.TaxRate != nil {
		setting.TaxRate = *upd.TaxRate
	}
	if upd.MinimumOrder != nil {
		setting.MinimumOrder = *upd.MinimumOrder
	}
	if upd.MaintenanceMode != nil {
		setting.MaintenanceMode = *upd.MaintenanceMode
	}
	if err := s.db.Save(setting).Error; err != nil {
		return nil, err
	}
	return setting, nil
}
