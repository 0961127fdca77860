package model

import "time"

// SettingsRowID is the primary key of the singleton settings row.
const SettingsRowID uint = 1

type Setting struct {
	ID                    uint      `gorm:"primaryKey" json:"-"`
	StoreName             string    `gorm:"type:varchar(120)" json:"store_name"`
	SupportPhone          string    `gorm:"type:varchar(20)" json:"support_phone"`
	SupportEmail          string    `gorm:"type:varchar(191)" json:"support_email"`
	AnnouncementBar       string    `gorm:"type:varchar(255)" json:"announcement_bar"`
	ShippingFee           int64     `gorm:"not null" json:"shipping_fee"`
	FreeShippingThreshold int64     `gorm:"not null" json:"free_shipping_threshold"`
	CommissionPercent     int       `gorm:"not null" json:"commission_percent"`
	MaintenanceMode       bool      `gorm:"not null" json:"maintenance_mode"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// PublicSettings is the storefront-visible subset of Setting.
type PublicSettings struct {
	StoreName             string `json:"store_name"`
	SupportPhone          string `json:"support_phone"`
	SupportEmail          string `json:"support_email"`
	AnnouncementBar       string `json:"announcement_bar"`
	ShippingFee           int64  `json:"shipping_fee"`
	FreeShippingThreshold int64  `json:"free_shipping_threshold"`
	MaintenanceMode       bool   `json:"maintenance_mode"`
}

func (s Setting) Public() PublicSettings {
	return PublicSettings{
		StoreName:             s.StoreName,
		SupportPhone:          s.SupportPhone,
		SupportEmail:          s.SupportEmail,
		AnnouncementBar:       s.AnnouncementBar,
		ShippingFee:           s.ShippingFee,
		FreeShippingThreshold: s.FreeShippingThreshold,
		MaintenanceMode:       s.MaintenanceMode,
	}
}

// DefaultSettings is served until an admin saves the first settings row.
func DefaultSettings() Setting {
	return Setting{
		ID:                    SettingsRowID,
		StoreName:             "استایلینو",
		ShippingFee:           50000,
		FreeShippingThreshold: 1000000,
		CommissionPercent:     10,
	}
}
