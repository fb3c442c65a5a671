package models

import (
	"time"
)

// PropertySetting is a single-row table holding the pousada's profile.
type PropertySetting struct {
	ID uint `gorm:"primaryKey" json:"-"`

	UpdatedAt time.Time `json:"updatedAt"`

	PropertyName       string `json:"propertyName" gorm:"size:255"`
	CNPJ               string `json:"cnpj" gorm:"size:32"`
	Phone              string `json:"phone" gorm:"size:32"`
	Address            string `json:"address" gorm:"size:255"`
	Currency           string `json:"currency" gorm:"size:8;default:BRL"`
	CheckInTime        string `json:"checkInTime" gorm:"column:check_in_time;size:8;default:14:00"`
	CheckOutTime       string `json:"checkOutTime" gorm:"column:check_out_time;size:8;default:12:00"`
	CancellationPolicy string `json:"cancellationPolicy" gorm:"type:text"`
	WifiPassword       string `json:"wifiPassword" gorm:"size:64"`
	Notes              string `json:"notes" gorm:"type:text"`
}
