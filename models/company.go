package models

import (
	"time"
)

// Company is a corporate occupant. Like Guest, the stay fields mirror the
// newest reservation only.
type Company struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string `json:"name" gorm:"size:255"`
	CNPJ        string `json:"cnpj" gorm:"size:32"`
	MainContact string `json:"mainContact" gorm:"column:main_contact;size:255"`
	Phone       string `json:"phone" gorm:"size:32"`
	Email       string `json:"email" gorm:"size:255"`

	RoomCode   string  `json:"roomId" gorm:"column:room_code;size:50"`
	RoomNumber string  `json:"roomNumber" gorm:"column:room_number;size:50"`
	CheckIn    string  `json:"checkIn" gorm:"column:check_in;size:32"`
	CheckOut   string  `json:"checkOut" gorm:"column:check_out;size:32"`
	Guests     int     `json:"guests" gorm:"default:1"`
	Value      float64 `json:"value"`
	Notes      string  `json:"notes" gorm:"type:text"`
}
