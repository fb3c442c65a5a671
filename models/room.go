package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	// RoomNumber is the display number ("105"); RoomCode is the free-text
	// identifier historical records reference ("RM-105").
	RoomNumber string `json:"number" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomCode   string `json:"code"   gorm:"column:room_code;index;type:varchar(50)"`

	Status string  `json:"status" gorm:"type:varchar(32);default:available"`
	Floor  string  `json:"floor" gorm:"type:varchar(10)"`
	Price  float64 `json:"price"`

	// Occupant annotation. Cleared (NULL) whenever the room is available.
	Guest      *string `json:"guest" gorm:"column:guest;type:varchar(255)"`
	GuestNotes *string `json:"guestNotes" gorm:"column:guest_notes;type:text"`

	Description string `json:"description" gorm:"type:text"`
}

// Label returns the best display label for the room.
func (r Room) Label() string {
	if r.RoomNumber != "" {
		return r.RoomNumber
	}
	if r.RoomCode != "" {
		return r.RoomCode
	}
	return "—"
}
