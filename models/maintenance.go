package models

import (
	"time"

	"gorm.io/gorm"
)

type MaintenanceTicket struct {
	gorm.Model

	RoomID   *uint  `json:"roomId,omitempty" gorm:"column:room_id;index"`
	RoomCode string `json:"roomIdentifier" gorm:"column:room_code;size:50"`

	Issue    string `json:"issue" gorm:"type:text"`
	Priority string `json:"priority" gorm:"size:32"`
	Status   string `json:"status" gorm:"size:32;default:open"`

	OpenedAt    time.Time  `json:"openedAt" gorm:"column:opened_at"`
	CompletedOn *time.Time `json:"completedOn,omitempty" gorm:"column:completed_on"`

	Notes string `json:"notes,omitempty" gorm:"type:text"`
}
