package models

import (
	"time"
)

// User is a back-office user record. This is a directory only; the service
// performs no login or permission checks.
type User struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName string `json:"fullName" gorm:"size:255"`
	Email    string `json:"email" gorm:"size:255;uniqueIndex"`
	Role     string `json:"role" gorm:"size:64;default:staff"`
	Password string `json:"-" gorm:"size:255"`
	Active   bool   `json:"active" gorm:"default:true"`
}
