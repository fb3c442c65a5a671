package models

import (
	"time"
)

// Income is a manually registered revenue entry. Confirmed reservation
// payments are merged in at read time, not copied into this table.
type Income struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	Description string  `json:"description" gorm:"size:255"`
	Date        string  `json:"date" gorm:"size:32;index"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method" gorm:"size:64"`
}

type Expense struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	Description string  `json:"description" gorm:"size:255"`
	Category    string  `json:"category" gorm:"size:64"`
	Date        string  `json:"date" gorm:"size:32;index"`
	Amount      float64 `json:"amount"`
}
