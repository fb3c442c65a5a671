package models

import (
	"time"

	"gorm.io/datatypes"
)

// ConsultantLog records every consultant answer together with the aggregate
// totals it was grounded on.
type ConsultantLog struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	Question string `json:"question" gorm:"type:text"`
	Answer   string `json:"answer" gorm:"type:text"`

	// "rule" when a regex intent answered locally, "llm" otherwise.
	Mode string `json:"mode" gorm:"size:16"`

	Context datatypes.JSON `json:"context,omitempty" gorm:"column:context"`
}
