package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is a sentence with blank markers ("_") the player fills from Options.
// CorrectAnswers holds one word per blank, in left-to-right order.
type Question struct {
	ID             uint                        `gorm:"primarykey" json:"id"`
	Sentence       string                      `json:"sentence" gorm:"type:text;not null"`
	Options        datatypes.JSONSlice[string] `json:"options" gorm:"not null"`
	CorrectAnswers datatypes.JSONSlice[string] `json:"correctAnswers" gorm:"not null"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt              `gorm:"index" json:"-"`
}
