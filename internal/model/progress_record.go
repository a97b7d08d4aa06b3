package model

import (
	"time"

	"gorm.io/datatypes"
)

// AnswerRecord is one scored answer as it travels through progress snapshots,
// session state and the completion summary. IsCorrect is derived once and frozen.
type AnswerRecord struct {
	QuestionID  uint     `json:"questionId"`
	UserAnswers []string `json:"userAnswers"`
	IsCorrect   bool     `json:"isCorrect"`
}

// ProgressRecord is an append-only snapshot of a user's run. Rows are never
// updated in place; the latest row by Timestamp wins on read.
type ProgressRecord struct {
	ID                uint                              `gorm:"primarykey" json:"id"`
	UserID            uint                              `json:"userId" gorm:"not null;index"`
	LastQuestionIndex int                               `json:"lastQuestionIndex" gorm:"not null"`
	UserAnswers       datatypes.JSONSlice[AnswerRecord] `json:"userAnswers"`
	Timestamp         time.Time                         `json:"timestamp" gorm:"not null;index"`
	CreatedAt         time.Time                         `json:"-"`
}
