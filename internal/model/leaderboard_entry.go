package model

import "time"

// LeaderboardEntry records one completed run. Append-only; restarting a quiz
// never touches prior entries.
type LeaderboardEntry struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	UserID         uint      `json:"userId" gorm:"not null;index"`
	Score          int       `json:"score" gorm:"not null"`
	TotalQuestions int       `json:"totalQuestions" gorm:"not null"`
	CompletedAt    time.Time `json:"completedAt" gorm:"not null;index"`
	CreatedAt      time.Time `json:"-"`
}
