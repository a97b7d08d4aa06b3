package dto

import "time"

// UserDTO is the public view of an account.
type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponseDTO is returned by register and login.
type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// QuestionDTO is the full question shape, answer key included. Served by the
// question listing and the completion summary.
type QuestionDTO struct {
	ID             uint      `json:"id"`
	Sentence       string    `json:"sentence"`
	Options        []string  `json:"options"`
	CorrectAnswers []string  `json:"correctAnswers"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CurrentQuestionDTO is the in-play view of a question. The answer key is
// withheld; scoring happens in the session engine.
type CurrentQuestionDTO struct {
	ID               uint     `json:"id"`
	Sentence         string   `json:"sentence"`
	Options          []string `json:"options"`
	Blanks           int      `json:"blanks"`
	TimeLimitSeconds int      `json:"timeLimitSeconds"`
}

// AnswerDTO mirrors one scored answer in session state.
type AnswerDTO struct {
	QuestionID  uint     `json:"questionId"`
	UserAnswers []string `json:"userAnswers"`
	IsCorrect   bool     `json:"isCorrect"`
}

// SessionStateDTO is the snapshot the presentation layer renders from.
type SessionStateDTO struct {
	SessionID            string              `json:"sessionId"`
	CurrentQuestionIndex int                 `json:"currentQuestionIndex"`
	TotalQuestions       int                 `json:"totalQuestions"`
	Completed            bool                `json:"completed"`
	Score                int                 `json:"score"`
	CurrentQuestion      *CurrentQuestionDTO `json:"currentQuestion,omitempty"`
	Answers              []AnswerDTO         `json:"answers"`
}

// ReviewItemDTO pairs a question with how the player answered it.
type ReviewItemDTO struct {
	Question    QuestionDTO `json:"question"`
	UserAnswers []string    `json:"userAnswers"`
	IsCorrect   bool        `json:"isCorrect"`
}

// SummaryDTO is the feedback screen after completion.
type SummaryDTO struct {
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	Review         []ReviewItemDTO `json:"review"`
}

// LeaderboardEntryDTO is one ranked row.
type LeaderboardEntryDTO struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"userId"`
	Username       string    `json:"username"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	CompletedAt    time.Time `json:"completedAt"`
}

// LeaderboardDTO is the filtered, ordered board plus the caller's rank when
// they appear on it.
type LeaderboardDTO struct {
	Filter   string                `json:"filter"`
	Entries  []LeaderboardEntryDTO `json:"entries"`
	UserRank *int                  `json:"userRank,omitempty"`
}

// AttemptDTO summarizes one completed run on a profile.
type AttemptDTO struct {
	ID             uint      `json:"id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	CompletedAt    time.Time `json:"completedAt"`
}

// StatsDTO aggregates a user's completed runs.
type StatsDTO struct {
	TotalAttempts          int     `json:"totalAttempts"`
	AverageScore           float64 `json:"averageScore"`
	BestScore              int     `json:"bestScore"`
	TotalQuestionsAnswered int     `json:"totalQuestionsAnswered"`
}

// ProfileDTO is the profile page payload.
type ProfileDTO struct {
	User           UserDTO      `json:"user"`
	Stats          StatsDTO     `json:"stats"`
	RecentAttempts []AttemptDTO `json:"recentAttempts"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
