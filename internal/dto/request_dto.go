package dto

// RegisterDTO creates a new account.
type RegisterDTO struct {
	Username string `json:"username" binding:"required,min=3,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginDTO authenticates an existing account.
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SubmitAnswersDTO carries the words a player placed into the blanks of the
// current question, in blank order. TimedOut marks submissions forced by the
// question timer; those may be partial or empty.
type SubmitAnswersDTO struct {
	Words    []string `json:"words"`
	TimedOut bool     `json:"timedOut"`
}

// QuestionCreateDTO is for admins adding a question by hand.
type QuestionCreateDTO struct {
	Sentence       string   `json:"sentence" binding:"required"`
	Options        []string `json:"options" binding:"required,min=1"`
	CorrectAnswers []string `json:"correctAnswers" binding:"required,min=1"`
}

// GenerateQuestionsDTO asks the LLM to draft new questions on a topic.
type GenerateQuestionsDTO struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count" binding:"required,min=1,max=20"`
}
