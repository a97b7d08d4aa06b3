package user

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/middleware"
	"github.com/lshigami/Sentret/internal/quiz"
	"github.com/lshigami/Sentret/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	questionService service.QuestionService
	sessionService  service.SessionService
}

func NewQuizController(questionService service.QuestionService, sessionService service.SessionService) *QuizController {
	return &QuizController{questionService: questionService, sessionService: sessionService}
}

// GetAllQuestions godoc
// @Summary List the full question set
// @Description Returns every question including its answer key, in play order.
// @Tags Questions
// @Produce json
// @Success 200 {array} dto.QuestionDTO
// @Failure 500 {object} dto.ErrorResponse "Question set unavailable"
// @Router /questions [get]
func (ctrl *QuizController) GetAllQuestions(c *gin.Context) {
	questions, err := ctrl.questionService.GetAllQuestions()
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuestions: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// StartSession godoc
// @Summary Start (or resume) a quiz session
// @Description Anonymous callers get a fresh session keyed by a generated ID. Authenticated callers resume their saved progress when a snapshot exists.
// @Tags Session
// @Produce json
// @Success 200 {object} dto.SessionStateDTO
// @Failure 500 {object} dto.ErrorResponse "Question set unavailable"
// @Security BearerAuth
// @Router /session [post]
func (ctrl *QuizController) StartSession(c *gin.Context) {
	state, err := ctrl.sessionService.Start(middleware.CurrentUser(c))
	if err != nil {
		writeQuizError(c, err, "Failed to start session")
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetSessionState godoc
// @Summary Get the current session state
// @Tags Session
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /session/{session_id} [get]
func (ctrl *QuizController) GetSessionState(c *gin.Context) {
	state, err := ctrl.sessionService.State(c.Param("session_id"), middleware.CurrentUser(c))
	if err != nil {
		writeQuizError(c, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, state)
}

// SubmitAnswers godoc
// @Summary Submit answers for the current question
// @Description One word per blank, in order. Scoring is case-sensitive and positional. Set timedOut when the timer expired; timed-out submissions may carry fewer words than blanks.
// @Tags Session
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answers body dto.SubmitAnswersDTO true "Selected words"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already completed"
// @Failure 422 {object} dto.ErrorResponse "Word count does not match the blank count"
// @Security BearerAuth
// @Router /session/{session_id}/answers [post]
func (ctrl *QuizController) SubmitAnswers(c *gin.Context) {
	var req dto.SubmitAnswersDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := ctrl.sessionService.Submit(c.Param("session_id"), middleware.CurrentUser(c), req)
	if err != nil {
		writeQuizError(c, err, "Failed to submit answers")
		return
	}
	c.JSON(http.StatusOK, state)
}

// RestartSession godoc
// @Summary Restart the quiz from the first question
// @Description Clears all answers and the score. The only way out of a completed session.
// @Tags Session
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /session/{session_id}/restart [post]
func (ctrl *QuizController) RestartSession(c *gin.Context) {
	state, err := ctrl.sessionService.Restart(c.Param("session_id"), middleware.CurrentUser(c))
	if err != nil {
		writeQuizError(c, err, "Failed to restart session")
		return
	}
	c.JSON(http.StatusOK, state)
}

// GetSummary godoc
// @Summary Get the completion summary
// @Description Available only after the last question was answered. Includes the answer key for review.
// @Tags Session
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SummaryDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session not completed yet"
// @Security BearerAuth
// @Router /session/{session_id}/summary [get]
func (ctrl *QuizController) GetSummary(c *gin.Context) {
	summary, err := ctrl.sessionService.Summary(c.Param("session_id"), middleware.CurrentUser(c))
	if err != nil {
		writeQuizError(c, err, "Failed to load summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// WatchSession godoc
// @Summary Stream session state changes
// @Description Server-sent events. The first event is the current state; each submit or restart pushes a new one.
// @Tags Session
// @Produce text/event-stream
// @Param session_id path string true "Session ID"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /session/{session_id}/events [get]
func (ctrl *QuizController) WatchSession(c *gin.Context) {
	updates, cancel, err := ctrl.sessionService.Watch(c.Param("session_id"), middleware.CurrentUser(c))
	if err != nil {
		writeQuizError(c, err, "Failed to watch session")
		return
	}
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("state", snapshot)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// writeQuizError maps engine sentinels to HTTP status codes.
func writeQuizError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, quiz.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Session not found"})
	case errors.Is(err, quiz.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, quiz.ErrOutOfRange):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, quiz.ErrNoQuestions):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "No questions are available"})
	case errors.Is(err, quiz.ErrFetch), errors.Is(err, quiz.ErrParse):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback})
	default:
		log.Error().Err(err).Msg(fallback)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback})
	}
}
