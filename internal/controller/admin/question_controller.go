package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/quiz"
	"github.com/lshigami/Sentret/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
	geminiService   service.GeminiQuestionService
}

func NewQuestionController(questionService service.QuestionService, geminiService service.GeminiQuestionService) *QuestionController {
	return &QuestionController{questionService: questionService, geminiService: geminiService}
}

// ListQuestions godoc
// @Summary (Admin) List every question
// @Description Returns the full question set including answer keys, in play order.
// @Tags Admin - Questions
// @Produce json
// @Success 200 {array} dto.QuestionDTO
// @Failure 500 {object} dto.ErrorResponse "Question set unavailable"
// @Security BearerAuth
// @Router /admin/questions [get]
func (ctrl *QuestionController) ListQuestions(c *gin.Context) {
	questions, err := ctrl.questionService.GetAllQuestions()
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to the quiz
// @Description The sentence must contain at least one _ blank, with one correct answer per blank. Every correct answer must appear among the options.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 422 {object} dto.ErrorResponse "Question fails validation"
// @Security BearerAuth
// @Router /admin/questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: failed to bind request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := ctrl.questionService.CreateQuestion(req)
	if err != nil {
		if errors.Is(err, quiz.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("CreateQuestion: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question"})
		return
	}
	c.JSON(http.StatusCreated, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Remove a question
// @Description Soft-deletes the question. Sessions already holding it keep playing their loaded set.
// @Tags Admin - Questions
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/questions/{id} [delete]
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid question ID format"})
		return
	}

	if err := ctrl.questionService.DeleteQuestion(uint(id)); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("DeleteQuestion: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete question"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateQuestions godoc
// @Summary (Admin) Generate questions with AI
// @Description Asks the language model for fill-in-the-blank sentences on a topic. Generated questions that fail validation are skipped; the rest are persisted and returned.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsDTO true "Topic and question count"
// @Success 201 {array} model.Question
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "Language model unavailable or returned unusable output"
// @Security BearerAuth
// @Router /admin/questions/generate [post]
func (ctrl *QuestionController) GenerateQuestions(c *gin.Context) {
	var req dto.GenerateQuestionsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	questions, err := ctrl.geminiService.GenerateQuestions(req.Topic, req.Count)
	if err != nil {
		if errors.Is(err, quiz.ErrFetch) || errors.Is(err, quiz.ErrParse) {
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Question generation failed", Details: []string{err.Error()}})
			return
		}
		log.Error().Err(err).Str("topic", req.Topic).Msg("GenerateQuestions: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate questions"})
		return
	}
	c.JSON(http.StatusCreated, questions)
}
