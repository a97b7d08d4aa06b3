package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/model"
	"github.com/lshigami/Sentret/internal/quiz"
	"github.com/lshigami/Sentret/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	GetAllQuestions() ([]dto.QuestionDTO, error)
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionDTO, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionDTO, error) {
	questions, err := s.questionRepo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch questions from repository")
		return nil, fmt.Errorf("%w: %v", quiz.ErrFetch, err)
	}

	dtos := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		var item dto.QuestionDTO
		if err := copier.Copy(&item, &q); err != nil {
			return nil, fmt.Errorf("error preparing question response: %w", err)
		}
		dtos = append(dtos, item)
	}
	return dtos, nil
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionDTO, error) {
	if err := validateQuestion(req.Sentence, req.Options, req.CorrectAnswers); err != nil {
		return nil, err
	}

	question := model.Question{
		Sentence:       req.Sentence,
		Options:        req.Options,
		CorrectAnswers: req.CorrectAnswers,
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in database")
		return nil, fmt.Errorf("database error creating question: %w", err)
	}

	var resp dto.QuestionDTO
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing created question response: %w", err)
	}
	return &resp, nil
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.FindByID(id); err != nil {
		return fmt.Errorf("question not found with ID %d: %w", id, err)
	}
	return s.questionRepo.Delete(id)
}

// validateQuestion enforces the structural rules every question must satisfy:
// at least one blank, one correct answer per blank in order, every correct
// answer present among the options, and enough options to cover the blanks.
func validateQuestion(sentence string, options, correctAnswers []string) error {
	blanks := quiz.BlankCount(sentence)
	if blanks == 0 {
		return fmt.Errorf("%w: sentence must contain at least one %q blank marker", quiz.ErrValidation, quiz.BlankMarker)
	}
	if len(correctAnswers) != blanks {
		return fmt.Errorf("%w: sentence has %d blanks but %d correct answers were given", quiz.ErrValidation, blanks, len(correctAnswers))
	}
	if len(options) < blanks {
		return fmt.Errorf("%w: need at least %d options to cover the blanks, got %d", quiz.ErrValidation, blanks, len(options))
	}

	optionSet := make(map[string]struct{}, len(options))
	for _, opt := range options {
		optionSet[opt] = struct{}{}
	}
	for _, answer := range correctAnswers {
		if _, ok := optionSet[answer]; !ok {
			return fmt.Errorf("%w: correct answer %q is not among the options", quiz.ErrValidation, answer)
		}
	}
	return nil
}
