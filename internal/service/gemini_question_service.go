package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Sentret/config"
	"github.com/lshigami/Sentret/internal/model"
	"github.com/lshigami/Sentret/internal/quiz"
	"github.com/lshigami/Sentret/internal/repository"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiQuestionService generates fill-in-the-blank questions for a topic and
// persists the ones that pass validation.
type GeminiQuestionService interface {
	GenerateQuestions(topic string, count int) ([]model.Question, error)
}

type geminiQuestionService struct {
	client       *genai.GenerativeModel
	questionRepo repository.QuestionRepository
	cfg          *config.Config
}

func NewGeminiQuestionService(cfg *config.Config, questionRepo repository.QuestionRepository) (GeminiQuestionService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question generation will not function.")
		return &geminiQuestionService{cfg: cfg, questionRepo: questionRepo, client: nil}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiQuestionService{
		client:       client.GenerativeModel("gemini-1.5-flash"),
		questionRepo: questionRepo,
		cfg:          cfg,
	}, nil
}

func (s *geminiQuestionService) GenerateQuestions(topic string, count int) ([]model.Question, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: gemini client not configured", quiz.ErrFetch)
	}

	ctx := context.Background()
	prompt := buildGenerationPrompt(topic, count)

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Error generating questions from Gemini")
		return nil, fmt.Errorf("%w: %v", quiz.ErrFetch, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Interface("geminiResponse", resp).Msg("Gemini response was empty or malformed")
		return nil, fmt.Errorf("%w: gemini returned no content", quiz.ErrParse)
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}

	questions := parseGeneratedQuestions(raw.String())
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no usable questions in gemini output", quiz.ErrParse)
	}

	if err := s.questionRepo.CreateBatch(questions); err != nil {
		log.Error().Err(err).Msg("Failed to persist generated questions")
		return nil, err
	}
	return questions, nil
}

func buildGenerationPrompt(topic string, count int) string {
	var sb strings.Builder
	sb.WriteString("You are building a vocabulary quiz.\n")
	sb.WriteString(fmt.Sprintf("Generate %d fill-in-the-blank sentences about the topic %q.\n", count, topic))
	sb.WriteString("Each sentence uses the character _ for every blank.\n")
	sb.WriteString("For each question, output exactly three lines and then a line containing only ---:\n")
	sb.WriteString("SENTENCE: <sentence with one or more _ blanks>\n")
	sb.WriteString("ANSWERS: <correct word for each blank, in order, separated by |>\n")
	sb.WriteString("OPTIONS: <the correct words plus plausible distractors, separated by |>\n")
	sb.WriteString("Output nothing else.\n")
	return sb.String()
}

// parseGeneratedQuestions scans the model output for SENTENCE/ANSWERS/OPTIONS
// blocks. Blocks that do not validate are logged and skipped.
func parseGeneratedQuestions(raw string) []model.Question {
	var questions []model.Question
	var sentence string
	var answers, options []string

	flush := func() {
		if sentence == "" {
			return
		}
		if err := validateQuestion(sentence, options, answers); err != nil {
			log.Warn().Err(err).Str("sentence", sentence).Msg("Skipping invalid generated question")
		} else {
			questions = append(questions, model.Question{
				Sentence:       sentence,
				Options:        options,
				CorrectAnswers: answers,
			})
		}
		sentence, answers, options = "", nil, nil
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "SENTENCE:"):
			flush()
			sentence = strings.TrimSpace(strings.TrimPrefix(line, "SENTENCE:"))
		case strings.HasPrefix(line, "ANSWERS:"):
			answers = splitPipeList(strings.TrimPrefix(line, "ANSWERS:"))
		case strings.HasPrefix(line, "OPTIONS:"):
			options = splitPipeList(strings.TrimPrefix(line, "OPTIONS:"))
		case line == "---":
			flush()
		}
	}
	flush()
	return questions
}

func splitPipeList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, "|") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
