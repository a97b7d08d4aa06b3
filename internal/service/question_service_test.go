package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Sentret/internal/dto"
	"github.com/lshigami/Sentret/internal/quiz"
)

func TestCreateQuestionValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.QuestionCreateDTO
	}{
		{
			name: "no blanks in sentence",
			req: dto.QuestionCreateDTO{
				Sentence:       "The cat sat on the mat.",
				Options:        []string{"sat"},
				CorrectAnswers: []string{"sat"},
			},
		},
		{
			name: "answer count does not match blanks",
			req: dto.QuestionCreateDTO{
				Sentence:       "The cat _ on the _.",
				Options:        []string{"sat", "mat"},
				CorrectAnswers: []string{"sat"},
			},
		},
		{
			name: "fewer options than blanks",
			req: dto.QuestionCreateDTO{
				Sentence:       "The cat _ on the _.",
				Options:        []string{"sat"},
				CorrectAnswers: []string{"sat", "mat"},
			},
		},
		{
			name: "correct answer missing from options",
			req: dto.QuestionCreateDTO{
				Sentence:       "The cat _ on the _.",
				Options:        []string{"sat", "ran"},
				CorrectAnswers: []string{"sat", "mat"},
			},
		},
	}

	svc := NewQuestionService(&fakeQuestionRepo{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateQuestion(tt.req)
			if err == nil {
				t.Fatal("CreateQuestion accepted an invalid question")
			}
			if !errors.Is(err, quiz.ErrValidation) {
				t.Errorf("error %v does not wrap ErrValidation", err)
			}
		})
	}
}

func TestCreateQuestionValid(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionRepo{})

	question, err := svc.CreateQuestion(dto.QuestionCreateDTO{
		Sentence:       "Water _ downhill.",
		Options:        []string{"flows", "sleeps"},
		CorrectAnswers: []string{"flows"},
	})
	if err != nil {
		t.Fatalf("CreateQuestion returned error: %v", err)
	}
	if question.Sentence != "Water _ downhill." {
		t.Errorf("Sentence = %q, want the submitted sentence", question.Sentence)
	}
	if len(question.CorrectAnswers) != 1 || question.CorrectAnswers[0] != "flows" {
		t.Errorf("CorrectAnswers = %v, want [flows]", question.CorrectAnswers)
	}
}
