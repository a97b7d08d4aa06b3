package quiz

import "errors"

var (
	// ErrFetch indicates the question store was unreachable or answered with a non-success status.
	ErrFetch = errors.New("failed to fetch questions")
	// ErrParse indicates a payload that does not match the expected question shape.
	ErrParse = errors.New("malformed question payload")
	// ErrNoQuestions is returned when the store holds no content. This is a "no content"
	// state for the caller to present, never a session state.
	ErrNoQuestions = errors.New("no questions available")
	// ErrValidation is returned when a submission's word count does not match the
	// blank count of the current question.
	ErrValidation = errors.New("selection does not match blank count")
	// ErrOutOfRange is returned when the current question is requested after
	// completion or outside the question range.
	ErrOutOfRange = errors.New("question index out of range")
	// ErrSessionNotFound is returned for unknown or expired session IDs.
	ErrSessionNotFound = errors.New("quiz session not found")
)
