package quiz

import "strings"

// BlankMarker is the placeholder character inside a question sentence.
const BlankMarker = "_"

// BlankCount returns the number of blanks in a sentence.
func BlankCount(sentence string) int {
	return strings.Count(sentence, BlankMarker)
}

// IsCorrect is the single scoring rule for the whole system: the selection must
// have the same length as the answer key and match it per position. Order- and
// case-sensitive, no trimming or normalization.
func IsCorrect(selected, correctAnswers []string) bool {
	if len(selected) != len(correctAnswers) {
		return false
	}
	for i := range correctAnswers {
		if selected[i] != correctAnswers[i] {
			return false
		}
	}
	return true
}
