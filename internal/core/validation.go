package core

import (
	"strings"
	"unicode/utf8"

	"github.com/valter-silva-au/todo/pkg/models"
)

// ValidationError reports user input that was rejected. Its message is
// meant to be shown to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation failures reported by AddTask. Match them with errors.Is.
var (
	ErrTaskEmpty   = &ValidationError{Message: "Task cannot be empty!"}
	ErrTaskTooLong = &ValidationError{Message: "Task is too long (max 200 characters)."}
)

// NormalizeTaskText trims surrounding whitespace from raw input and checks
// the result against the task text rules. It returns the trimmed text.
func NormalizeTaskText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ErrTaskEmpty
	}
	if utf8.RuneCountInString(text) > models.MaxTaskLength {
		return "", ErrTaskTooLong
	}
	return text, nil
}
