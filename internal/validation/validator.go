package validation

import (
	"strings"
	"unicode/utf8"

	"quiz-brief/internal/domain"
	"quiz-brief/internal/util"
)

// Validator provides request validation functionality
type Validator struct {
	maxTextChars int
}

// NewValidator creates a new validator instance. maxTextChars bounds the
// length of submitted texts; <= 0 disables the bound.
func NewValidator(maxTextChars int) *Validator {
	return &Validator{maxTextChars: maxTextChars}
}

// ValidateText validates a free-text field such as the source text or summary
func (v *Validator) ValidateText(field, text string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(text) == "" {
		errors = append(errors, domain.NewMissingFieldError(field))
		return errors
	}
	if n := utf8.RuneCountInString(text); v.maxTextChars > 0 && n > v.maxTextChars {
		errors = append(errors, domain.NewOutOfRangeError(field, n, 1, v.maxTextChars))
	}

	return errors
}

// ValidateStudySetID validates a study set ID path parameter
func (v *Validator) ValidateStudySetID(id string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(id) == "" {
		errors = append(errors, domain.NewMissingFieldError("id"))
	} else if !util.IsValidULID(id) {
		errors = append(errors, domain.NewInvalidFormatError("id", id))
	}

	return errors
}

// ValidateGradeRequest checks that an answer list was sent. An empty list is
// valid for a study set without questions; counts and ranges are checked
// against the study set.
func (v *Validator) ValidateGradeRequest(answers []int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if answers == nil {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}

	return errors
}
