package validation

import (
	"regexp"
	"strings"

	"art-atlas/internal/domain"
	"art-atlas/internal/util"
)

const (
	maxItemIDLength = 100
	maxAnswerLength = 2000
	maxQueryLength  = 200
	// MaxResponseLength bounds a single worksheet answer.
	MaxResponseLength = 10000
)

var validItemID = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateItemID validates an item id taken from the path.
func (v *Validator) ValidateItemID(itemID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(itemID) == "" {
		errors = append(errors, domain.NewMissingFieldError("item_id"))
		return errors
	}
	if !isValidItemID(itemID) {
		errors = append(errors, domain.NewInvalidFormatError("item_id", itemID))
	}
	return errors
}

// ValidateCheckAnswerRequest validates the check answer request
func (v *Validator) ValidateCheckAnswerRequest(sessionID, questionID, answer string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !util.IsULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	if strings.TrimSpace(questionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_id"))
	} else if !util.IsULID(questionID) {
		errors = append(errors, domain.NewInvalidFormatError("question_id", questionID))
	}

	if answer == "" {
		errors = append(errors, domain.NewMissingFieldError("answer"))
	} else if len(answer) > maxAnswerLength {
		errors = append(errors, domain.NewOutOfRangeError("answer", len(answer), 1, maxAnswerLength))
	}

	return errors
}

// ValidateSessionID validates an optional quiz session id; empty is allowed.
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if sessionID != "" && !util.IsULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}
	return errors
}

// ValidateFeaturedCount validates the size of the featured strip.
func (v *Validator) ValidateFeaturedCount(count, max int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if count <= 0 || count > max {
		errors = append(errors, domain.NewOutOfRangeError("count", count, 1, max))
	}
	return errors
}

// ValidateSearchQuery bounds free-text search terms.
func (v *Validator) ValidateSearchQuery(q string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if len(q) > maxQueryLength {
		errors = append(errors, domain.NewOutOfRangeError("q", len(q), 0, maxQueryLength))
	}
	return errors
}

// ValidateWorksheetResponses bounds every answer of a worksheet.
func (v *Validator) ValidateWorksheetResponses(r domain.WorksheetResponses, keys []string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	for _, key := range keys {
		if n := len(r.Field(key)); n > MaxResponseLength {
			errors = append(errors, domain.NewOutOfRangeError("responses."+key, n, 0, MaxResponseLength))
		}
	}
	return errors
}

// isValidItemID checks if the item id format is valid
func isValidItemID(s string) bool {
	if len(s) > maxItemIDLength {
		return false
	}
	return validItemID.MatchString(s)
}
