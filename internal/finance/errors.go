package finance

import (
	"fmt"
	"strings"
)

// Reason is the reason a field was rejected.
type Reason string

const (
	ReasonMissing    Reason = "MISSING"
	ReasonNotANumber Reason = "NOT_A_NUMBER"
	ReasonNegative   Reason = "NEGATIVE"
)

// Issue is a single rejected field.
type Issue struct {
	Field  Field  `json:"field" example:"grocery"`
	Reason Reason `json:"reason" example:"MISSING" enums:"MISSING,NOT_A_NUMBER,NEGATIVE"`
}

// Message returns a human readable description of the issue.
func (i Issue) Message() string {
	switch i.Reason {
	case ReasonMissing:
		return fmt.Sprintf("%s is required", i.Field)
	case ReasonNotANumber:
		return fmt.Sprintf("%s must be a number", i.Field)
	case ReasonNegative:
		return fmt.Sprintf("%s must not be negative", i.Field)
	}

	return fmt.Sprintf("%s is not valid", i.Field)
}

// ValidationError holds every issue found in a RawInput, ordered like Fields.
// It is never returned with an empty Issues list.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		messages = append(messages, issue.Message())
	}

	return strings.Join(messages, "; ")
}

// Has reports whether the error contains an issue for the field with the given reason.
func (e *ValidationError) Has(field Field, reason Reason) bool {
	for _, issue := range e.Issues {
		if issue.Field == field && issue.Reason == reason {
			return true
		}
	}
	return false
}
