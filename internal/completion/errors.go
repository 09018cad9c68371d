package completion

import (
	"errors"
	"fmt"
	"strings"
)

// Stable error codes surfaced to callers of the completion API.
const (
	CodeAlreadyCompleted = "SPRINT_ALREADY_COMPLETED"
	CodeValidationFailed = "SPRINT_COMPLETION_VALIDATION_FAILED"
	CodeUnauthorized     = "UNAUTHORIZED"
)

// ErrAlreadyCompleted indicates the sprint was already finalized. The
// call that produced it made no state changes.
type ErrAlreadyCompleted struct {
	SprintID string
}

func (e *ErrAlreadyCompleted) Error() string {
	return fmt.Sprintf("sprint %s is already completed", e.SprintID)
}

func (e *ErrAlreadyCompleted) Code() string { return CodeAlreadyCompleted }

// ErrValidation indicates the completion submission did not meet the
// minimum requirements. Missing itemizes what is lacking.
type ErrValidation struct {
	SprintID string
	Missing  []string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("sprint %s completion rejected: %s", e.SprintID, strings.Join(e.Missing, "; "))
}

func (e *ErrValidation) Code() string { return CodeValidationFailed }

// ErrUnauthorized indicates the requesting user does not own the
// sprint's objective.
type ErrUnauthorized struct {
	UserID      string
	ObjectiveID string
}

func (e *ErrUnauthorized) Error() string {
	return fmt.Sprintf("user %s does not own objective %s", e.UserID, e.ObjectiveID)
}

func (e *ErrUnauthorized) Code() string { return CodeUnauthorized }

// ErrorCode extracts the stable code from a completion error, or ""
// when err carries none.
func ErrorCode(err error) string {
	var coded interface{ Code() string }
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ""
}
