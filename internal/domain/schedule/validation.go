package schedule

import (
	"fmt"
	"strings"
)

// FieldError carries field-level validation detail for callers that render
// per-field messages.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid schedule input: %s %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match FieldError against ErrInvalidInput.
func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

// Validate checks the invariants every persisted schedule must satisfy.
func Validate(s *MaintenanceSchedule) error {
	if strings.TrimSpace(s.Title) == "" {
		return &FieldError{Field: "title", Reason: "is required"}
	}
	if strings.TrimSpace(s.AssetID) == "" {
		return &FieldError{Field: "asset_id", Reason: "is required"}
	}
	if s.StartDate.IsZero() {
		return &FieldError{Field: "start_date", Reason: "is required"}
	}
	if !ValidFrequency(s.Frequency) {
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, s.Frequency)
	}
	if !ValidStatus(s.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, s.Status)
	}
	if s.EndDate != nil && DateOnly(*s.EndDate).Before(DateOnly(s.StartDate)) {
		return ErrInvalidDateRange
	}
	return nil
}
