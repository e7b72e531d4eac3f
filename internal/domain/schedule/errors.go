package schedule

import "errors"

var (
	// ErrScheduleNotFound indicates the schedule doesn't exist.
	ErrScheduleNotFound = errors.New("schedule not found")
	// ErrAssetNotFound indicates the referenced asset doesn't exist.
	ErrAssetNotFound = errors.New("referenced asset not found")
	// ErrInvalidInput indicates invalid schedule input.
	ErrInvalidInput = errors.New("invalid schedule input")
	// ErrInvalidFrequency indicates an unrecognized frequency value.
	ErrInvalidFrequency = errors.New("invalid frequency")
	// ErrInvalidStatus indicates an unrecognized status value.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidDateRange indicates end date precedes start date.
	ErrInvalidDateRange = errors.New("end date before start date")
)
