package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validSchedule() *MaintenanceSchedule {
	return &MaintenanceSchedule{
		ID:        "s1",
		AssetID:   "a1",
		Title:     "Inspect boiler",
		Frequency: FrequencyMonthly,
		StartDate: day(2024, 1, 1),
		Status:    StatusScheduled,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validSchedule()))
}

func TestValidate_RequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*MaintenanceSchedule)
		field  string
	}{
		{"missing title", func(s *MaintenanceSchedule) { s.Title = "  " }, "title"},
		{"missing asset", func(s *MaintenanceSchedule) { s.AssetID = "" }, "asset_id"},
		{"missing start date", func(s *MaintenanceSchedule) { s.StartDate = time.Time{} }, "start_date"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sched := validSchedule()
			tc.mutate(sched)
			err := Validate(sched)
			require.ErrorIs(t, err, ErrInvalidInput)

			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr))
			require.Equal(t, tc.field, fieldErr.Field)
		})
	}
}

func TestValidate_InvalidEnums(t *testing.T) {
	sched := validSchedule()
	sched.Frequency = "SOMETIMES"
	require.ErrorIs(t, Validate(sched), ErrInvalidFrequency)

	sched = validSchedule()
	sched.Status = "PAUSED"
	require.ErrorIs(t, Validate(sched), ErrInvalidStatus)
}

func TestValidate_DateRange(t *testing.T) {
	sched := validSchedule()
	before := day(2023, 12, 31)
	sched.EndDate = &before
	require.ErrorIs(t, Validate(sched), ErrInvalidDateRange)

	// End date equal to start date is allowed
	sched = validSchedule()
	same := sched.StartDate
	sched.EndDate = &same
	require.NoError(t, Validate(sched))
}
