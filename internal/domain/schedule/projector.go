package schedule

import (
	"fmt"
	"time"

	"github.com/upkeephq/upkeep/internal/clock"
)

// DefaultHorizonMonths bounds projection for open-ended schedules.
const DefaultHorizonMonths = 3

// DateOnly truncates t to its calendar day, anchored in UTC so that day
// arithmetic is exact regardless of the wall clock's zone or DST.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey formats t's calendar day for completion matching.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// step returns the calendar increment for one occurrence of f.
func (f Frequency) step() (years, months, days int, err error) {
	switch f {
	case FrequencyDaily:
		return 0, 0, 1, nil
	case FrequencyWeekly:
		return 0, 0, 7, nil
	case FrequencyMonthly:
		return 0, 1, 0, nil
	case FrequencyQuarterly:
		return 0, 3, 0, nil
	case FrequencyBiannual:
		return 0, 6, 0, nil
	case FrequencyYearly:
		return 1, 0, 0, nil
	case FrequencyTwoYear:
		return 2, 0, 0, nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, f)
	}
}

// ProjectOptions adjusts projection. HorizonEnd bounds open-ended schedules;
// when zero, the default rolling horizon of now + 3 months applies. It is
// ignored when the schedule has an explicit end date.
type ProjectOptions struct {
	HorizonEnd time.Time
}

// Project computes the due occurrences for one schedule between its start
// date and either its end date or the horizon. Occurrences whose calendar day
// matches a completion for the schedule are suppressed. The result is
// ascending by nominal date and is a pure function of the inputs and the
// clock: calling it again with the same inputs yields the same output.
//
// Occurrences whose nominal date is in the past are flagged overdue and get
// today as their display date, so overdue items surface "as of today" on
// calendar views instead of being buried on their original due date.
func Project(clk clock.Clock, sched *MaintenanceSchedule, completions []Completion, opts ProjectOptions) ([]Occurrence, error) {
	stepY, stepM, stepD, err := sched.Frequency.step()
	if err != nil {
		return nil, err
	}

	now := clk.Now()
	today := DateOnly(now)

	start := DateOnly(sched.StartDate)
	var end time.Time
	switch {
	case sched.EndDate != nil:
		end = DateOnly(*sched.EndDate)
	case !opts.HorizonEnd.IsZero():
		end = DateOnly(opts.HorizonEnd)
	default:
		end = DateOnly(now.AddDate(0, DefaultHorizonMonths, 0))
	}

	completed := make(map[string]bool, len(completions))
	for _, c := range completions {
		if c.ScheduleID == sched.ID {
			completed[DayKey(c.CompletedDate)] = true
		}
	}

	var occurrences []Occurrence
	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(stepY, stepM, stepD) {
		if completed[DayKey(cursor)] {
			continue
		}

		occ := Occurrence{
			ScheduleID:  sched.ID,
			NominalDate: cursor,
			DisplayDate: cursor,
		}
		if cursor.Before(today) {
			occ.DaysOverdue = int(today.Sub(cursor) / (24 * time.Hour))
			occ.IsOverdue = true
			occ.DisplayDate = today
		}
		occurrences = append(occurrences, occ)
	}

	return occurrences, nil
}
