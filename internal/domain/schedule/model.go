package schedule

import "time"

// Frequency represents the calendar increment between occurrences
type Frequency string

const (
	FrequencyDaily     Frequency = "DAILY"
	FrequencyWeekly    Frequency = "WEEKLY"
	FrequencyMonthly   Frequency = "MONTHLY"
	FrequencyQuarterly Frequency = "QUARTERLY"
	FrequencyBiannual  Frequency = "BIANNUAL"
	FrequencyYearly    Frequency = "YEARLY"
	FrequencyTwoYear   Frequency = "TWO_YEAR"
)

// Status represents the workflow state of a schedule
type Status string

const (
	StatusScheduled      Status = "SCHEDULED"
	StatusInProgress     Status = "IN_PROGRESS"
	StatusWaitingOnParts Status = "WAITING_ON_PARTS"
	StatusOnHold         Status = "ON_HOLD"
	StatusCompleted      Status = "COMPLETED"
)

// MaintenanceSchedule is a recurring maintenance rule for an asset.
// StartDate and EndDate are calendar dates at day granularity; EndDate nil
// means open-ended.
type MaintenanceSchedule struct {
	ID                 string     `json:"id"`
	AssetID            string     `json:"asset_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Frequency          Frequency  `json:"frequency"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	Status             Status     `json:"status"`
	AffectsAssetStatus bool       `json:"affects_asset_status"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// Completion records that one occurrence (identified by its calendar date)
// was carried out.
type Completion struct {
	ID            string    `json:"id"`
	ScheduleID    string    `json:"schedule_id"`
	CompletedDate time.Time `json:"completed_date"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Occurrence is one derived instance of a schedule being due. It is computed
// fresh on every read and never persisted.
type Occurrence struct {
	ScheduleID  string    `json:"schedule_id"`
	NominalDate time.Time `json:"nominal_date"`
	DisplayDate time.Time `json:"display_date"`
	IsOverdue   bool      `json:"is_overdue"`
	DaysOverdue int       `json:"days_overdue"`
}

// DueItem pairs an occurrence with the schedule fields dashboard and
// calendar views need, including the asset-status propagation flag that
// callers act on.
type DueItem struct {
	Occurrence
	Title              string `json:"title"`
	AssetID            string `json:"asset_id"`
	AffectsAssetStatus bool   `json:"affects_asset_status"`
}

// Summary is a lightweight representation for listing
type Summary struct {
	ID              string     `json:"id"`
	AssetID         string     `json:"asset_id"`
	Title           string     `json:"title"`
	Frequency       Frequency  `json:"frequency"`
	Status          Status     `json:"status"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	LastCompleted   *time.Time `json:"last_completed,omitempty"`
	CompletionCount int        `json:"completion_count"`
}

// ValidFrequency reports whether f is a known frequency value.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly,
		FrequencyBiannual, FrequencyYearly, FrequencyTwoYear:
		return true
	default:
		return false
	}
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusWaitingOnParts,
		StatusOnHold, StatusCompleted:
		return true
	default:
		return false
	}
}
