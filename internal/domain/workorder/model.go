package workorder

import "time"

// Origin records how a work order came to exist
type Origin string

const (
	OriginReport    Origin = "REPORT"
	OriginScheduled Origin = "SCHEDULED"
	OriginManual    Origin = "MANUAL"
)

// Priority represents work order urgency
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Status represents the workflow state of a work order
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// WorkOrder is a unit of maintenance work: a reported problem, a job spawned
// from an overdue schedule, or a manually raised task.
type WorkOrder struct {
	ID          string     `json:"id"`
	AssetID     *string    `json:"asset_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Origin      Origin     `json:"origin"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	ReportedBy  *string    `json:"reported_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ValidOrigin reports whether o is a known origin value.
func ValidOrigin(o Origin) bool {
	switch o {
	case OriginReport, OriginScheduled, OriginManual:
		return true
	default:
		return false
	}
}

// ValidPriority reports whether p is a known priority value.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	default:
		return false
	}
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// ValidTransition reports whether moving from one status to another is
// allowed. Terminal states cannot be left.
func ValidTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusOpen:
		return to == StatusInProgress || to == StatusCompleted || to == StatusCancelled
	case StatusInProgress:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}
