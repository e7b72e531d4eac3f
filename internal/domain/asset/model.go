package asset

import "time"

// Status represents the operational state of an asset
type Status string

const (
	StatusOperational    Status = "OPERATIONAL"
	StatusNeedsAttention Status = "NEEDS_ATTENTION"
	StatusDown           Status = "DOWN"
	StatusRetired        Status = "RETIRED"
)

// Asset represents a piece of equipment that maintenance schedules and work
// orders reference.
type Asset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidStatus reports whether s is a known status value.
func ValidStatus(s Status) bool {
	switch s {
	case StatusOperational, StatusNeedsAttention, StatusDown, StatusRetired:
		return true
	default:
		return false
	}
}
