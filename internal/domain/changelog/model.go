package changelog

import "time"

// ChangeType represents the kind of schedule mutation being logged
type ChangeType string

const (
	TypeCreate ChangeType = "CREATE"
	TypeEdit   ChangeType = "EDIT"
	TypeDelete ChangeType = "DELETE"
)

// Entry is one row in the append-only schedule change log.
//
// CREATE and DELETE entries cover the whole record (NewValue or OldValue
// holds a JSON snapshot, FieldName is absent). EDIT entries carry one row
// per changed field with the normalized old and new values.
type Entry struct {
	ID         int64      `json:"id"`
	ScheduleID string     `json:"schedule_id"`
	ChangedBy  *string    `json:"changed_by,omitempty"`
	ChangeType ChangeType `json:"change_type"`
	FieldName  *string    `json:"field_name,omitempty"`
	OldValue   string     `json:"old_value,omitempty"`
	NewValue   string     `json:"new_value,omitempty"`
	ChangedAt  time.Time  `json:"changed_at"`
}

// ListOptions provides filtering options for listing change-log entries
type ListOptions struct {
	ScheduleID string
	ChangeType *ChangeType
	Limit      int
	Offset     int
}
