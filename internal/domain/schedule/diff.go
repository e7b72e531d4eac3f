package schedule

import (
	"encoding/json"
	"strconv"
)

// fieldDiff is one field whose normalized serialization changed in an edit.
type fieldDiff struct {
	Name     string
	OldValue string
	NewValue string
}

// fieldStrings serializes the auditable fields of a schedule through one
// normalizer, so change detection is string equality of canonical forms:
// dates as YYYY-MM-DD, absent values as the empty string.
func fieldStrings(s *MaintenanceSchedule) map[string]string {
	endDate := ""
	if s.EndDate != nil {
		endDate = DayKey(*s.EndDate)
	}
	return map[string]string{
		"title":                s.Title,
		"description":          s.Description,
		"asset_id":             s.AssetID,
		"frequency":            string(s.Frequency),
		"start_date":           DayKey(s.StartDate),
		"end_date":             endDate,
		"status":               string(s.Status),
		"affects_asset_status": strconv.FormatBool(s.AffectsAssetStatus),
	}
}

// auditFieldOrder keeps EDIT rows in a stable order across runs.
var auditFieldOrder = []string{
	"title", "description", "asset_id", "frequency",
	"start_date", "end_date", "status", "affects_asset_status",
}

// diffSchedules returns one entry per field whose serialized value changed.
func diffSchedules(oldSched, newSched *MaintenanceSchedule) []fieldDiff {
	oldFields := fieldStrings(oldSched)
	newFields := fieldStrings(newSched)

	var diffs []fieldDiff
	for _, name := range auditFieldOrder {
		if oldFields[name] != newFields[name] {
			diffs = append(diffs, fieldDiff{
				Name:     name,
				OldValue: oldFields[name],
				NewValue: newFields[name],
			})
		}
	}
	return diffs
}

// snapshotJSON serializes a whole schedule for CREATE and DELETE log rows.
func snapshotJSON(s *MaintenanceSchedule) string {
	data, err := json.Marshal(s)
	if err != nil {
		return ""
	}
	return string(data)
}
