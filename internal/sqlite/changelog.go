package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/upkeephq/upkeep/internal/domain/changelog"
)

// ChangeLogRepository implements repository.ChangeLogRepository for SQLite
type ChangeLogRepository struct {
	db *DB
}

// NewChangeLogRepository creates a new ChangeLogRepository
func NewChangeLogRepository(db *DB) *ChangeLogRepository {
	return &ChangeLogRepository{db: db}
}

// Log inserts a new change-log entry
func (r *ChangeLogRepository) Log(ctx context.Context, entry *changelog.Entry) error {
	changedAt := entry.ChangedAt
	if changedAt.IsZero() {
		changedAt = time.Now()
	}

	query := `
		INSERT INTO maintenance_change_log (
			schedule_id, changed_by, change_type, field_name,
			old_value, new_value, changed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.ScheduleID,
		entry.ChangedBy,
		entry.ChangeType,
		entry.FieldName,
		entry.OldValue,
		entry.NewValue,
		changedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log change: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		entry.ID = id
	}
	entry.ChangedAt = changedAt

	return nil
}

// List returns change-log entries matching the given filters, ascending by
// insertion order
func (r *ChangeLogRepository) List(ctx context.Context, opts changelog.ListOptions) ([]changelog.Entry, error) {
	query := `
		SELECT id, schedule_id, changed_by, change_type, field_name,
		       old_value, new_value, changed_at
		FROM maintenance_change_log
	`

	var conditions []string
	var args []interface{}
	if opts.ScheduleID != "" {
		conditions = append(conditions, "schedule_id = ?")
		args = append(args, opts.ScheduleID)
	}
	if opts.ChangeType != nil {
		conditions = append(conditions, "change_type = ?")
		args = append(args, *opts.ChangeType)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list change log: %w", err)
	}
	defer rows.Close()

	var entries []changelog.Entry
	for rows.Next() {
		var entry changelog.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.ScheduleID,
			&entry.ChangedBy,
			&entry.ChangeType,
			&entry.FieldName,
			&entry.OldValue,
			&entry.NewValue,
			&entry.ChangedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan change log entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
