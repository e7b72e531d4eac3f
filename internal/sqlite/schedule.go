package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/upkeephq/upkeep/internal/domain/schedule"
	"github.com/upkeephq/upkeep/internal/repository"
)

// ScheduleRepository implements repository.ScheduleRepository for SQLite
type ScheduleRepository struct {
	db *DB
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create inserts a new schedule
func (r *ScheduleRepository) Create(ctx context.Context, sched *schedule.MaintenanceSchedule) error {
	query := `
		INSERT INTO maintenance_schedules (
			id, asset_id, title, description, frequency,
			start_date, end_date, status, affects_asset_status,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		sched.ID,
		sched.AssetID,
		sched.Title,
		sched.Description,
		sched.Frequency,
		formatDay(sched.StartDate),
		formatDayPtr(sched.EndDate),
		sched.Status,
		sched.AffectsAssetStatus,
		sched.CreatedAt,
		sched.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

// Get retrieves a schedule by ID
func (r *ScheduleRepository) Get(ctx context.Context, id string) (*schedule.MaintenanceSchedule, error) {
	query := selectScheduleColumns + ` WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)
	sched, err := scanSchedule(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return sched, nil
}

// Update persists changes to a schedule
func (r *ScheduleRepository) Update(ctx context.Context, sched *schedule.MaintenanceSchedule) error {
	query := `
		UPDATE maintenance_schedules
		SET asset_id = ?, title = ?, description = ?, frequency = ?,
		    start_date = ?, end_date = ?, status = ?, affects_asset_status = ?,
		    updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		sched.AssetID,
		sched.Title,
		sched.Description,
		sched.Frequency,
		formatDay(sched.StartDate),
		formatDayPtr(sched.EndDate),
		sched.Status,
		sched.AffectsAssetStatus,
		sched.UpdatedAt,
		sched.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteCascade removes a schedule with its completions and change-log rows
// in one transaction. The audit trail for a deleted schedule goes with it.
func (r *ScheduleRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM maintenance_completions WHERE schedule_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete completions: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM maintenance_change_log WHERE schedule_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete change log: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"DELETE FROM maintenance_schedules WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}

// List returns schedule summaries with completion rollups
func (r *ScheduleRepository) List(ctx context.Context) ([]schedule.Summary, error) {
	return r.listSummaries(ctx, "", nil)
}

// ListByAsset returns summaries for one asset
func (r *ScheduleRepository) ListByAsset(ctx context.Context, assetID string) ([]schedule.Summary, error) {
	return r.listSummaries(ctx, "WHERE s.asset_id = ?", []interface{}{assetID})
}

func (r *ScheduleRepository) listSummaries(ctx context.Context, where string, args []interface{}) ([]schedule.Summary, error) {
	query := fmt.Sprintf(`
		SELECT
			s.id,
			s.asset_id,
			s.title,
			s.frequency,
			s.status,
			s.start_date,
			s.end_date,
			MAX(c.completed_date) as last_completed,
			COUNT(c.id) as completion_count
		FROM maintenance_schedules s
		LEFT JOIN maintenance_completions c ON c.schedule_id = s.id
		%s
		GROUP BY s.id, s.asset_id, s.title, s.frequency, s.status, s.start_date, s.end_date
		ORDER BY s.start_date ASC, s.title ASC
	`, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var summaries []schedule.Summary
	for rows.Next() {
		var summary schedule.Summary
		var startDate string
		var endDate, lastCompleted *string
		err := rows.Scan(
			&summary.ID,
			&summary.AssetID,
			&summary.Title,
			&summary.Frequency,
			&summary.Status,
			&startDate,
			&endDate,
			&lastCompleted,
			&summary.CompletionCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule summary: %w", err)
		}
		if summary.StartDate, err = parseDay(startDate); err != nil {
			return nil, err
		}
		if summary.EndDate, err = parseDayPtr(endDate); err != nil {
			return nil, err
		}
		if summary.LastCompleted, err = parseDayPtr(lastCompleted); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// ListAll returns every full schedule record, for projection across the set
func (r *ScheduleRepository) ListAll(ctx context.Context) ([]schedule.MaintenanceSchedule, error) {
	query := selectScheduleColumns + ` ORDER BY start_date ASC, title ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var scheds []schedule.MaintenanceSchedule
	for rows.Next() {
		sched, err := scanSchedule(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		scheds = append(scheds, *sched)
	}
	return scheds, rows.Err()
}

const selectScheduleColumns = `
	SELECT id, asset_id, title, description, frequency,
	       start_date, end_date, status, affects_asset_status,
	       created_at, updated_at
	FROM maintenance_schedules`

func scanSchedule(scan func(dest ...interface{}) error) (*schedule.MaintenanceSchedule, error) {
	var sched schedule.MaintenanceSchedule
	var startDate string
	var endDate *string
	err := scan(
		&sched.ID,
		&sched.AssetID,
		&sched.Title,
		&sched.Description,
		&sched.Frequency,
		&startDate,
		&endDate,
		&sched.Status,
		&sched.AffectsAssetStatus,
		&sched.CreatedAt,
		&sched.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if sched.StartDate, err = parseDay(startDate); err != nil {
		return nil, err
	}
	if sched.EndDate, err = parseDayPtr(endDate); err != nil {
		return nil, err
	}
	return &sched, nil
}
