package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/upkeephq/upkeep/internal/domain/schedule"
	"github.com/upkeephq/upkeep/internal/repository"
)

// CompletionRepository implements repository.CompletionRepository for SQLite
type CompletionRepository struct {
	db *DB
}

// NewCompletionRepository creates a new CompletionRepository
func NewCompletionRepository(db *DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Create inserts a new completion
func (r *CompletionRepository) Create(ctx context.Context, comp *schedule.Completion) error {
	query := `
		INSERT INTO maintenance_completions (id, schedule_id, completed_date, notes, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		comp.ID,
		comp.ScheduleID,
		formatDay(comp.CompletedDate),
		comp.Notes,
		comp.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create completion: %w", err)
	}
	return nil
}

// ListBySchedule returns completions for a schedule, ascending by date
func (r *CompletionRepository) ListBySchedule(ctx context.Context, scheduleID string) ([]schedule.Completion, error) {
	query := `
		SELECT id, schedule_id, completed_date, notes, created_at
		FROM maintenance_completions
		WHERE schedule_id = ?
		ORDER BY completed_date ASC, created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	defer rows.Close()

	var completions []schedule.Completion
	for rows.Next() {
		var comp schedule.Completion
		var completedDate string
		err := rows.Scan(
			&comp.ID,
			&comp.ScheduleID,
			&completedDate,
			&comp.Notes,
			&comp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		if comp.CompletedDate, err = parseDay(completedDate); err != nil {
			return nil, err
		}
		completions = append(completions, comp)
	}
	return completions, rows.Err()
}

// LastCompleted returns the latest completion date for a schedule, or nil
// when none exist
func (r *CompletionRepository) LastCompleted(ctx context.Context, scheduleID string) (*time.Time, error) {
	query := `
		SELECT completed_date
		FROM maintenance_completions
		WHERE schedule_id = ?
		ORDER BY completed_date DESC
		LIMIT 1
	`

	var completedDate string
	err := r.db.QueryRowContext(ctx, query, scheduleID).Scan(&completedDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last completion: %w", err)
	}

	t, err := parseDay(completedDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
