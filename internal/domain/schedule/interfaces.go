package schedule

import (
	"context"
	"time"

	"github.com/upkeephq/upkeep/internal/domain/changelog"
)

// Repository provides persistence for schedules.
type Repository interface {
	Create(ctx context.Context, sched *MaintenanceSchedule) error
	Get(ctx context.Context, id string) (*MaintenanceSchedule, error)
	Update(ctx context.Context, sched *MaintenanceSchedule) error
	// DeleteCascade removes the schedule together with its completions and
	// change-log rows in one transaction.
	DeleteCascade(ctx context.Context, id string) error
	List(ctx context.Context) ([]Summary, error)
	ListAll(ctx context.Context) ([]MaintenanceSchedule, error)
	ListByAsset(ctx context.Context, assetID string) ([]Summary, error)
}

// CompletionRepository provides persistence for completions.
type CompletionRepository interface {
	Create(ctx context.Context, comp *Completion) error
	ListBySchedule(ctx context.Context, scheduleID string) ([]Completion, error)
	// LastCompleted returns the latest completion date for a schedule, or
	// nil when none exist.
	LastCompleted(ctx context.Context, scheduleID string) (*time.Time, error)
}

// AssetChecker verifies asset references without importing the asset domain.
type AssetChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// ChangeLogRepository provides persistence for change-log entries.
type ChangeLogRepository interface {
	Log(ctx context.Context, entry *changelog.Entry) error
	List(ctx context.Context, opts changelog.ListOptions) ([]changelog.Entry, error)
}
