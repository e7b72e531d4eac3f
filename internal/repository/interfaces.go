package repository

import (
	"context"
	"time"

	"github.com/upkeephq/upkeep/internal/domain/asset"
	"github.com/upkeephq/upkeep/internal/domain/changelog"
	"github.com/upkeephq/upkeep/internal/domain/schedule"
	"github.com/upkeephq/upkeep/internal/domain/user"
	"github.com/upkeephq/upkeep/internal/domain/workorder"
)

// AssetRepository manages asset persistence
type AssetRepository interface {
	Create(ctx context.Context, a *asset.Asset) error
	Get(ctx context.Context, id string) (*asset.Asset, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, a *asset.Asset) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]asset.Asset, error)
}

// ScheduleRepository manages schedule persistence
type ScheduleRepository interface {
	Create(ctx context.Context, sched *schedule.MaintenanceSchedule) error
	Get(ctx context.Context, id string) (*schedule.MaintenanceSchedule, error)
	Update(ctx context.Context, sched *schedule.MaintenanceSchedule) error
	DeleteCascade(ctx context.Context, id string) error
	List(ctx context.Context) ([]schedule.Summary, error)
	ListAll(ctx context.Context) ([]schedule.MaintenanceSchedule, error)
	ListByAsset(ctx context.Context, assetID string) ([]schedule.Summary, error)
}

// CompletionRepository manages completion persistence
type CompletionRepository interface {
	Create(ctx context.Context, comp *schedule.Completion) error
	ListBySchedule(ctx context.Context, scheduleID string) ([]schedule.Completion, error)
	LastCompleted(ctx context.Context, scheduleID string) (*time.Time, error)
}

// ChangeLogRepository manages change-log persistence
type ChangeLogRepository interface {
	Log(ctx context.Context, entry *changelog.Entry) error
	List(ctx context.Context, opts changelog.ListOptions) ([]changelog.Entry, error)
}

// WorkOrderRepository manages work order persistence
type WorkOrderRepository interface {
	Create(ctx context.Context, wo *workorder.WorkOrder) error
	Get(ctx context.Context, id string) (*workorder.WorkOrder, error)
	Update(ctx context.Context, wo *workorder.WorkOrder) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts workorder.ListOptions) ([]workorder.WorkOrder, error)
}

// UserRepository manages user persistence
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id string) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id string) error
	List(ctx context.Context) ([]user.User, error)
}
