package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/upkeephq/upkeep/internal/domain/asset"
	"github.com/upkeephq/upkeep/internal/domain/changelog"
	"github.com/upkeephq/upkeep/internal/domain/schedule"
	"github.com/upkeephq/upkeep/internal/domain/workorder"
)

// AssetRepository is a mock for repository.AssetRepository.
type AssetRepository struct {
	mock.Mock
}

func (m *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AssetRepository) Get(ctx context.Context, id string) (*asset.Asset, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*asset.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AssetRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]asset.Asset); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ScheduleRepository is a mock for repository.ScheduleRepository.
type ScheduleRepository struct {
	mock.Mock
}

func (m *ScheduleRepository) Create(ctx context.Context, sched *schedule.MaintenanceSchedule) error {
	args := m.Called(ctx, sched)
	return args.Error(0)
}

func (m *ScheduleRepository) Get(ctx context.Context, id string) (*schedule.MaintenanceSchedule, error) {
	args := m.Called(ctx, id)
	if sched, ok := args.Get(0).(*schedule.MaintenanceSchedule); ok {
		return sched, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleRepository) Update(ctx context.Context, sched *schedule.MaintenanceSchedule) error {
	args := m.Called(ctx, sched)
	return args.Error(0)
}

func (m *ScheduleRepository) DeleteCascade(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ScheduleRepository) List(ctx context.Context) ([]schedule.Summary, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]schedule.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleRepository) ListAll(ctx context.Context) ([]schedule.MaintenanceSchedule, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]schedule.MaintenanceSchedule); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleRepository) ListByAsset(ctx context.Context, assetID string) ([]schedule.Summary, error) {
	args := m.Called(ctx, assetID)
	if list, ok := args.Get(0).([]schedule.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CompletionRepository is a mock for repository.CompletionRepository.
type CompletionRepository struct {
	mock.Mock
}

func (m *CompletionRepository) Create(ctx context.Context, comp *schedule.Completion) error {
	args := m.Called(ctx, comp)
	return args.Error(0)
}

func (m *CompletionRepository) ListBySchedule(ctx context.Context, scheduleID string) ([]schedule.Completion, error) {
	args := m.Called(ctx, scheduleID)
	if list, ok := args.Get(0).([]schedule.Completion); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompletionRepository) LastCompleted(ctx context.Context, scheduleID string) (*time.Time, error) {
	args := m.Called(ctx, scheduleID)
	if t, ok := args.Get(0).(*time.Time); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

// ChangeLogRepository is a mock for repository.ChangeLogRepository.
type ChangeLogRepository struct {
	mock.Mock
}

func (m *ChangeLogRepository) Log(ctx context.Context, entry *changelog.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ChangeLogRepository) List(ctx context.Context, opts changelog.ListOptions) ([]changelog.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]changelog.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// WorkOrderRepository is a mock for repository.WorkOrderRepository.
type WorkOrderRepository struct {
	mock.Mock
}

func (m *WorkOrderRepository) Create(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *WorkOrderRepository) Get(ctx context.Context, id string) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if wo, ok := args.Get(0).(*workorder.WorkOrder); ok {
		return wo, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *WorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *WorkOrderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *WorkOrderRepository) List(ctx context.Context, opts workorder.ListOptions) ([]workorder.WorkOrder, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]workorder.WorkOrder); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
