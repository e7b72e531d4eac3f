package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/upkeephq/upkeep/internal/clock"
	"github.com/upkeephq/upkeep/internal/domain/changelog"
	repository "github.com/upkeephq/upkeep/internal/repository/errs"
)

// Service handles schedule business logic: CRUD with per-field change
// logging, completion recording, and occurrence projection.
type Service struct {
	schedules   Repository
	completions CompletionRepository
	changes     ChangeLogRepository
	assets      AssetChecker
	clock       clock.Clock
	logger      *slog.Logger
}

// NewService creates a new schedule service.
func NewService(
	schedules Repository,
	completions CompletionRepository,
	changes ChangeLogRepository,
	assets AssetChecker,
	clk clock.Clock,
	logger *slog.Logger,
) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{
		schedules:   schedules,
		completions: completions,
		changes:     changes,
		assets:      assets,
		clock:       clk,
		logger:      logger,
	}
}

// CreateRequest describes a schedule creation request.
type CreateRequest struct {
	AssetID            string
	Title              string
	Description        string
	Frequency          Frequency
	StartDate          time.Time
	EndDate            *time.Time
	Status             Status
	AffectsAssetStatus bool
}

// UpdateRequest describes a partial schedule update. Nil fields are left
// unchanged; ClearEndDate removes an end date, making the schedule
// open-ended again.
type UpdateRequest struct {
	AssetID            *string
	Title              *string
	Description        *string
	Frequency          *Frequency
	StartDate          *time.Time
	EndDate            *time.Time
	ClearEndDate       bool
	Status             *Status
	AffectsAssetStatus *bool
}

// CompletionRequest describes a mark-complete action.
type CompletionRequest struct {
	CompletedDate time.Time
	Notes         string
}

// Create validates and persists a new schedule, then logs one CREATE entry
// covering the whole record.
func (s *Service) Create(ctx context.Context, actor *string, req CreateRequest) (*MaintenanceSchedule, error) {
	now := s.clock.Now()

	status := req.Status
	if status == "" {
		status = StatusScheduled
	}

	sched := &MaintenanceSchedule{
		ID:                 uuid.NewString(),
		AssetID:            strings.TrimSpace(req.AssetID),
		Title:              strings.TrimSpace(req.Title),
		Description:        req.Description,
		Frequency:          req.Frequency,
		StartDate:          normalizeDate(req.StartDate),
		EndDate:            normalizeDatePtr(req.EndDate),
		Status:             status,
		AffectsAssetStatus: req.AffectsAssetStatus,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := Validate(sched); err != nil {
		return nil, err
	}
	if err := s.checkAsset(ctx, sched.AssetID); err != nil {
		return nil, err
	}

	if err := s.schedules.Create(ctx, sched); err != nil {
		return nil, fmt.Errorf("creating schedule: %w", err)
	}

	s.recordChange(ctx, &changelog.Entry{
		ScheduleID: sched.ID,
		ChangedBy:  actor,
		ChangeType: changelog.TypeCreate,
		NewValue:   snapshotJSON(sched),
		ChangedAt:  now,
	})

	return sched, nil
}

// Get fetches a schedule by ID.
func (s *Service) Get(ctx context.Context, id string) (*MaintenanceSchedule, error) {
	sched, err := s.schedules.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("getting schedule: %w", err)
	}
	return sched, nil
}

// List returns schedule summaries with completion rollups.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.schedules.List(ctx)
}

// ListByAsset returns summaries for one asset.
func (s *Service) ListByAsset(ctx context.Context, assetID string) ([]Summary, error) {
	return s.schedules.ListByAsset(ctx, assetID)
}

// Update applies a partial update, persists it, and logs one EDIT entry per
// field whose normalized serialization changed. An update that changes no
// serialized value writes zero log rows.
func (s *Service) Update(ctx context.Context, actor *string, id string, req UpdateRequest) (*MaintenanceSchedule, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.AssetID != nil {
		updated.AssetID = strings.TrimSpace(*req.AssetID)
	}
	if req.Title != nil {
		updated.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Frequency != nil {
		updated.Frequency = *req.Frequency
	}
	if req.StartDate != nil {
		updated.StartDate = normalizeDate(*req.StartDate)
	}
	if req.ClearEndDate {
		updated.EndDate = nil
	} else if req.EndDate != nil {
		updated.EndDate = normalizeDatePtr(req.EndDate)
	}
	if req.Status != nil {
		updated.Status = *req.Status
	}
	if req.AffectsAssetStatus != nil {
		updated.AffectsAssetStatus = *req.AffectsAssetStatus
	}

	if err := Validate(&updated); err != nil {
		return nil, err
	}
	if updated.AssetID != existing.AssetID {
		if err := s.checkAsset(ctx, updated.AssetID); err != nil {
			return nil, err
		}
	}

	diffs := diffSchedules(existing, &updated)
	if len(diffs) == 0 {
		return existing, nil
	}

	now := s.clock.Now()
	updated.UpdatedAt = now
	if err := s.schedules.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating schedule: %w", err)
	}

	for _, d := range diffs {
		fieldName := d.Name
		s.recordChange(ctx, &changelog.Entry{
			ScheduleID: updated.ID,
			ChangedBy:  actor,
			ChangeType: changelog.TypeEdit,
			FieldName:  &fieldName,
			OldValue:   d.OldValue,
			NewValue:   d.NewValue,
			ChangedAt:  now,
		})
	}

	return &updated, nil
}

// Delete logs a DELETE entry for the schedule, then cascades: the entry is
// written while the record still exists, after which the cascade removes the
// schedule with its completions and its change-log history.
func (s *Service) Delete(ctx context.Context, actor *string, id string) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	s.recordChange(ctx, &changelog.Entry{
		ScheduleID: existing.ID,
		ChangedBy:  actor,
		ChangeType: changelog.TypeDelete,
		OldValue:   snapshotJSON(existing),
		ChangedAt:  s.clock.Now(),
	})

	if err := s.schedules.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrScheduleNotFound
		}
		return fmt.Errorf("deleting schedule: %w", err)
	}
	return nil
}

// RecordCompletion appends a completion row for the schedule. No dedup
// against projected occurrences happens here; the projector treats any
// completion matching a date as fulfilling that occurrence.
func (s *Service) RecordCompletion(ctx context.Context, scheduleID string, req CompletionRequest) (*Completion, error) {
	if _, err := s.Get(ctx, scheduleID); err != nil {
		return nil, err
	}
	if req.CompletedDate.IsZero() {
		return nil, &FieldError{Field: "completed_date", Reason: "is required"}
	}

	comp := &Completion{
		ID:            uuid.NewString(),
		ScheduleID:    scheduleID,
		CompletedDate: normalizeDate(req.CompletedDate),
		Notes:         req.Notes,
		CreatedAt:     s.clock.Now(),
	}

	if err := s.completions.Create(ctx, comp); err != nil {
		return nil, fmt.Errorf("recording completion: %w", err)
	}
	return comp, nil
}

// Completions lists completions for a schedule.
func (s *Service) Completions(ctx context.Context, scheduleID string) ([]Completion, error) {
	if _, err := s.Get(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.completions.ListBySchedule(ctx, scheduleID)
}

// ChangeLog lists change-log entries for a schedule.
func (s *Service) ChangeLog(ctx context.Context, scheduleID string, opts changelog.ListOptions) ([]changelog.Entry, error) {
	if _, err := s.Get(ctx, scheduleID); err != nil {
		return nil, err
	}
	opts.ScheduleID = scheduleID
	return s.changes.List(ctx, opts)
}

// Occurrences projects the due occurrences for one schedule.
func (s *Service) Occurrences(ctx context.Context, scheduleID string, opts ProjectOptions) ([]Occurrence, error) {
	sched, err := s.Get(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	completions, err := s.completions.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	return Project(s.clock, sched, completions, opts)
}

// DueItems projects occurrences across every schedule for dashboard and
// calendar feeds. Presentation surfaces filter and group this output; none
// of them re-implement stepping or overdue logic.
func (s *Service) DueItems(ctx context.Context, overdueOnly bool, opts ProjectOptions) ([]DueItem, error) {
	scheds, err := s.schedules.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}

	var items []DueItem
	for i := range scheds {
		sched := &scheds[i]
		completions, err := s.completions.ListBySchedule(ctx, sched.ID)
		if err != nil {
			return nil, fmt.Errorf("listing completions: %w", err)
		}
		occurrences, err := Project(s.clock, sched, completions, opts)
		if err != nil {
			if errors.Is(err, ErrInvalidFrequency) {
				// A stored schedule with a frequency this build doesn't
				// recognize must not silently vanish from the feed.
				if s.logger != nil {
					s.logger.Error("skipping schedule with unrecognized frequency",
						"schedule_id", sched.ID, "frequency", sched.Frequency)
				}
				continue
			}
			return nil, err
		}
		for _, occ := range occurrences {
			if overdueOnly && !occ.IsOverdue {
				continue
			}
			items = append(items, DueItem{
				Occurrence:         occ,
				Title:              sched.Title,
				AssetID:            sched.AssetID,
				AffectsAssetStatus: sched.AffectsAssetStatus,
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].NominalDate.Before(items[j].NominalDate)
	})
	return items, nil
}

func (s *Service) checkAsset(ctx context.Context, assetID string) error {
	if s.assets == nil {
		return nil
	}
	ok, err := s.assets.Exists(ctx, assetID)
	if err != nil {
		return fmt.Errorf("checking asset: %w", err)
	}
	if !ok {
		return ErrAssetNotFound
	}
	return nil
}

// recordChange writes a change-log entry, swallowing failures: an audit-log
// insert failure must not roll back the mutation it describes.
func (s *Service) recordChange(ctx context.Context, entry *changelog.Entry) {
	if s.changes == nil {
		return
	}
	if err := s.changes.Log(ctx, entry); err != nil && s.logger != nil {
		s.logger.Error("failed to write change log entry",
			"schedule_id", entry.ScheduleID,
			"change_type", entry.ChangeType,
			"error", err)
	}
}

func normalizeDate(t time.Time) time.Time {
	return DateOnly(t)
}

func normalizeDatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := DateOnly(*t)
	return &d
}
