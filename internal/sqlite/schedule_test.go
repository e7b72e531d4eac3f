package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/upkeephq/upkeep/internal/domain/changelog"
	"github.com/upkeephq/upkeep/internal/domain/schedule"
	"github.com/upkeephq/upkeep/internal/repository"
)

// insertSchedule seeds a schedule row for tests in this package
func insertSchedule(t *testing.T, db *DB, id, assetID, title, frequency, startDate string) {
	t.Helper()
	now := time.Now().UTC()
	_, err := db.Exec(
		`INSERT INTO maintenance_schedules (id, asset_id, title, frequency, start_date, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, assetID, title, frequency, startDate, "SCHEDULED", now, now)
	require.NoError(t, err)
}

func TestScheduleRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewScheduleRepository(db)
	insertAsset(t, db, "a1", "Boiler")

	now := time.Now().UTC().Truncate(time.Second)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	sched := &schedule.MaintenanceSchedule{
		ID:                 "s1",
		AssetID:            "a1",
		Title:              "Annual inspection",
		Description:        "Full teardown",
		Frequency:          schedule.FrequencyYearly,
		StartDate:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:            &end,
		Status:             schedule.StatusScheduled,
		AffectsAssetStatus: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	require.NoError(t, repo.Create(ctx, sched))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "Annual inspection", got.Title)
	require.Equal(t, schedule.FrequencyYearly, got.Frequency)
	require.True(t, got.AffectsAssetStatus)
	// Day precision survives the round trip exactly
	require.True(t, got.StartDate.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, got.EndDate)
	require.True(t, got.EndDate.Equal(end))

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScheduleRepository_CreateUnknownAsset(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewScheduleRepository(db)

	now := time.Now().UTC()
	sched := &schedule.MaintenanceSchedule{
		ID:        "s1",
		AssetID:   "ghost",
		Title:     "Orphan",
		Frequency: schedule.FrequencyWeekly,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:    schedule.StatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.ErrorIs(t, repo.Create(ctx, sched), repository.ErrForeignKeyViolation)
}

func TestScheduleRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewScheduleRepository(db)
	insertAsset(t, db, "a1", "Boiler")
	insertSchedule(t, db, "s1", "a1", "Inspect", "MONTHLY", "2024-01-01")

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Nil(t, got.EndDate)

	got.Title = "Inspect and lubricate"
	got.Frequency = schedule.FrequencyQuarterly
	end := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	got.EndDate = &end
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, "Inspect and lubricate", updated.Title)
	require.Equal(t, schedule.FrequencyQuarterly, updated.Frequency)
	require.NotNil(t, updated.EndDate)
	require.True(t, updated.EndDate.Equal(end))

	missing := *got
	missing.ID = "nope"
	require.ErrorIs(t, repo.Update(ctx, &missing), repository.ErrNotFound)
}

func TestScheduleRepository_DeleteCascade(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewScheduleRepository(db)
	completions := NewCompletionRepository(db)
	changes := NewChangeLogRepository(db)
	insertAsset(t, db, "a1", "Boiler")
	insertSchedule(t, db, "s1", "a1", "Inspect", "WEEKLY", "2024-01-01")
	insertSchedule(t, db, "s2", "a1", "Other", "WEEKLY", "2024-01-01")

	now := time.Now().UTC()
	require.NoError(t, completions.Create(ctx, &schedule.Completion{
		ID:            "c1",
		ScheduleID:    "s1",
		CompletedDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		CreatedAt:     now,
	}))
	require.NoError(t, completions.Create(ctx, &schedule.Completion{
		ID:            "c2",
		ScheduleID:    "s2",
		CompletedDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		CreatedAt:     now,
	}))
	require.NoError(t, changes.Log(ctx, &changelog.Entry{
		ScheduleID: "s1",
		ChangeType: changelog.TypeCreate,
		NewValue:   "{}",
	}))
	require.NoError(t, changes.Log(ctx, &changelog.Entry{
		ScheduleID: "s2",
		ChangeType: changelog.TypeCreate,
		NewValue:   "{}",
	}))

	require.NoError(t, repo.DeleteCascade(ctx, "s1"))

	// Schedule, its completions, and its change-log rows are all gone
	_, err := repo.Get(ctx, "s1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	var count int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM maintenance_completions WHERE schedule_id = ?", "s1").Scan(&count))
	require.Equal(t, 0, count)
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM maintenance_change_log WHERE schedule_id = ?", "s1").Scan(&count))
	require.Equal(t, 0, count)

	// Sibling schedule untouched
	_, err = repo.Get(ctx, "s2")
	require.NoError(t, err)
	comps, err := completions.ListBySchedule(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, comps, 1)

	require.ErrorIs(t, repo.DeleteCascade(ctx, "s1"), repository.ErrNotFound)
}

func TestScheduleRepository_ListSummaries(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewScheduleRepository(db)
	completions := NewCompletionRepository(db)
	insertAsset(t, db, "a1", "Boiler")
	insertAsset(t, db, "a2", "Chiller")
	insertSchedule(t, db, "s1", "a1", "Inspect", "WEEKLY", "2024-01-01")
	insertSchedule(t, db, "s2", "a2", "Service", "MONTHLY", "2024-02-01")

	now := time.Now().UTC()
	for i, day := range []time.Time{
		time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	} {
		require.NoError(t, completions.Create(ctx, &schedule.Completion{
			ID:            fmt.Sprintf("c%d", i),
			ScheduleID:    "s1",
			CompletedDate: day,
			CreatedAt:     now,
		}))
	}

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	require.Equal(t, "s1", summaries[0].ID)
	require.Equal(t, 2, summaries[0].CompletionCount)
	require.NotNil(t, summaries[0].LastCompleted)
	require.True(t, summaries[0].LastCompleted.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 0, summaries[1].CompletionCount)
	require.Nil(t, summaries[1].LastCompleted)

	byAsset, err := repo.ListByAsset(ctx, "a2")
	require.NoError(t, err)
	require.Len(t, byAsset, 1)
	require.Equal(t, "s2", byAsset[0].ID)
}

func TestScheduleRepository_ListAll(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewScheduleRepository(db)
	insertAsset(t, db, "a1", "Boiler")
	insertSchedule(t, db, "s2", "a1", "Later", "WEEKLY", "2024-03-01")
	insertSchedule(t, db, "s1", "a1", "Earlier", "WEEKLY", "2024-01-01")

	scheds, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, scheds, 2)
	require.Equal(t, "s1", scheds[0].ID)
	require.Equal(t, "s2", scheds[1].ID)
}
