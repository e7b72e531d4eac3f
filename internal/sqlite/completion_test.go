package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/upkeephq/upkeep/internal/domain/schedule"
	"github.com/upkeephq/upkeep/internal/repository"
)

func TestCompletionRepository_CreateList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCompletionRepository(db)
	insertAsset(t, db, "a1", "Boiler")
	insertSchedule(t, db, "s1", "a1", "Inspect", "WEEKLY", "2024-01-01")

	now := time.Now().UTC()
	// Insert out of date order; listing sorts by completed date
	require.NoError(t, repo.Create(ctx, &schedule.Completion{
		ID:            "c2",
		ScheduleID:    "s1",
		CompletedDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Notes:         "second",
		CreatedAt:     now,
	}))
	require.NoError(t, repo.Create(ctx, &schedule.Completion{
		ID:            "c1",
		ScheduleID:    "s1",
		CompletedDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		Notes:         "first",
		CreatedAt:     now,
	}))

	comps, err := repo.ListBySchedule(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, comps, 2)
	require.Equal(t, "c1", comps[0].ID)
	require.Equal(t, "c2", comps[1].ID)
	require.True(t, comps[0].CompletedDate.Equal(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)))

	empty, err := repo.ListBySchedule(ctx, "other")
	require.NoError(t, err)
	require.Len(t, empty, 0)
}

func TestCompletionRepository_CreateUnknownSchedule(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCompletionRepository(db)

	err := repo.Create(ctx, &schedule.Completion{
		ID:            "c1",
		ScheduleID:    "ghost",
		CompletedDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Now().UTC(),
	})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}

func TestCompletionRepository_LastCompleted(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewCompletionRepository(db)
	insertAsset(t, db, "a1", "Boiler")
	insertSchedule(t, db, "s1", "a1", "Inspect", "WEEKLY", "2024-01-01")

	last, err := repo.LastCompleted(ctx, "s1")
	require.NoError(t, err)
	require.Nil(t, last)

	now := time.Now().UTC()
	for i, day := range []string{"2024-01-08", "2024-02-05", "2024-01-22"} {
		parsed, err := parseDay(day)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, &schedule.Completion{
			ID:            fmt.Sprintf("c%d", i),
			ScheduleID:    "s1",
			CompletedDate: parsed,
			CreatedAt:     now,
		}))
	}

	last, err = repo.LastCompleted(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, last)
	require.True(t, last.Equal(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)))
}
