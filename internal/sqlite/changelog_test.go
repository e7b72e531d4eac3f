package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/upkeephq/upkeep/internal/domain/changelog"
)

func TestChangeLogRepository_Log(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewChangeLogRepository(db)

	entry := &changelog.Entry{
		ScheduleID: "s1",
		ChangeType: changelog.TypeCreate,
		NewValue:   `{"title":"Inspect boiler"}`,
	}
	require.NoError(t, repo.Log(ctx, entry))
	require.Greater(t, entry.ID, int64(0))
	require.False(t, entry.ChangedAt.IsZero())

	field := "title"
	second := &changelog.Entry{
		ScheduleID: "s1",
		ChangeType: changelog.TypeEdit,
		FieldName:  &field,
		OldValue:   "Inspect boiler",
		NewValue:   "Inspect and flush boiler",
	}
	require.NoError(t, repo.Log(ctx, second))
	require.Greater(t, second.ID, entry.ID, "ids are assigned in insertion order")
}

func TestChangeLogRepository_ListFilters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewChangeLogRepository(db)

	field := "status"
	actor := "alice"
	seed := []*changelog.Entry{
		{ScheduleID: "s1", ChangeType: changelog.TypeCreate, NewValue: "{}"},
		{ScheduleID: "s1", ChangeType: changelog.TypeEdit, FieldName: &field, OldValue: "SCHEDULED", NewValue: "IN_PROGRESS", ChangedBy: &actor},
		{ScheduleID: "s2", ChangeType: changelog.TypeCreate, NewValue: "{}"},
		{ScheduleID: "s1", ChangeType: changelog.TypeDelete, OldValue: "{}"},
	}
	for _, e := range seed {
		require.NoError(t, repo.Log(ctx, e))
	}

	// All rows for one schedule, oldest first
	entries, err := repo.List(ctx, changelog.ListOptions{ScheduleID: "s1"})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, changelog.TypeCreate, entries[0].ChangeType)
	require.Equal(t, changelog.TypeEdit, entries[1].ChangeType)
	require.Equal(t, changelog.TypeDelete, entries[2].ChangeType)
	require.NotNil(t, entries[1].ChangedBy)
	require.Equal(t, "alice", *entries[1].ChangedBy)
	require.NotNil(t, entries[1].FieldName)
	require.Equal(t, "status", *entries[1].FieldName)

	// Filter by change type
	edit := changelog.TypeEdit
	entries, err = repo.List(ctx, changelog.ListOptions{ScheduleID: "s1", ChangeType: &edit})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "IN_PROGRESS", entries[0].NewValue)

	// Pagination
	entries, err = repo.List(ctx, changelog.ListOptions{ScheduleID: "s1", Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, changelog.TypeEdit, entries[0].ChangeType)
}
