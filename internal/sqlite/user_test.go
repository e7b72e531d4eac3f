package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/upkeephq/upkeep/internal/domain/user"
	"github.com/upkeephq/upkeep/internal/repository"
)

func newUser(id, username, email string, role user.Role) *user.User {
	now := time.Now().UTC().Truncate(time.Second)
	return &user.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: "bcrypt-hash",
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, newUser("u1", "alice", "alice@example.com", user.RoleAdmin)))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, user.RoleAdmin, got.Role)
	require.True(t, got.IsActive)
	require.Nil(t, got.LastLogin)

	byName, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "u1", byName.ID)

	_, err = repo.GetByUsername(ctx, "mallory")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, newUser("u1", "alice", "alice@example.com", user.RoleViewer)))
	err := repo.Create(ctx, newUser("u2", "alice", "other@example.com", user.RoleViewer))
	require.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestUserRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, newUser("u1", "alice", "alice@example.com", user.RoleViewer)))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	got.Role = user.RoleManager
	got.IsActive = false
	got.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, user.RoleManager, updated.Role)
	require.False(t, updated.IsActive)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, newUser("u1", "alice", "alice@example.com", user.RoleViewer)))
	require.NoError(t, repo.UpdateLastLogin(ctx, "u1"))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
}

func TestUserRepository_List(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, newUser("u1", "zoe", "zoe@example.com", user.RoleViewer)))
	require.NoError(t, repo.Create(ctx, newUser("u2", "alice", "alice@example.com", user.RoleAdmin)))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "alice", users[0].Username)
	require.Equal(t, "zoe", users[1].Username)
}
