package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/upkeephq/upkeep/internal/domain/user"
)

func TestHashAndCheckPassword(t *testing.T) {
	svc := NewService("secret", time.Hour)

	hash, err := svc.HashPassword("correct horse battery")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery", hash)

	require.True(t, svc.CheckPassword("correct horse battery", hash))
	require.False(t, svc.CheckPassword("wrong password", hash))
}

func TestGenerateValidateToken(t *testing.T) {
	svc := NewService("secret", time.Hour)
	u := &user.User{ID: "u1", Username: "alice", Role: user.RoleManager}

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, user.RoleManager, claims.Role)

	// Bearer prefix is tolerated
	claims, err = svc.ValidateToken("Bearer " + token)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := NewService("secret", time.Hour)
	other := NewService("different", time.Hour)

	token, err := svc.GenerateToken(&user.User{ID: "u1", Username: "alice", Role: user.RoleAdmin})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewService("secret", time.Hour)
	svc.tokenTTL = -time.Hour

	token, err := svc.GenerateToken(&user.User{ID: "u1", Username: "alice", Role: user.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewService("secret", time.Hour)
	_, err := svc.ValidateToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaimsHasPermission(t *testing.T) {
	admin := &Claims{UserID: "u1", Role: user.RoleAdmin}
	require.True(t, admin.HasPermission("manage_users"))

	manager := &Claims{UserID: "u2", Role: user.RoleManager}
	require.True(t, manager.HasPermission("manage_schedules"))
	require.False(t, manager.HasPermission("manage_users"))

	tech := &Claims{UserID: "u3", Role: user.RoleTechnician}
	require.True(t, tech.HasPermission("record_completion"))
	require.True(t, tech.HasPermission("create_workorder"))
	require.False(t, tech.HasPermission("manage_schedules"))

	viewer := &Claims{UserID: "u4", Role: user.RoleViewer}
	require.True(t, viewer.HasPermission("view_occurrences"))
	require.False(t, viewer.HasPermission("record_completion"))
}

func TestInputValidation(t *testing.T) {
	svc := NewService("secret", time.Hour)

	require.Error(t, svc.ValidatePassword("short"))
	require.NoError(t, svc.ValidatePassword("long enough"))

	require.Error(t, svc.ValidateUsername("ab"))
	require.NoError(t, svc.ValidateUsername("alice"))

	require.Error(t, svc.ValidateEmail("nope"))
	require.NoError(t, svc.ValidateEmail("alice@example.com"))
}
