package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidRole(t *testing.T) {
	require.True(t, ValidRole(RoleAdmin))
	require.True(t, ValidRole(RoleTechnician))
	require.False(t, ValidRole("superuser"))
}

func TestHasPermission_UnknownRole(t *testing.T) {
	u := &User{Role: "superuser"}
	require.False(t, u.HasPermission("view_assets"))
}

func TestPasswordHashNeverSerialized(t *testing.T) {
	u := &User{ID: "u1", Username: "alice", PasswordHash: "bcrypt-hash", Role: RoleAdmin}
	data, err := json.Marshal(u)
	require.NoError(t, err)
	require.NotContains(t, string(data), "bcrypt-hash")
}
