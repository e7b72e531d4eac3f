// Package testserver wires a full application stack against an in-memory
// database for HTTP-level tests.
package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/upkeephq/upkeep/internal/auth"
	"github.com/upkeephq/upkeep/internal/clock"
	"github.com/upkeephq/upkeep/internal/domain/asset"
	"github.com/upkeephq/upkeep/internal/domain/schedule"
	"github.com/upkeephq/upkeep/internal/domain/user"
	"github.com/upkeephq/upkeep/internal/domain/workorder"
	"github.com/upkeephq/upkeep/internal/sqlite"
	"github.com/upkeephq/upkeep/internal/transport"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	Auth   *auth.Service
	Users  *sqlite.UserRepository
}

// New starts a fully wired server over a fresh in-memory database. The clock
// drives occurrence projection; pass clock.Fixed for deterministic results.
func New(t *testing.T, clk clock.Clock) *TestServer {
	t.Helper()

	if clk == nil {
		clk = clock.System{}
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	assetRepo := sqlite.NewAssetRepository(db)
	scheduleRepo := sqlite.NewScheduleRepository(db)
	completionRepo := sqlite.NewCompletionRepository(db)
	changeLogRepo := sqlite.NewChangeLogRepository(db)
	workOrderRepo := sqlite.NewWorkOrderRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	authSvc := auth.NewService("test-secret", time.Hour)

	server := httptest.NewServer(transport.NewServer(transport.Services{
		Assets:     asset.NewService(assetRepo, clk, nil),
		Schedules:  schedule.NewService(scheduleRepo, completionRepo, changeLogRepo, assetRepo, clk, nil),
		WorkOrders: workorder.NewService(workOrderRepo, clk, nil),
		Users:      userRepo,
		Auth:       authSvc,
	}, nil))

	ts := &TestServer{
		Server: server,
		DB:     db,
		Auth:   authSvc,
		Users:  userRepo,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// AddUser creates an account with the given role and returns a bearer token
// for it.
func (ts *TestServer) AddUser(t *testing.T, username string, role user.Role) string {
	t.Helper()

	hash, err := ts.Auth.HashPassword("test-password-1")
	require.NoError(t, err)

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, ts.Users.Create(context.Background(), u))

	token, err := ts.Auth.GenerateToken(u)
	require.NoError(t, err)
	return token
}
