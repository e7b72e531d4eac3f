package asset_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/upkeephq/upkeep/internal/clock"
	"github.com/upkeephq/upkeep/internal/domain/asset"
	"github.com/upkeephq/upkeep/internal/repository"
	"github.com/upkeephq/upkeep/internal/repository/mocks"
)

func newTestService(repo *mocks.AssetRepository) *asset.Service {
	clk := clock.Fixed{T: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return asset.NewService(repo, clk, nil)
}

func TestService_Create(t *testing.T) {
	repo := &mocks.AssetRepository{}
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*asset.Asset")).Return(nil)

	a, err := svc.Create(ctx, asset.CreateRequest{
		Name:     "  HVAC Unit 3  ",
		Location: "Roof",
	})
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	require.Equal(t, "HVAC Unit 3", a.Name)
	require.Equal(t, asset.StatusOperational, a.Status, "status defaults to OPERATIONAL")
	repo.AssertExpectations(t)
}

func TestService_Create_Invalid(t *testing.T) {
	repo := &mocks.AssetRepository{}
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, asset.CreateRequest{Name: "  "})
	require.ErrorIs(t, err, asset.ErrInvalidInput)

	_, err = svc.Create(ctx, asset.CreateRequest{Name: "Pump", Status: "BROKEN"})
	require.ErrorIs(t, err, asset.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := &mocks.AssetRepository{}
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "missing").Return(nil, repository.ErrNotFound)

	_, err := svc.Get(ctx, "missing")
	require.ErrorIs(t, err, asset.ErrAssetNotFound)
}

func TestService_Update(t *testing.T) {
	repo := &mocks.AssetRepository{}
	svc := newTestService(repo)
	ctx := context.Background()

	existing := &asset.Asset{ID: "a1", Name: "Pump", Status: asset.StatusOperational}
	repo.On("Get", ctx, "a1").Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*asset.Asset")).Return(nil)

	status := asset.StatusDown
	updated, err := svc.Update(ctx, "a1", asset.UpdateRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, asset.StatusDown, updated.Status)
	require.False(t, updated.UpdatedAt.IsZero())
}

func TestService_Update_InvalidStatus(t *testing.T) {
	repo := &mocks.AssetRepository{}
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("Get", ctx, "a1").Return(&asset.Asset{ID: "a1", Name: "Pump", Status: asset.StatusOperational}, nil)

	bad := asset.Status("EXPLODED")
	_, err := svc.Update(ctx, "a1", asset.UpdateRequest{Status: &bad})
	require.ErrorIs(t, err, asset.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	repo := &mocks.AssetRepository{}
	svc := newTestService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, "a1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "a1"))

	repo.On("Delete", ctx, "referenced").Return(repository.ErrForeignKeyViolation)
	require.ErrorIs(t, svc.Delete(ctx, "referenced"), asset.ErrInUse)

	repo.On("Delete", ctx, "missing").Return(repository.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, "missing"), asset.ErrAssetNotFound)
}
