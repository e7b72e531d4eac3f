package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/upkeephq/upkeep/internal/clock"
	repository "github.com/upkeephq/upkeep/internal/repository/errs"
)

// Service handles asset operations.
type Service struct {
	repo   Repository
	clock  clock.Clock
	logger *slog.Logger
}

// NewService creates a new asset service.
func NewService(repo Repository, clk clock.Clock, logger *slog.Logger) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{repo: repo, clock: clk, logger: logger}
}

// CreateRequest defines asset creation inputs.
type CreateRequest struct {
	Name        string
	Description string
	Location    string
	Status      Status
}

// UpdateRequest defines a partial asset update.
type UpdateRequest struct {
	Name        *string
	Description *string
	Location    *string
	Status      *Status
}

// Create creates a new asset.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Asset, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}
	status := req.Status
	if status == "" {
		status = StatusOperational
	}
	if !ValidStatus(status) {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now()
	a := &Asset{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Location:    req.Location,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creating asset: %w", err)
	}
	return a, nil
}

// Get fetches an asset by ID.
func (s *Service) Get(ctx context.Context, id string) (*Asset, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("getting asset: %w", err)
	}
	return a, nil
}

// Update applies a partial update. Status updates are also the propagation
// hook for schedules flagged affects_asset_status: the caller that decides
// an overdue schedule should degrade its asset calls through here.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Asset, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrInvalidInput
		}
		a.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.Location != nil {
		a.Location = *req.Location
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, ErrInvalidInput
		}
		a.Status = *req.Status
	}

	a.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("updating asset: %w", err)
	}
	return a, nil
}

// Delete removes an asset. Assets with schedules attached cannot be deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAssetNotFound
		}
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return ErrInUse
		}
		return fmt.Errorf("deleting asset: %w", err)
	}
	return nil
}

// List returns all assets.
func (s *Service) List(ctx context.Context) ([]Asset, error) {
	return s.repo.List(ctx)
}
