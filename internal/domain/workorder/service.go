package workorder

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

// Service handles work order operations.
type Service struct {
	repo   Repository
	clock  clock.Clock
	logger *slog.Logger
}

// NewService creates a new work order service.
func NewService(repo Repository, clk clock.Clock, logger *slog.Logger) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{repo: repo, clock: clk, logger: logger}
}

// CreateRequest defines work order creation inputs.
type CreateRequest struct {
	AssetID     *string
	Title       string
	Description string
	Origin      Origin
	Priority    Priority
	ReportedBy  *string
}

// UpdateRequest defines a partial work order update.
type UpdateRequest struct {
	Title       *string
	Description *string
	Priority    *Priority
	Status      *Status
}

// Create creates a new work order.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*WorkOrder, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}

	origin := req.Origin
	if origin == "" {
		origin = OriginManual
	}
	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	if !ValidOrigin(origin) || !ValidPriority(priority) {
		return nil, ErrInvalidInput
	}

	now := s.clock.Now()
	wo := &WorkOrder{
		ID:          uuid.NewString(),
		AssetID:     req.AssetID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Origin:      origin,
		Priority:    priority,
		Status:      StatusOpen,
		ReportedBy:  req.ReportedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, wo); err != nil {
		return nil, fmt.Errorf("creating work order: %w", err)
	}
	return wo, nil
}

// Get fetches a work order by ID.
func (s *Service) Get(ctx context.Context, id string) (*WorkOrder, error) {
	wo, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("getting work order: %w", err)
	}
	return wo, nil
}

// Update applies a partial update. Status changes go through the transition
// table; completing a work order stamps CompletedAt.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*WorkOrder, error) {
	wo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrInvalidInput
		}
		wo.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		wo.Description = *req.Description
	}
	if req.Priority != nil {
		if !ValidPriority(*req.Priority) {
			return nil, ErrInvalidInput
		}
		wo.Priority = *req.Priority
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, ErrInvalidInput
		}
		if !ValidTransition(wo.Status, *req.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, wo.Status, *req.Status)
		}
		if *req.Status == StatusCompleted && wo.Status != StatusCompleted {
			completedAt := s.clock.Now()
			wo.CompletedAt = &completedAt
		}
		wo.Status = *req.Status
	}

	wo.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, wo); err != nil {
		return nil, fmt.Errorf("updating work order: %w", err)
	}
	return wo, nil
}

// Delete removes a work order.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkOrderNotFound
		}
		return fmt.Errorf("deleting work order: %w", err)
	}
	return nil
}

// List returns work orders matching the given filters.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]WorkOrder, error) {
	return s.repo.List(ctx, opts)
}
