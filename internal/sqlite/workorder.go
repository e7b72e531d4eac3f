package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/upkeephq/upkeep/internal/domain/workorder"
	"github.com/upkeephq/upkeep/internal/repository"
)

// WorkOrderRepository implements repository.WorkOrderRepository for SQLite
type WorkOrderRepository struct {
	db *DB
}

// NewWorkOrderRepository creates a new WorkOrderRepository
func NewWorkOrderRepository(db *DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// Create inserts a new work order
func (r *WorkOrderRepository) Create(ctx context.Context, wo *workorder.WorkOrder) error {
	query := `
		INSERT INTO work_orders (
			id, asset_id, title, description, origin, priority, status,
			reported_by, created_at, updated_at, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		wo.ID,
		wo.AssetID,
		wo.Title,
		wo.Description,
		wo.Origin,
		wo.Priority,
		wo.Status,
		wo.ReportedBy,
		wo.CreatedAt,
		wo.UpdatedAt,
		wo.CompletedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create work order: %w", err)
	}
	return nil
}

// Get retrieves a work order by ID
func (r *WorkOrderRepository) Get(ctx context.Context, id string) (*workorder.WorkOrder, error) {
	query := `
		SELECT id, asset_id, title, description, origin, priority, status,
		       reported_by, created_at, updated_at, completed_at
		FROM work_orders
		WHERE id = ?
	`

	var wo workorder.WorkOrder
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&wo.ID,
		&wo.AssetID,
		&wo.Title,
		&wo.Description,
		&wo.Origin,
		&wo.Priority,
		&wo.Status,
		&wo.ReportedBy,
		&wo.CreatedAt,
		&wo.UpdatedAt,
		&wo.CompletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}
	return &wo, nil
}

// Update persists changes to a work order
func (r *WorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	query := `
		UPDATE work_orders
		SET title = ?, description = ?, priority = ?, status = ?,
		    updated_at = ?, completed_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		wo.Title,
		wo.Description,
		wo.Priority,
		wo.Status,
		wo.UpdatedAt,
		wo.CompletedAt,
		wo.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update work order: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update work order: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a work order
func (r *WorkOrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM work_orders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete work order: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete work order: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List returns work orders matching the given filters, newest first
func (r *WorkOrderRepository) List(ctx context.Context, opts workorder.ListOptions) ([]workorder.WorkOrder, error) {
	query := `
		SELECT id, asset_id, title, description, origin, priority, status,
		       reported_by, created_at, updated_at, completed_at
		FROM work_orders
	`

	var conditions []string
	var args []interface{}
	if opts.AssetID != "" {
		conditions = append(conditions, "asset_id = ?")
		args = append(args, opts.AssetID)
	}
	if opts.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *opts.Status)
	}
	if opts.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, *opts.Priority)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	defer rows.Close()

	var orders []workorder.WorkOrder
	for rows.Next() {
		var wo workorder.WorkOrder
		err := rows.Scan(
			&wo.ID,
			&wo.AssetID,
			&wo.Title,
			&wo.Description,
			&wo.Origin,
			&wo.Priority,
			&wo.Status,
			&wo.ReportedBy,
			&wo.CreatedAt,
			&wo.UpdatedAt,
			&wo.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work order: %w", err)
		}
		orders = append(orders, wo)
	}
	return orders, rows.Err()
}
