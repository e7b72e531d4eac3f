package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/upkeephq/upkeep/internal/domain/asset"
	"github.com/upkeephq/upkeep/internal/repository"
)

// AssetRepository implements repository.AssetRepository for SQLite
type AssetRepository struct {
	db *DB
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create inserts a new asset
func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	query := `
		INSERT INTO assets (id, name, description, location, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		a.Description,
		a.Location,
		a.Status,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

// Get retrieves an asset by ID
func (r *AssetRepository) Get(ctx context.Context, id string) (*asset.Asset, error) {
	query := `
		SELECT id, name, description, location, status, created_at, updated_at
		FROM assets
		WHERE id = ?
	`

	var a asset.Asset
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&a.Location,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &a, nil
}

// Exists reports whether an asset with the given ID is stored
func (r *AssetRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM assets WHERE id = ?", id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check asset: %w", err)
	}
	return count > 0, nil
}

// Update persists changes to an asset
func (r *AssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	query := `
		UPDATE assets
		SET name = ?, description = ?, location = ?, status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		a.Name,
		a.Description,
		a.Location,
		a.Status,
		a.UpdatedAt,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes an asset. Assets referenced by schedules cannot be deleted.
func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	var refs int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM maintenance_schedules WHERE asset_id = ?", id).Scan(&refs)
	if err != nil {
		return fmt.Errorf("failed to check schedule references: %w", err)
	}
	if refs > 0 {
		return repository.ErrForeignKeyViolation
	}

	result, err := r.db.ExecContext(ctx, "DELETE FROM assets WHERE id = ?", id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List returns all assets ordered by name
func (r *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	query := `
		SELECT id, name, description, location, status, created_at, updated_at
		FROM assets
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		var a asset.Asset
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Description,
			&a.Location,
			&a.Status,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}
