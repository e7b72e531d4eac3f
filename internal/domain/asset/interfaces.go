package asset

import "context"

// Repository provides persistence for assets.
type Repository interface {
	Create(ctx context.Context, a *Asset) error
	Get(ctx context.Context, id string) (*Asset, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, a *Asset) error
	// Delete fails with repository.ErrForeignKeyViolation while schedules
	// still reference the asset.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Asset, error)
}
