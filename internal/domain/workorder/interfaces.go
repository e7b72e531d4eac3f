package workorder

import "context"

// ListOptions provides filtering options for listing work orders
type ListOptions struct {
	AssetID  string
	Status   *Status
	Priority *Priority
	Limit    int
	Offset   int
}

// Repository provides persistence for work orders.
type Repository interface {
	Create(ctx context.Context, wo *WorkOrder) error
	Get(ctx context.Context, id string) (*WorkOrder, error)
	Update(ctx context.Context, wo *WorkOrder) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ListOptions) ([]WorkOrder, error)
}
