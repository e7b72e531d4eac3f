package asset

import "errors"

var (
	// ErrAssetNotFound indicates the asset doesn't exist.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrInvalidInput indicates invalid asset input.
	ErrInvalidInput = errors.New("invalid asset input")
	// ErrInUse indicates the asset is still referenced by schedules.
	ErrInUse = errors.New("asset has schedules attached")
)
