package repository

import "github.com/upkeephq/upkeep/internal/repository/errs"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errs.ErrNotFound

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = errs.ErrForeignKeyViolation

	// ErrDuplicate is returned when a unique constraint fails
	ErrDuplicate = errs.ErrDuplicate
)
