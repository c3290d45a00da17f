package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every NotFoundError
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint is violated
	ErrDuplicate = errors.New("already exists")
)

// NotFoundError reports a record that does not exist or is not visible to the caller
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
