package library

import (
	"errors"
	"fmt"
)

// Store errors.
var (
	ErrNotFound    = errors.New("template not found")
	ErrDuplicateID = errors.New("template id already exists")
	ErrInvalidID   = errors.New("invalid template id")
)

// PersistenceError wraps a failure reading or writing the library file.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
