package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports an operation that referenced an id not present in
// the owner's collection.
var ErrNotFound = errors.New("not found")

// ValidationError blocks a write because required fields are missing or
// malformed. The failed operation leaves stored state untouched.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing or invalid: %s", strings.Join(e.Fields, ", "))
}

// StorageError wraps a durable read or write failure. Absence of a
// record is not a StorageError; it reads as empty.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
