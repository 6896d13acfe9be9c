package engine

import (
	"errors"
	"fmt"
)

// InvalidArgumentError means the caller passed a missing or malformed value.
// It should be shown to the user.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError means the store itself failed. The returned value alongside it
// is the safe fallback (defaults or the unchanged input).
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

var (
	// ErrNoCheckins is returned when a tool use has no check-in to attach to.
	ErrNoCheckins = errors.New("no check-ins yet; check in to a zone first")

	// ErrCheckinNotFound is returned when an explicit check-in id does not exist.
	ErrCheckinNotFound = errors.New("check-in not found")
)

func IsInvalidArgument(err error) bool {
	var e InvalidArgumentError
	return errors.As(err, &e)
}
