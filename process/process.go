// Package process provides the data contracts and boundary interfaces shared by
// the inventory backends, the predecessor resolver and the termination executor.
package process

import (
	"errors"
	"fmt"
)

var (
	// ErrInventoryUnavailable is returned when the process-listing backend cannot be queried.
	// It is fatal to a discovery pass: an unreadable process table is never treated as empty.
	ErrInventoryUnavailable = errors.New("process inventory unavailable")

	// ErrSelfTermination is recorded when a batch asks to terminate the calling process.
	ErrSelfTermination = errors.New("refusing to terminate the calling process")
)

// InventoryError wraps a backend failure so that it matches ErrInventoryUnavailable.
func InventoryError(backend string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInventoryUnavailable, backend, err)
}
