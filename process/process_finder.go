package process

import "context"

// Inventory produces snapshots of the processes visible to the caller.
type Inventory interface {
	// Snapshot lists all running processes. Errors match ErrInventoryUnavailable.
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Killer is the forced-termination primitive, addressed by PID.
type Killer interface {
	// Kill terminates pid unconditionally. Failures are returned as *KillError.
	Kill(ctx context.Context, pid ProcessID) error
}

// ExistenceChecker reports whether a PID is still present in the process table.
type ExistenceChecker interface {
	Exists(ctx context.Context, pid ProcessID) bool
}

// Backend bundles everything a platform provides.
type Backend interface {
	Inventory
	Killer
	ExistenceChecker
	Name() string
}
