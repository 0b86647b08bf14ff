//go:build linux

// Package process_linux implements the process backend on top of /proc and kill(2).
package process_linux

import "lastinstance/process"

// Backend combines the procfs inventory with the kill(2) primitive.
type Backend struct {
	*ProcfsInventory
	*Killer
}

var _ process.Backend = (*Backend)(nil)

// New returns the Linux backend reading from mount ("" means /proc).
func New(mount string) *Backend {
	return &Backend{
		ProcfsInventory: NewInventory(mount),
		Killer:          NewKiller(mount),
	}
}

func (b *Backend) Name() string {
	return "procfs"
}
