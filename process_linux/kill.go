//go:build linux

package process_linux

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"lastinstance/process"

	"golang.org/x/sys/unix"
)

// Killer sends SIGKILL with kill(2) so that it works for non-child processes.
type Killer struct {
	mount string
}

// NewKiller creates a Killer; mount is used by Exists.
func NewKiller(mount string) *Killer {
	if mount == "" {
		mount = DefaultMount
	}
	return &Killer{mount: mount}
}

func (k *Killer) Kill(ctx context.Context, pid process.ProcessID) error {
	return k.Signal(ctx, pid, unix.SIGKILL)
}

// Signal delivers sig to pid. ESRCH is reported as a not-found KillError.
func (k *Killer) Signal(ctx context.Context, pid process.ProcessID, sig unix.Signal) error {
	if pid <= 0 {
		return &process.KillError{PID: pid, Kind: process.KillOther, Err: errors.New("invalid pid")}
	}
	if err := ctx.Err(); err != nil {
		return &process.KillError{PID: pid, Kind: process.KillOther, Err: err}
	}
	return process.ClassifyKillError(pid, unix.Kill(int(pid), sig), unix.ESRCH)
}

// Exists reports whether pid is still in the process table.
func (k *Killer) Exists(_ context.Context, pid process.ProcessID) bool {
	// Fast path: stat /proc/<pid>
	_, err := os.Stat(filepath.Join(k.mount, strconv.Itoa(int(pid))))
	if err == nil {
		return true
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	// For transient errors (permission, EIO): fall back to kill 0
	return unix.Kill(int(pid), 0) == nil
}
