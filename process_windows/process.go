//go:build windows

// Package process_windows provides the TerminateProcess kill primitive.
package process_windows

import (
	"context"
	"errors"

	"lastinstance/process"
	"lastinstance/process_gopsutil"

	"golang.org/x/sys/windows"
)

// Killer opens the target with PROCESS_TERMINATE and calls TerminateProcess.
type Killer struct{}

func NewKiller() *Killer {
	return &Killer{}
}

// exitCodeKilled is the exit code given to terminated predecessors.
const exitCodeKilled = 1

func (k *Killer) Kill(ctx context.Context, pid process.ProcessID) error {
	if err := ctx.Err(); err != nil {
		return &process.KillError{PID: pid, Kind: process.KillOther, Err: err}
	}

	handle, err := windows.OpenProcess(windows.PROCESS_TERMINATE|windows.SYNCHRONIZE, false, uint32(pid))
	if err != nil {
		// OpenProcess fails with ERROR_INVALID_PARAMETER for an unknown pid.
		return classify(pid, err)
	}
	defer windows.CloseHandle(handle)

	if err := windows.TerminateProcess(handle, exitCodeKilled); err != nil {
		return classify(pid, err)
	}
	return nil
}

func classify(pid process.ProcessID, err error) error {
	switch {
	case errors.Is(err, windows.ERROR_INVALID_PARAMETER):
		return &process.KillError{PID: pid, Kind: process.KillNotFound, Err: err}
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		// TerminateProcess on a process that is already exiting also lands here.
		return &process.KillError{PID: pid, Kind: process.KillPermissionDenied, Err: err}
	}
	return process.ClassifyKillError(pid, err)
}

// Backend lists processes with gopsutil and kills them with TerminateProcess.
type Backend struct {
	*process_gopsutil.Backend
	killer *Killer
}

var _ process.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{
		Backend: process_gopsutil.New(),
		killer:  NewKiller(),
	}
}

func (b *Backend) Kill(ctx context.Context, pid process.ProcessID) error {
	return b.killer.Kill(ctx, pid)
}

func (b *Backend) Name() string {
	return "win32"
}
