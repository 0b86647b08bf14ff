//go:build windows

package main

import (
	"fmt"

	"lastinstance/config"
	"lastinstance/process"
	"lastinstance/process_gopsutil"
	"lastinstance/process_windows"
)

func newBackend(cfg config.Config) (process.Backend, error) {
	switch cfg.Backend {
	case config.BackendAuto:
		return process_windows.New(), nil
	case config.BackendGopsutil:
		return process_gopsutil.New(), nil
	}
	return nil, fmt.Errorf("backend %q is not available on windows", cfg.Backend)
}
