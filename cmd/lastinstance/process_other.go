//go:build !linux && !windows

package main

import (
	"fmt"

	"lastinstance/config"
	"lastinstance/process"
	"lastinstance/process_gopsutil"
)

func newBackend(cfg config.Config) (process.Backend, error) {
	switch cfg.Backend {
	case config.BackendAuto, config.BackendGopsutil:
		return process_gopsutil.New(), nil
	}
	return nil, fmt.Errorf("backend %q is not available on this platform", cfg.Backend)
}
