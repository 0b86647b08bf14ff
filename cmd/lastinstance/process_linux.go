//go:build linux

package main

import (
	"fmt"

	"lastinstance/config"
	"lastinstance/process"
	"lastinstance/process_gopsutil"
	"lastinstance/process_linux"
)

func newBackend(cfg config.Config) (process.Backend, error) {
	switch cfg.Backend {
	case config.BackendAuto, config.BackendProcfs:
		return process_linux.New(cfg.ProcMount), nil
	case config.BackendGopsutil:
		return process_gopsutil.New(), nil
	}
	return nil, fmt.Errorf("unsupported backend %q", cfg.Backend)
}
