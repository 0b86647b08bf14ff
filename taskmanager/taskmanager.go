// Package taskmanager composes inventory, resolver and executor into the
// single discovery-and-kill pass.
package taskmanager

import (
	"context"

	"lastinstance/predecessor"
	"lastinstance/process"
	"lastinstance/terminate"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

type Manager struct {
	resolver *predecessor.Resolver
	executor *terminate.Executor
	log      *logger.Logger
}

func New(resolver *predecessor.Resolver, executor *terminate.Executor) *Manager {
	return &Manager{
		resolver: resolver,
		executor: executor,
		log:      logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "taskmanager")),
	}
}

// Result is the outcome of one pass.
type Result struct {
	Name    string                  // name the targets were matched against
	Targets []process.ProcessRecord // resolved processes, in attempt order
	Report  *terminate.Report
}

// TerminatePredecessors kills every older instance of the calling process.
// Only an unreadable process table is an error; kill failures are in the report.
func (m *Manager) TerminatePredecessors(ctx context.Context) (*Result, error) {
	name, targets, err := m.resolver.ResolveSelf(ctx)
	if err != nil {
		return nil, err
	}

	m.log.Infoln("Start process...", name)
	return m.run(ctx, name, targets), nil
}

// TerminateProcess kills every process whose name starts with name, except the caller.
func (m *Manager) TerminateProcess(ctx context.Context, name string) (*Result, error) {
	targets, err := m.resolver.ResolveByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return m.run(ctx, name, targets), nil
}

// Query lists what TerminateProcess would target, without killing anything.
// An empty name means the calling process's own name.
func (m *Manager) Query(ctx context.Context, name string) (string, []process.ProcessRecord, error) {
	if name == "" {
		n, err := m.resolver.CurrentName(ctx)
		if err != nil {
			return "", nil, err
		}
		name = n
	}

	targets, err := m.resolver.ResolveByName(ctx, name)
	if err != nil {
		return "", nil, err
	}
	return name, targets, nil
}

func (m *Manager) run(ctx context.Context, name string, targets []process.ProcessRecord) *Result {
	m.log.Debugln("ForceKillProcess start")
	report := m.executor.TerminateAll(ctx, targets)
	m.log.Debugln("ForceKillProcess end")

	if err := report.Err(); err != nil {
		m.log.Warn("Some processes survived: ", err)
	}

	return &Result{Name: name, Targets: targets, Report: report}
}
