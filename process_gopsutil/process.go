// Package process_gopsutil implements the process backend with gopsutil, for
// platforms without a procfs mount.
package process_gopsutil

import (
	"context"
	"syscall"
	"time"

	"lastinstance/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	ps "github.com/shirou/gopsutil/v4/process"
)

// Backend lists, kills and probes processes through gopsutil.
type Backend struct {
	now func() time.Time
	log *logger.Logger
}

var _ process.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{
		now: time.Now,
		log: logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "gopsutil")),
	}
}

func (b *Backend) Name() string {
	return "gopsutil"
}

// Snapshot lists every process whose name and create time are readable.
func (b *Backend) Snapshot(ctx context.Context) (process.Snapshot, error) {
	procs, err := ps.ProcessesWithContext(ctx)
	if err != nil {
		return nil, process.InventoryError("gopsutil", err)
	}

	now := b.now()

	records := make([]process.ProcessRecord, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			b.log.Debugln("Skipping pid", p.Pid, "name:", err)
			continue
		}
		created, err := p.CreateTimeWithContext(ctx)
		if err != nil {
			b.log.Debugln("Skipping pid", p.Pid, "create time:", err)
			continue
		}

		records = append(records, process.ProcessRecord{
			PID:         process.ProcessID(p.Pid),
			Name:        name,
			ElapsedTime: process.ElapsedSince(time.UnixMilli(created), now),
		})
	}

	if err := ctx.Err(); err != nil {
		return nil, process.InventoryError("gopsutil", err)
	}

	return process.NewSnapshot(records...), nil
}

func (b *Backend) Kill(ctx context.Context, pid process.ProcessID) error {
	p, err := ps.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return process.ClassifyKillError(pid, err, ps.ErrorProcessNotRunning)
	}
	return process.ClassifyKillError(pid, p.KillWithContext(ctx), ps.ErrorProcessNotRunning, syscall.ESRCH)
}

func (b *Backend) Exists(ctx context.Context, pid process.ProcessID) bool {
	ok, err := ps.PidExistsWithContext(ctx, int32(pid))
	return err == nil && ok
}
