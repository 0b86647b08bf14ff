//go:build linux

package process_linux

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"lastinstance/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/prometheus/procfs"
)

// DefaultMount is where procfs is normally mounted.
const DefaultMount = procfs.DefaultMountPoint

// userHZ is the clock tick used for starttime in /proc/<pid>/stat. It is fixed
// at 100 on every architecture Linux exposes to userspace.
const userHZ = 100

// ProcfsInventory lists processes from a procfs mount.
type ProcfsInventory struct {
	mount string
	now   func() time.Time
	log   *logger.Logger
}

// NewInventory creates an inventory reading from mount ("" means /proc).
func NewInventory(mount string) *ProcfsInventory {
	if mount == "" {
		mount = DefaultMount
	}
	return &ProcfsInventory{
		mount: mount,
		now:   time.Now,
		log:   logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "procfs")),
	}
}

// Snapshot reads every /proc/<pid>/stat. Processes that exit while the scan
// is running are skipped.
func (inv *ProcfsInventory) Snapshot(ctx context.Context) (process.Snapshot, error) {
	pfs, err := procfs.NewFS(inv.mount)
	if err != nil {
		return nil, process.InventoryError("procfs", err)
	}

	kstat, err := pfs.Stat()
	if err != nil {
		return nil, process.InventoryError("procfs", err)
	}
	boot := time.Unix(int64(kstat.BootTime), 0)

	procs, err := pfs.AllProcs()
	if err != nil {
		return nil, process.InventoryError("procfs", err)
	}

	// One instant for every record so elapsed times are comparable.
	now := inv.now()

	records := make([]process.ProcessRecord, 0, len(procs))
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return nil, process.InventoryError("procfs", err)
		}

		stat, err := p.Stat()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				inv.log.Debugln("Skipping pid", p.PID, err)
			}
			continue
		}

		start := boot.Add(time.Duration(stat.Starttime) * (time.Second / userHZ))
		records = append(records, process.ProcessRecord{
			PID:         process.ProcessID(stat.PID),
			Name:        stat.Comm,
			ElapsedTime: process.ElapsedSince(start, now),
		})
	}

	return process.NewSnapshot(records...), nil
}
