package process

import (
	"fmt"
	"time"
)

// ProcessID represents a unique identifier for a process
type ProcessID int

// ProcessRecord is one running process as observed in a single inventory snapshot.
type ProcessRecord struct {
	PID         ProcessID     // Process ID, always > 0 inside a Snapshot
	Name        string        // Display name as reported by the inventory backend
	ElapsedTime time.Duration // How long the process has been running; larger is older
}

func (r ProcessRecord) String() string {
	return fmt.Sprintf("%s[%d] up %s", r.Name, r.PID, r.ElapsedTime)
}

// ElapsedSeconds returns the elapsed time truncated to whole seconds.
func (r ProcessRecord) ElapsedSeconds() uint64 {
	return uint64(r.ElapsedTime / time.Second)
}

// ElapsedSince computes the elapsed time of a process that started at start,
// measured at now. Clock skew never produces a negative duration.
func ElapsedSince(start, now time.Time) time.Duration {
	d := now.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
