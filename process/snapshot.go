package process

// Snapshot is a point-in-time listing of running processes.
// PIDs are unique and strictly positive.
type Snapshot []ProcessRecord

// NewSnapshot builds a Snapshot from raw backend records.
// Records with a PID <= 0 (the idle/system pseudo-process) are dropped, a
// repeated PID keeps its first record, and negative elapsed times are clamped to 0.
func NewSnapshot(records ...ProcessRecord) Snapshot {
	seen := make(map[ProcessID]struct{}, len(records))
	out := make(Snapshot, 0, len(records))

	for _, r := range records {
		if r.PID <= 0 {
			continue
		}
		if _, dup := seen[r.PID]; dup {
			continue
		}
		seen[r.PID] = struct{}{}

		if r.ElapsedTime < 0 {
			r.ElapsedTime = 0
		}
		out = append(out, r)
	}

	return out
}

// Find returns the record for pid, if present.
func (s Snapshot) Find(pid ProcessID) (ProcessRecord, bool) {
	for _, r := range s {
		if r.PID == pid {
			return r, true
		}
	}
	return ProcessRecord{}, false
}
