package terminate

import (
	"fmt"

	"lastinstance/process"

	"go.uber.org/multierr"
)

// Outcome is the per-process result of a termination attempt.
type Outcome int

const (
	Terminated Outcome = iota
	AlreadyGone
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Terminated:
		return "terminated"
	case AlreadyGone:
		return "already-gone"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is one entry of a Report.
type Result struct {
	Record  process.ProcessRecord
	Outcome Outcome
	Err     error // set when Outcome is Failed
}

// Report lists the outcome of every attempted PID in attempt order.
type Report struct {
	results []Result
}

func (r *Report) add(res Result) {
	r.results = append(r.results, res)
}

// Results returns a copy of the entries.
func (r *Report) Results() []Result {
	return append([]Result(nil), r.results...)
}

func (r *Report) Len() int {
	return len(r.results)
}

// Outcome returns the outcome recorded for pid.
func (r *Report) Outcome(pid process.ProcessID) (Outcome, bool) {
	for _, res := range r.results {
		if res.Record.PID == pid {
			return res.Outcome, true
		}
	}
	return 0, false
}

// Failed returns the entries that could not be terminated.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.results {
		if res.Outcome == Failed {
			out = append(out, res)
		}
	}
	return out
}

// Counts tallies the entries per outcome.
func (r *Report) Counts() map[Outcome]int {
	counts := map[Outcome]int{Terminated: 0, AlreadyGone: 0, Failed: 0}
	for _, res := range r.results {
		counts[res.Outcome]++
	}
	return counts
}

// Err combines the failures of the batch, or returns nil if none failed.
// A non-nil Err is a warning: the batch itself always completes.
func (r *Report) Err() error {
	var err error
	for _, res := range r.Failed() {
		err = multierr.Append(err, fmt.Errorf("pid %d (%s): %w", res.Record.PID, res.Record.Name, res.Err))
	}
	return err
}

func (r *Report) String() string {
	c := r.Counts()
	return fmt.Sprintf("%d attempted: %d terminated, %d already gone, %d failed",
		r.Len(), c[Terminated], c[AlreadyGone], c[Failed])
}
