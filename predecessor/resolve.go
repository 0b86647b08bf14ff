// Package predecessor finds the older running instances of a process name.
package predecessor

import (
	"sort"
	"strings"

	"lastinstance/process"
)

// HasPrefix is the name comparison used for matching. It is a plain string
// prefix test; foldCase compares under Unicode simple case folding.
func HasPrefix(name, target string, foldCase bool) bool {
	if target == "" {
		return false
	}
	if !foldCase {
		return strings.HasPrefix(name, target)
	}
	return len(name) >= len(target) && strings.EqualFold(name[:len(target)], target)
}

// Match returns the records whose name starts with target, youngest first.
// Equal elapsed times are ordered by PID, highest first: the higher PID is
// assumed to be the more recently started process.
func Match(snapshot process.Snapshot, target string, opts Options) []process.ProcessRecord {
	out := make([]process.ProcessRecord, 0)
	for _, r := range snapshot {
		if HasPrefix(r.Name, target, opts.FoldCase) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ElapsedTime != out[j].ElapsedTime {
			return out[i].ElapsedTime < out[j].ElapsedTime
		}
		return out[i].PID > out[j].PID
	})

	return out
}

// Resolve returns the predecessors of the caller: every match for target
// except exactly one, the caller itself. The result keeps ascending elapsed
// order. A snapshot holding only the caller yields an empty slice.
func Resolve(snapshot process.Snapshot, target string, opts Options) []process.ProcessRecord {
	matches := Match(snapshot, target, opts)
	if len(matches) == 0 {
		return matches
	}

	skip := 0
	if opts.ExcludeBy == ExcludePID && opts.SelfPID > 0 {
		for i, r := range matches {
			if r.PID == opts.SelfPID {
				skip = i
				break
			}
		}
	}

	return append(matches[:skip:skip], matches[skip+1:]...)
}

// Without returns records minus any entry for pid.
func Without(records []process.ProcessRecord, pid process.ProcessID) []process.ProcessRecord {
	out := make([]process.ProcessRecord, 0, len(records))
	for _, r := range records {
		if r.PID != pid {
			out = append(out, r)
		}
	}
	return out
}
