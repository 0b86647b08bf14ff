package predecessor

import (
	"fmt"
	"runtime"

	"lastinstance/process"
)

// ExcludeMode selects how the calling process is removed from the matches.
type ExcludeMode string

const (
	// ExcludePosition skips the first entry in elapsed-time order, the youngest process.
	ExcludePosition ExcludeMode = "position"

	// ExcludePID skips the record whose PID equals Options.SelfPID. If the caller is
	// not in the snapshot it falls back to ExcludePosition.
	ExcludePID ExcludeMode = "pid"
)

// ParseExcludeMode accepts "position" (or "") and "pid".
func ParseExcludeMode(s string) (ExcludeMode, error) {
	switch ExcludeMode(s) {
	case "", ExcludePosition:
		return ExcludePosition, nil
	case ExcludePID:
		return ExcludePID, nil
	}
	return "", fmt.Errorf("unknown exclude mode %q (want position or pid)", s)
}

// Options controls matching and self exclusion.
type Options struct {
	// FoldCase makes the name prefix comparison case-insensitive.
	FoldCase bool

	ExcludeBy ExcludeMode

	// SelfPID is the calling process. Used by ExcludePID and by ResolveByName.
	SelfPID process.ProcessID
}

// DefaultFoldCase follows the native process-name comparison of the platform.
func DefaultFoldCase() bool {
	return runtime.GOOS == "windows"
}

// DefaultOptions returns the platform defaults for selfPID.
func DefaultOptions(selfPID process.ProcessID) Options {
	return Options{
		FoldCase:  DefaultFoldCase(),
		ExcludeBy: ExcludePosition,
		SelfPID:   selfPID,
	}
}
