package process

import (
	"errors"
	"fmt"
	"os"
)

// KillErrorKind classifies why a termination attempt failed.
type KillErrorKind int

const (
	KillOther KillErrorKind = iota
	KillNotFound
	KillPermissionDenied
)

func (k KillErrorKind) String() string {
	switch k {
	case KillNotFound:
		return "not found"
	case KillPermissionDenied:
		return "permission denied"
	default:
		return "other"
	}
}

// KillError is returned by Killer implementations.
type KillError struct {
	PID  ProcessID
	Kind KillErrorKind
	Err  error
}

func (e *KillError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("kill %d: %s", e.PID, e.Kind)
	}
	return fmt.Sprintf("kill %d: %s: %v", e.PID, e.Kind, e.Err)
}

func (e *KillError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err says the target process no longer exists.
func IsNotFound(err error) bool {
	var ke *KillError
	return errors.As(err, &ke) && ke.Kind == KillNotFound
}

// IsPermissionDenied reports whether err is a privilege failure.
func IsPermissionDenied(err error) bool {
	var ke *KillError
	return errors.As(err, &ke) && ke.Kind == KillPermissionDenied
}

// ClassifyKillError turns a raw platform error into a *KillError.
// Backends pass their own not-found sentinels in notFound; os.ErrProcessDone,
// fs.ErrNotExist and os.ErrPermission are always recognised.
func ClassifyKillError(pid ProcessID, err error, notFound ...error) error {
	if err == nil {
		return nil
	}

	var ke *KillError
	if errors.As(err, &ke) {
		return ke
	}

	kind := KillOther
	switch {
	case errors.Is(err, os.ErrProcessDone), errors.Is(err, os.ErrNotExist):
		kind = KillNotFound
	case errors.Is(err, os.ErrPermission):
		kind = KillPermissionDenied
	default:
		for _, nf := range notFound {
			if nf != nil && errors.Is(err, nf) {
				kind = KillNotFound
				break
			}
		}
	}

	return &KillError{PID: pid, Kind: kind, Err: err}
}
