// Package terminate force-kills a resolved set of processes and reports the
// outcome per PID.
package terminate

import (
	"context"
	"fmt"
	"time"

	"lastinstance/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/cenkalti/backoff/v4"
)

// Executor terminates processes one by one. A failure for one PID never
// stops the remaining attempts.
type Executor struct {
	killer  process.Killer
	exists  process.ExistenceChecker
	selfPID process.ProcessID
	timeout time.Duration
	log     *logger.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithKillTimeout bounds every kill attempt, including the exit wait.
func WithKillTimeout(d time.Duration) Option {
	return func(e *Executor) {
		e.timeout = d
	}
}

// WithExitWait makes the executor poll checker after each kill until the
// PID has left the process table.
func WithExitWait(checker process.ExistenceChecker) Option {
	return func(e *Executor) {
		e.exists = checker
	}
}

// NewExecutor creates an Executor that will never kill selfPID.
func NewExecutor(killer process.Killer, selfPID process.ProcessID, opts ...Option) *Executor {
	e := &Executor{
		killer:  killer,
		selfPID: selfPID,
		log:     logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "terminate")),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TerminateAll attempts a forced kill of every record, in the order given.
// An empty input performs no kill at all and yields an empty report.
func (e *Executor) TerminateAll(ctx context.Context, records []process.ProcessRecord) *Report {
	report := &Report{}

	for _, rec := range records {
		res := e.terminate(ctx, rec)
		report.add(res)

		switch res.Outcome {
		case Terminated:
			e.log.Infoln("Process id:", rec.PID, "has been killed")
		case AlreadyGone:
			e.log.Infoln("Process id:", rec.PID, "already exited")
		case Failed:
			e.log.Warn("Kill process ", rec.PID, " failed: ", res.Err)
		}
	}

	e.log.Debugln("Termination batch done:", report)
	return report
}

func (e *Executor) terminate(ctx context.Context, rec process.ProcessRecord) Result {
	if e.selfPID > 0 && rec.PID == e.selfPID {
		return Result{Record: rec, Outcome: Failed, Err: process.ErrSelfTermination}
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return Result{Record: rec, Outcome: Failed, Err: err}
	}

	if err := e.killer.Kill(ctx, rec.PID); err != nil {
		if process.IsNotFound(err) {
			return Result{Record: rec, Outcome: AlreadyGone}
		}
		return Result{Record: rec, Outcome: Failed, Err: err}
	}

	if e.exists != nil {
		if err := e.waitExit(ctx, rec.PID); err != nil {
			// The signal was delivered; the kernel is still reaping.
			e.log.Warn("Process ", rec.PID, " still present after kill: ", err)
		}
	}

	return Result{Record: rec, Outcome: Terminated}
}

func (e *Executor) waitExit(ctx context.Context, pid process.ProcessID) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 25 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	b.MaxElapsedTime = 2 * time.Second

	return backoff.Retry(func() error {
		if e.exists.Exists(ctx, pid) {
			return fmt.Errorf("pid %d still running", pid)
		}
		return nil
	}, backoff.WithContext(b, ctx))
}
