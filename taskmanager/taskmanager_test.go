package taskmanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"lastinstance/predecessor"
	"lastinstance/process"
	"lastinstance/terminate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	snap    process.Snapshot
	err     error
	results map[process.ProcessID]error
	killed  []process.ProcessID
}

func (f *fakeBackend) Snapshot(context.Context) (process.Snapshot, error) {
	return f.snap, f.err
}

func (f *fakeBackend) Kill(_ context.Context, pid process.ProcessID) error {
	f.killed = append(f.killed, pid)
	return f.results[pid]
}

func newManager(b *fakeBackend, self process.ProcessID) *Manager {
	opts := predecessor.Options{SelfPID: self}
	return New(predecessor.NewResolver(b, opts), terminate.NewExecutor(b, self))
}

func rec(pid int, name string, secs int) process.ProcessRecord {
	return process.ProcessRecord{PID: process.ProcessID(pid), Name: name, ElapsedTime: time.Duration(secs) * time.Second}
}

func TestTerminatePredecessors(t *testing.T) {
	b := &fakeBackend{snap: process.NewSnapshot(
		rec(5, "app", 100),
		rec(9, "app", 5),
		rec(7, "other", 50),
	)}

	res, err := newManager(b, 9).TerminatePredecessors(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "app", res.Name)
	assert.Equal(t, []process.ProcessRecord{rec(5, "app", 100)}, res.Targets)
	assert.Equal(t, []process.ProcessID{5}, b.killed)

	o, ok := res.Report.Outcome(5)
	require.True(t, ok)
	assert.Equal(t, terminate.Terminated, o)
}

func TestTerminatePredecessorsFirstRun(t *testing.T) {
	b := &fakeBackend{snap: process.NewSnapshot(rec(9, "app", 1), rec(7, "other", 50))}

	res, err := newManager(b, 9).TerminatePredecessors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Targets)
	assert.Equal(t, 0, res.Report.Len())
	assert.Empty(t, b.killed)
}

func TestTerminatePredecessorsInventoryUnavailable(t *testing.T) {
	b := &fakeBackend{err: process.InventoryError("fake", errors.New("denied"))}

	res, err := newManager(b, 9).TerminatePredecessors(context.Background())
	assert.Nil(t, res)
	assert.ErrorIs(t, err, process.ErrInventoryUnavailable)
	assert.Empty(t, b.killed)
}

func TestTerminatePredecessorsPartialFailure(t *testing.T) {
	b := &fakeBackend{
		snap: process.NewSnapshot(rec(9, "app", 1), rec(10, "app", 20), rec(20, "app", 30), rec(30, "app", 40)),
		results: map[process.ProcessID]error{
			10: &process.KillError{PID: 10, Kind: process.KillNotFound},
			20: &process.KillError{PID: 20, Kind: process.KillPermissionDenied},
		},
	}

	res, err := newManager(b, 9).TerminatePredecessors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []process.ProcessID{10, 20, 30}, b.killed)
	assert.Equal(t, map[terminate.Outcome]int{
		terminate.Terminated:  1,
		terminate.AlreadyGone: 1,
		terminate.Failed:      1,
	}, res.Report.Counts())
}

func TestTerminateProcessNeverSelf(t *testing.T) {
	b := &fakeBackend{snap: process.NewSnapshot(rec(9, "worker", 1), rec(3, "worker", 60), rec(4, "workerd", 2))}

	res, err := newManager(b, 9).TerminateProcess(context.Background(), "worker")
	require.NoError(t, err)
	assert.Equal(t, []process.ProcessID{4, 3}, b.killed)
	assert.Equal(t, 2, res.Report.Len())
}

func TestQuery(t *testing.T) {
	b := &fakeBackend{snap: process.NewSnapshot(rec(9, "app", 1), rec(3, "app", 60))}
	m := newManager(b, 9)

	name, targets, err := m.Query(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "app", name)
	assert.Equal(t, []process.ProcessRecord{rec(3, "app", 60)}, targets)

	name, targets, err = m.Query(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Equal(t, "zzz", name)
	assert.Empty(t, targets)
	assert.Empty(t, b.killed)
}
