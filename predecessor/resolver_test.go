package predecessor

import (
	"context"
	"errors"
	"testing"
	"time"

	"lastinstance/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInventory struct {
	snap  process.Snapshot
	err   error
	calls int
}

func (f *fakeInventory) Snapshot(context.Context) (process.Snapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.snap, nil
}

func TestResolverResolvePredecessors(t *testing.T) {
	inv := &fakeInventory{snap: process.NewSnapshot(
		rec(5, "app", 100*time.Second),
		rec(9, "app", 5*time.Second),
		rec(7, "other", 50*time.Second),
	)}
	r := NewResolver(inv, Options{SelfPID: 9})

	out, err := r.ResolvePredecessors(context.Background(), "app")
	require.NoError(t, err)
	assert.Equal(t, []process.ProcessRecord{rec(5, "app", 100*time.Second)}, out)
	assert.Equal(t, ExcludePosition, r.Options().ExcludeBy)
}

func TestResolverResolveSelf(t *testing.T) {
	inv := &fakeInventory{snap: process.NewSnapshot(
		rec(5, "lastinst", 100*time.Second),
		rec(9, "lastinst", 5*time.Second),
		rec(3, "lastinst", 200*time.Second),
	)}
	r := NewResolver(inv, Options{SelfPID: 9})

	name, out, err := r.ResolveSelf(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "lastinst", name)
	assert.Equal(t, []process.ProcessRecord{
		rec(5, "lastinst", 100*time.Second),
		rec(3, "lastinst", 200*time.Second),
	}, out)
	assert.Equal(t, 1, inv.calls)
}

func TestResolverResolveByNameExcludesSelf(t *testing.T) {
	inv := &fakeInventory{snap: process.NewSnapshot(
		rec(5, "worker", 100*time.Second),
		rec(9, "worker", 5*time.Second),
		rec(11, "worker", 7*time.Second),
	)}
	r := NewResolver(inv, Options{SelfPID: 9})

	out, err := r.ResolveByName(context.Background(), "worker")
	require.NoError(t, err)
	assert.Equal(t, []process.ProcessRecord{
		rec(11, "worker", 7*time.Second),
		rec(5, "worker", 100*time.Second),
	}, out)
}

func TestResolverInventoryUnavailable(t *testing.T) {
	cause := process.InventoryError("fake", errors.New("access denied"))
	r := NewResolver(&fakeInventory{err: cause}, Options{SelfPID: 1})

	_, err := r.ResolvePredecessors(context.Background(), "app")
	assert.ErrorIs(t, err, process.ErrInventoryUnavailable)

	_, err = r.ResolveByName(context.Background(), "app")
	assert.ErrorIs(t, err, process.ErrInventoryUnavailable)

	_, _, err = r.ResolveSelf(context.Background())
	assert.ErrorIs(t, err, process.ErrInventoryUnavailable)

	_, err = r.CurrentName(context.Background())
	assert.ErrorIs(t, err, process.ErrInventoryUnavailable)
}

func TestResolverCurrentNameFallsBackToExecutable(t *testing.T) {
	r := NewResolver(&fakeInventory{snap: process.NewSnapshot(rec(2, "init", time.Hour))}, Options{SelfPID: 12345678})

	name, err := r.CurrentName(context.Background())
	require.NoError(t, err)

	exe, err := ExecutableName()
	require.NoError(t, err)
	assert.Equal(t, exe, name)
	assert.NotEmpty(t, name)
}
