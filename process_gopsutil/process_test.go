package process_gopsutil

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"lastinstance/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotListsSelf(t *testing.T) {
	snap, err := New().Snapshot(context.Background())
	require.NoError(t, err)

	self, ok := snap.Find(process.ProcessID(os.Getpid()))
	require.True(t, ok)
	assert.NotEmpty(t, self.Name)
	assert.GreaterOrEqual(t, self.ElapsedTime, time.Duration(0))

	for _, r := range snap {
		assert.Positive(t, int(r.PID))
	}
}

func TestKillChild(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a unix sleep binary")
	}

	cmd := exec.Command("sleep", "30")
	require.NoError(t, cmd.Start())
	pid := process.ProcessID(cmd.Process.Pid)

	b := New()
	assert.True(t, b.Exists(context.Background(), pid))
	require.NoError(t, b.Kill(context.Background(), pid))
	_ = cmd.Wait()

	assert.Eventually(t, func() bool { return !b.Exists(context.Background(), pid) }, 2*time.Second, 20*time.Millisecond)
}

func TestKillReapedIsNotFound(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a unix true binary")
	}

	cmd := exec.Command("true")
	require.NoError(t, cmd.Run())

	err := New().Kill(context.Background(), process.ProcessID(cmd.ProcessState.Pid()))
	assert.True(t, process.IsNotFound(err), "got %v", err)
}
