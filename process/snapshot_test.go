package process

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSnapshot(t *testing.T) {
	snap := NewSnapshot(
		ProcessRecord{PID: 0, Name: "Idle", ElapsedTime: time.Hour},
		ProcessRecord{PID: 4, Name: "System", ElapsedTime: time.Hour},
		ProcessRecord{PID: 10, Name: "app", ElapsedTime: 3 * time.Second},
		ProcessRecord{PID: 10, Name: "dup", ElapsedTime: 9 * time.Second},
		ProcessRecord{PID: -3, Name: "bogus"},
		ProcessRecord{PID: 11, Name: "skewed", ElapsedTime: -time.Second},
	)

	assert.Equal(t, Snapshot{
		{PID: 4, Name: "System", ElapsedTime: time.Hour},
		{PID: 10, Name: "app", ElapsedTime: 3 * time.Second},
		{PID: 11, Name: "skewed", ElapsedTime: 0},
	}, snap)
}

func TestNewSnapshotEmpty(t *testing.T) {
	snap := NewSnapshot()
	assert.NotNil(t, snap)
	assert.Empty(t, snap)
}

func TestSnapshotFind(t *testing.T) {
	snap := NewSnapshot(ProcessRecord{PID: 7, Name: "other"})

	r, ok := snap.Find(7)
	assert.True(t, ok)
	assert.Equal(t, "other", r.Name)

	_, ok = snap.Find(8)
	assert.False(t, ok)
}

func TestElapsedSince(t *testing.T) {
	now := time.Unix(1000, 0)
	assert.Equal(t, 5*time.Second, ElapsedSince(time.Unix(995, 0), now))
	assert.Equal(t, time.Duration(0), ElapsedSince(time.Unix(1001, 0), now))
}

func TestElapsedSeconds(t *testing.T) {
	r := ProcessRecord{ElapsedTime: 2500 * time.Millisecond}
	assert.Equal(t, uint64(2), r.ElapsedSeconds())
}
