package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerRunsOnlyLastCall(t *testing.T) {
	d := NewDebouncer(20*time.Millisecond, nil)

	var calls, last atomic.Int64
	for i := int64(1); i <= 3; i++ {
		d.Schedule(1, func() {
			calls.Add(1)
			last.Store(i)
		})
	}

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), calls.Load())
	assert.Equal(t, int64(3), last.Load())
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	d := NewDebouncer(10*time.Millisecond, nil)

	var calls atomic.Int64
	d.Schedule(1, func() { calls.Add(1) })
	d.Schedule(2, func() { calls.Add(1) })

	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(10*time.Millisecond, nil)

	var calls atomic.Int64
	d.Schedule(1, func() { calls.Add(1) })
	d.Cancel(1)
	d.Schedule(2, func() { calls.Add(1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestDebouncerDispatchDropsStaleCalls(t *testing.T) {
	queue := make(chan func(), 4)
	d := NewDebouncer(10*time.Millisecond, func(fn func()) { queue <- fn })

	var got []string
	d.Schedule(1, func() { got = append(got, "first") })

	var queued func()
	select {
	case queued = <-queue:
	case <-time.After(time.Second):
		t.Fatal("callback was not dispatched")
	}

	// A newer call arrives while the first one waits on the loop.
	d.Schedule(1, func() { got = append(got, "second") })
	queued()
	assert.Empty(t, got)

	select {
	case queued = <-queue:
	case <-time.After(time.Second):
		t.Fatal("callback was not dispatched")
	}
	queued()
	assert.Equal(t, []string{"second"}, got)
}
