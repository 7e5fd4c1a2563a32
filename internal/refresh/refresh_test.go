package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func isRunning[T any](r *Refresher[T]) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func TestNew_DefaultInterval(t *testing.T) {
	r := New("tip", 0, func(context.Context) (string, error) { return "x", nil })
	assert.Equal(t, DefaultInterval, r.interval)
	assert.Equal(t, 5*time.Minute, r.interval)

	_, ok := r.Latest()
	assert.False(t, ok)
	assert.False(t, isRunning(r))
}

func TestStart_FetchesImmediately(t *testing.T) {
	updates := make(chan string, 1)
	r := New("tip", time.Hour,
		func(context.Context) (string, error) { return "save $5", nil },
		WithOnUpdate(func(v string) { updates <- v }),
	)

	r.Start(context.Background())
	defer r.Stop()

	select {
	case v := <-updates:
		assert.Equal(t, "save $5", v)
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate fetch")
	}

	v, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, "save $5", v)
}

func TestStart_TicksAndLastWriteWins(t *testing.T) {
	var n atomic.Int32
	r := New("counter", 5*time.Millisecond, func(context.Context) (int32, error) {
		return n.Add(1), nil
	})

	r.Start(context.Background())
	require.Eventually(t, func() bool {
		v, _ := r.Latest()
		return v >= 3
	}, 2*time.Second, 5*time.Millisecond)
	r.Stop()

	v, _ := r.Latest()
	assert.Equal(t, n.Load(), v)
}

func TestRefresh_ErrorKeepsPreviousValue(t *testing.T) {
	fail := false
	r := New("tip", time.Hour, func(context.Context) (string, error) {
		if fail {
			return "", errors.New("offline")
		}
		return "first", nil
	})

	require.NoError(t, r.Refresh(context.Background()))
	fail = true
	assert.Error(t, r.Refresh(context.Background()))

	v, ok := r.Latest()
	assert.True(t, ok)
	assert.Equal(t, "first", v)
}

func TestStartStop_Idempotent(t *testing.T) {
	var calls atomic.Int32
	r := New("tip", time.Hour, func(context.Context) (string, error) {
		calls.Add(1)
		return "x", nil
	})

	r.Start(context.Background())
	r.Start(context.Background())
	assert.True(t, isRunning(r))

	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	r.Stop()
	r.Stop()
	assert.False(t, isRunning(r))
	assert.Equal(t, int32(1), calls.Load())

	// restartable after Stop
	r.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)
	r.Stop()
}

func TestStart_ContextCancelEndsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New("tip", time.Millisecond, func(context.Context) (string, error) { return "x", nil })

	r.Start(ctx)
	cancel()
	// Stop still waits for the goroutine and clears the running flag
	r.Stop()
	assert.False(t, isRunning(r))
}
