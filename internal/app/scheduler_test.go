package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingPruner struct {
	calls atomic.Int32
}

func (p *countingPruner) Prune() int {
	p.calls.Add(1)
	return 0
}

type countingExpirer struct {
	calls atomic.Int32
	err   error
}

func (e *countingExpirer) ExpireSessions(context.Context) (int, error) {
	e.calls.Add(1)
	return 1, e.err
}

func TestScheduler_SweepsUntilCancelled(t *testing.T) {
	expirer := &countingExpirer{}
	pruner := &countingPruner{}
	s := NewScheduler(expirer, pruner, 5*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return expirer.calls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, pruner.calls.Load(), int32(3))
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_StopAndErrors(t *testing.T) {
	expirer := &countingExpirer{err: errors.New("db down")}
	s := NewScheduler(expirer, nil, time.Hour, zap.NewNop())

	done := make(chan struct{})
	go func() {
		_ = s.Run(context.Background())
		close(done)
	}()

	require.Eventually(t, func() bool { return expirer.calls.Load() == 1 }, time.Second, time.Millisecond)
	s.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_StopTwice(t *testing.T) {
	s := NewScheduler(&countingExpirer{}, nil, time.Hour, zap.NewNop())

	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})

	// Run после Stop делает один проход и сразу выходит
	done := make(chan struct{})
	go func() {
		_ = s.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
