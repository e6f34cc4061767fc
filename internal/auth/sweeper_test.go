package auth_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/badekart/badekart-backend/internal/auth"
)

func TestSessionSweeper_SweepOncePurgesAndNotifies(t *testing.T) {
	fixed := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	var gotBefore time.Time
	sweeper := auth.NewSessionSweeperWith(time.Minute,
		func() time.Time { return fixed },
		func(before time.Time) (int64, error) {
			gotBefore = before
			return 3, nil
		})

	var notified int64 = -1
	sweeper.Subscribe(func(purged int64) { notified = purged })

	sweeper.SweepOnce()

	if !gotBefore.Equal(fixed) {
		t.Errorf("purge cutoff = %v, want %v", gotBefore, fixed)
	}
	if notified != 3 {
		t.Errorf("subscriber got %d, want 3", notified)
	}
}

func TestSessionSweeper_PurgeErrorSkipsSubscribers(t *testing.T) {
	sweeper := auth.NewSessionSweeperWith(time.Minute,
		time.Now,
		func(before time.Time) (int64, error) {
			return 0, errors.New("db down")
		})

	called := false
	sweeper.Subscribe(func(int64) { called = true })

	sweeper.SweepOnce()

	if called {
		t.Error("subscriber should not run when the purge fails")
	}
}

func TestSessionSweeper_StartStop(t *testing.T) {
	var mu sync.Mutex
	sweeps := 0

	sweeper := auth.NewSessionSweeperWith(5*time.Millisecond,
		time.Now,
		func(before time.Time) (int64, error) {
			mu.Lock()
			sweeps++
			mu.Unlock()
			return 0, nil
		})

	sweeper.Start()
	time.Sleep(30 * time.Millisecond)
	sweeper.Stop()

	mu.Lock()
	after := sweeps
	mu.Unlock()
	if after == 0 {
		t.Fatal("expected at least one sweep while running")
	}

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	final := sweeps
	mu.Unlock()
	if final != after {
		t.Errorf("sweeper kept running after Stop: %d -> %d", after, final)
	}

	// Stop is idempotent.
	sweeper.Stop()
}
