package cron

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"stylebook/models"

	"github.com/stretchr/testify/assert"
)

type fakeLifecycle struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeLifecycle) Sweep(ctx context.Context, now time.Time) (models.SweepResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return models.SweepResult{}, f.err
}

func (f *fakeLifecycle) CheckOne(ctx context.Context, bookingID string, now time.Time) (bool, error) {
	return false, nil
}

func (f *fakeLifecycle) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestSweeper_RunsImmediatelyAndOnTicks(t *testing.T) {
	lc := &fakeLifecycle{}
	s := NewSweeper(lc, 30*time.Millisecond, fixedClock{t: time.Now()})

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, lc.count(), 3)
}

func TestSweeper_ContinuesAfterSweepError(t *testing.T) {
	lc := &fakeLifecycle{err: errors.New("store down")}
	s := NewSweeper(lc, 30*time.Millisecond, fixedClock{t: time.Now()})

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, lc.count(), 2)
}

func TestSweeper_StopsOnContextCancel(t *testing.T) {
	lc := &fakeLifecycle{}
	s := NewSweeper(lc, time.Second, nil) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancel")
	}

	// The immediate run on start still happened.
	assert.GreaterOrEqual(t, lc.count(), 1)
}
