package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnceJoinsErrors(t *testing.T) {
	s := NewScheduler()
	boom := errors.New("boom")

	var ran atomic.Int32
	s.AddJob(Job{Name: "ok", Interval: time.Hour, Fn: func(context.Context) error { ran.Add(1); return nil }})
	s.AddJob(Job{Name: "fails", Interval: time.Hour, Fn: func(context.Context) error { ran.Add(1); return boom }})
	s.AddJob(Job{Name: "panics", Interval: time.Hour, Fn: func(context.Context) error { ran.Add(1); panic("oops") }})
	s.AddJob(Job{Name: "disabled", Interval: 0, Fn: func(context.Context) error { ran.Add(1); return nil }})

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "panics: panic: oops")
	assert.Equal(t, int32(3), ran.Load())
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	done := make(chan struct{}, 1)
	s.AddJob(Job{Name: "tick", Interval: time.Hour, Fn: func(context.Context) error {
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	}})

	s.Start(context.Background())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}

func TestScheduler_TimeoutCancelsRun(t *testing.T) {
	s := NewScheduler()
	s.AddJob(Job{Name: "slow", Interval: time.Hour, Timeout: 10 * time.Millisecond, Fn: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}})

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
