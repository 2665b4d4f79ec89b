package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunAllExecutesEveryJob(t *testing.T) {
	s := NewScheduler()

	var ran int32
	s.Every(time.Hour, "first", func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})
	s.Every(time.Hour, "second", func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	s.RunAll(context.Background())
	assert.Equal(t, int32(2), atomic.LoadInt32(&ran))
}

func TestRunAllContinuesPastFailingJob(t *testing.T) {
	s := NewScheduler()

	var ran int32
	s.Every(time.Hour, "failing", func(ctx context.Context) error {
		return errors.New("boom")
	})
	s.Every(time.Hour, "after", func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	s.RunAll(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(&ran))
}

func TestStartRunsJobsImmediately(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.Every(time.Hour, "immediate", func(ctx context.Context) error {
		close(done)
		return nil
	})

	s.Start()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}
