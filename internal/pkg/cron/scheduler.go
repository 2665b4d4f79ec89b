package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JobFunc is a unit of scheduled work. It must honor ctx cancellation.
type JobFunc func(ctx context.Context) error

type job struct {
	name  string
	every time.Duration
	run   JobFunc
}

// Scheduler runs registered jobs on fixed intervals. Register every job
// before calling Start; registration is not safe once the loops are running.
type Scheduler struct {
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// Every registers fn to run on the given interval.
func (s *Scheduler) Every(interval time.Duration, name string, fn JobFunc) {
	s.jobs = append(s.jobs, job{name: name, every: interval, run: fn})
	slog.Info("Scheduled job registered", "name", name, "interval", interval)
}

// Start launches one loop per registered job. Each job runs once right away,
// then on its interval until Stop.
func (s *Scheduler) Start() {
	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}
	slog.Info("Scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all job loops and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	s.execute(s.ctx, j)
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(s.ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j job) {
	start := time.Now()
	if err := j.run(ctx); err != nil {
		slog.Error("Scheduled job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Scheduled job completed", "name", j.name, "duration", time.Since(start))
}

// RunAll executes every registered job once on the caller's context. Failures
// are logged and do not stop the remaining jobs.
func (s *Scheduler) RunAll(ctx context.Context) {
	for _, j := range s.jobs {
		s.execute(ctx, j)
	}
}
