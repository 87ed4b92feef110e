package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is one unit of periodic work. Errors are logged, not fatal; the
// task keeps its schedule.
type Task func(ctx context.Context) error

// Scheduler runs named tasks on fixed intervals, one goroutine per task.
// Stopping a task or closing the scheduler cancels the task's context
// and waits for the goroutine to exit.
type Scheduler struct {
	logger *slog.Logger

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
	closed  bool
}

// New creates a new Scheduler
func New(logger *slog.Logger) *Scheduler {
	return &Scheduler{
		logger:  logger,
		cancels: make(map[string]context.CancelFunc),
	}
}

// Start schedules the task under the given name. Starting a name that is
// already running replaces the previous task. Starting on a closed
// scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context, name string, interval time.Duration, task Task) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if cancel, ok := s.cancels[name]; ok {
		cancel()
	}
	taskCtx, cancel := context.WithCancel(ctx)
	s.cancels[name] = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(taskCtx, name, interval, task)
}

func (s *Scheduler) run(ctx context.Context, name string, interval time.Duration, task Task) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("scheduler task started", "task", name, "interval", interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler task stopped", "task", name)
			return
		case <-ticker.C:
			if err := task(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("scheduler task failed", "task", name, "error", err)
			}
		}
	}
}

// Stop cancels the named task if it is running
func (s *Scheduler) Stop(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cancel, ok := s.cancels[name]; ok {
		cancel()
		delete(s.cancels, name)
	}
}

// Close cancels every task and blocks until all task goroutines exit
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	for name, cancel := range s.cancels {
		cancel()
		delete(s.cancels, name)
	}
	s.mu.Unlock()

	s.wg.Wait()
}
