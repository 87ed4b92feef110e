package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/DAILY622/Cloud-wealth-mining/internal/testutil"
)

type SchedulerSuite struct {
	suite.Suite
	scheduler *Scheduler
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}

func (s *SchedulerSuite) SetupTest() {
	s.scheduler = New(testutil.NopLogger())
}

func (s *SchedulerSuite) TearDownTest() {
	s.scheduler.Close()
}

func (s *SchedulerSuite) TestTaskRunsOnInterval() {
	var count atomic.Int64
	s.scheduler.Start(context.Background(), "tick", 5*time.Millisecond, func(ctx context.Context) error {
		count.Add(1)
		return nil
	})

	s.Eventually(func() bool {
		return count.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func (s *SchedulerSuite) TestStopHaltsTask() {
	var count atomic.Int64
	s.scheduler.Start(context.Background(), "tick", 5*time.Millisecond, func(ctx context.Context) error {
		count.Add(1)
		return nil
	})

	s.Eventually(func() bool {
		return count.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	s.scheduler.Stop("tick")
	stopped := count.Load()
	time.Sleep(50 * time.Millisecond)
	s.LessOrEqual(count.Load(), stopped+1)
}

func (s *SchedulerSuite) TestErrorsDoNotStopSchedule() {
	var count atomic.Int64
	s.scheduler.Start(context.Background(), "flaky", 5*time.Millisecond, func(ctx context.Context) error {
		count.Add(1)
		return errors.New("transient")
	})

	s.Eventually(func() bool {
		return count.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func (s *SchedulerSuite) TestRestartReplacesTask() {
	var first, second atomic.Int64
	s.scheduler.Start(context.Background(), "tick", 5*time.Millisecond, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.scheduler.Start(context.Background(), "tick", 5*time.Millisecond, func(ctx context.Context) error {
		second.Add(1)
		return nil
	})

	s.Eventually(func() bool {
		return second.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	firstCount := first.Load()
	time.Sleep(50 * time.Millisecond)
	s.LessOrEqual(first.Load(), firstCount+1)
}

func (s *SchedulerSuite) TestCloseWaitsForTasks() {
	var count atomic.Int64
	s.scheduler.Start(context.Background(), "tick", 5*time.Millisecond, func(ctx context.Context) error {
		count.Add(1)
		return nil
	})

	s.Eventually(func() bool {
		return count.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	s.scheduler.Close()
	closed := count.Load()
	time.Sleep(50 * time.Millisecond)
	s.Equal(closed, count.Load())

	// Start after Close is a no-op
	s.scheduler.Start(context.Background(), "late", time.Millisecond, func(ctx context.Context) error {
		count.Add(1)
		return nil
	})
	time.Sleep(20 * time.Millisecond)
	s.Equal(closed, count.Load())
}

func (s *SchedulerSuite) TestParentContextCancelStopsTask() {
	ctx, cancel := context.WithCancel(context.Background())
	var count atomic.Int64
	s.scheduler.Start(ctx, "tick", 5*time.Millisecond, func(ctx context.Context) error {
		count.Add(1)
		return nil
	})

	s.Eventually(func() bool {
		return count.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	stopped := count.Load()
	time.Sleep(50 * time.Millisecond)
	s.LessOrEqual(count.Load(), stopped+1)
}
