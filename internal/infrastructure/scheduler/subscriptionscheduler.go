package scheduler

import (
	"context"
	"sync"
	"time"

	"officetools/internal/shared/logger"
)

// BatchJob processes one batch and returns the number of items touched.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

const defaultInterval = 10 * time.Minute

// SubscriptionScheduler periodically runs the expiry sweep: deactivating
// lapsed subscriptions and failing stale gateway orders.
type SubscriptionScheduler struct {
	job      BatchJob
	logger   logger.Interface
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	interval time.Duration
	timeout  time.Duration
}

func NewSubscriptionScheduler(job BatchJob, interval time.Duration, log logger.Interface) *SubscriptionScheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &SubscriptionScheduler{
		job:      job,
		logger:   log.With("component", "scheduler.subscription"),
		stopChan: make(chan struct{}),
		interval: interval,
		timeout:  5 * time.Minute,
	}
}

// Start runs one sweep immediately, then one per interval until ctx is
// cancelled or Stop is called.
func (s *SubscriptionScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting subscription scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

func (s *SubscriptionScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping subscription scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("subscription scheduler stopped")
	})
}

func (s *SubscriptionScheduler) runLoop(ctx context.Context) {
	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("subscription scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *SubscriptionScheduler) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	startTime := time.Now()
	count, err := s.job.Execute(runCtx)
	if err != nil {
		s.logger.Errorw("expiry sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		s.logger.Infow("expiry sweep processed records",
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("expiry sweep found nothing to do", "duration", time.Since(startTime))
	}
}
