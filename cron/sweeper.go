// File: cron/sweeper.go
package cron

import (
	"context"
	"time"

	"stylebook/services/lifecycle"
	"stylebook/utils"

	"go.uber.org/zap"
)

// Sweeper drives the lifecycle sweep on a fixed interval. The loop is a
// plain driver: all rejection logic lives in the lifecycle service, so a
// missed or delayed tick only postpones transitions, never loses them.
type Sweeper struct {
	Lifecycle lifecycle.LifecycleService
	Interval  time.Duration
	Clock     utils.Clock
}

func NewSweeper(svc lifecycle.LifecycleService, interval time.Duration, clock utils.Clock) *Sweeper {
	if clock == nil {
		clock = utils.SystemClock{}
	}
	return &Sweeper{Lifecycle: svc, Interval: interval, Clock: clock}
}

// Start runs one immediate sweep and then sweeps every interval until the
// context is cancelled. Blocks; run it in its own goroutine.
func (s *Sweeper) Start(ctx context.Context) {
	logger := utils.GetLogger()
	logger.Info("starting booking sweeper", zap.Duration("interval", s.Interval))

	s.runOnce(ctx)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("booking sweeper stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	if _, err := s.Lifecycle.Sweep(ctx, s.Clock.Now()); err != nil {
		utils.GetLogger().Error("booking sweep failed", zap.Error(err))
	}
}
