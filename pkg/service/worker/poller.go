package worker

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/errutil"
	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/logging"
)

// Runner executes one digest run. Implemented by usecase.UseCases.
type Runner interface {
	Run(ctx context.Context) error
}

// Poller triggers digest runs on a fixed interval.
//
// Architecture assumptions:
// - Single instance per watermark store (no distributed locking)
// - Runs are serialized through the shared run lock, so an interval tick
//   overlapping a run triggered over HTTP is skipped, not queued
type Poller struct {
	runner   Runner
	interval time.Duration
	runLock  *semaphore.Weighted
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewPoller creates a new interval poller sharing the given run lock with
// other trigger sources
func NewPoller(runner Runner, interval time.Duration, runLock *semaphore.Weighted) *Poller {
	return &Poller{
		runner:   runner,
		interval: interval,
		runLock:  runLock,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the polling loop in a background goroutine. The first run
// happens after one full interval, not immediately.
func (p *Poller) Start(ctx context.Context) error {
	logging.Default().Info("poller starting", "interval", p.interval.String())

	go p.run(ctx)

	return nil
}

// Stop signals the poller to stop and waits for completion
func (p *Poller) Stop() {
	logging.Default().Info("poller stopping")
	close(p.stopCh)
	<-p.doneCh
	logging.Default().Info("poller stopped")
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.doneCh)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.tick(ctx)

		case <-p.stopCh:
			return

		case <-ctx.Done():
			logging.From(ctx).Info("poller context cancelled")
			return
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if !p.runLock.TryAcquire(1) {
		logging.From(ctx).Warn("a run is already in progress, skipping this interval")
		return
	}
	defer p.runLock.Release(1)

	if err := p.runner.Run(ctx); err != nil {
		// Report and continue; the unchanged watermark makes the next
		// interval retry the same window.
		_ = errutil.Handle(ctx, err, "scheduled run failed (will retry next interval)")
	}
}
