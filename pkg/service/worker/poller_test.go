package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"golang.org/x/sync/semaphore"

	"github.com/ldez/stackoverflow-slack-bot/pkg/service/worker"
)

type countingRunner struct {
	calls atomic.Int64
}

func (r *countingRunner) Run(ctx context.Context) error {
	r.calls.Add(1)
	return nil
}

func TestPoller_RunsOnInterval(t *testing.T) {
	runner := &countingRunner{}
	poller := worker.NewPoller(runner, 10*time.Millisecond, semaphore.NewWeighted(1))

	gt.NoError(t, poller.Start(context.Background()))

	deadline := time.After(2 * time.Second)
	for runner.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatal("poller did not run within deadline")
		case <-time.After(5 * time.Millisecond):
		}
	}

	poller.Stop()
}

func TestPoller_SkipsWhileLockHeld(t *testing.T) {
	lock := semaphore.NewWeighted(1)
	gt.B(t, lock.TryAcquire(1)).True()
	defer lock.Release(1)

	runner := &countingRunner{}
	poller := worker.NewPoller(runner, 10*time.Millisecond, lock)

	gt.NoError(t, poller.Start(context.Background()))
	time.Sleep(60 * time.Millisecond)
	poller.Stop()

	gt.V(t, runner.calls.Load()).Equal(0)
}

func TestPoller_StopBeforeFirstTick(t *testing.T) {
	runner := &countingRunner{}
	poller := worker.NewPoller(runner, time.Hour, semaphore.NewWeighted(1))

	gt.NoError(t, poller.Start(context.Background()))
	poller.Stop()

	gt.V(t, runner.calls.Load()).Equal(0)
}

type failingRunner struct{}

func (r *failingRunner) Run(ctx context.Context) error {
	return goerr.New("throttle_violation")
}

func TestPoller_RunFailureReported(t *testing.T) {
	var captured []*sentry.Event
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn: "https://key@sentry.example.com/1",
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			captured = append(captured, event)
			return nil
		},
	})
	gt.NoError(t, err)
	sentry.CurrentHub().BindClient(client)
	defer sentry.CurrentHub().BindClient(nil)

	lock := semaphore.NewWeighted(1)
	poller := worker.NewPoller(&failingRunner{}, time.Hour, lock)

	poller.Tick(context.Background())

	// the failure is reported, the tick completes and the lock is free again
	gt.A(t, captured).Length(1)
	gt.B(t, lock.TryAcquire(1)).True()
	lock.Release(1)
}
