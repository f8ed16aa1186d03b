package usecase

import (
	"context"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/logging"
	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/safe"
)

// Run executes one digest cycle: read watermark, fetch, classify, reconcile,
// render, deliver, commit. The watermark is advanced only after the delivery
// channel has confirmed the digest, so a failed run is retried with the same
// (or a superset) window on the next invocation. Runs against the same
// repository must not overlap; the caller serializes invocations.
func (uc *UseCases) Run(ctx context.Context) error {
	if uc.tags == "" {
		return ErrNoTags
	}
	if uc.notify == nil && !uc.dryRun {
		return ErrNoDelivery
	}

	logger := logging.From(ctx).With("run_id", uuid.New().String())
	ctx = logging.With(ctx, logger)

	// The run clock is sampled exactly once: it bounds the reconciliation
	// window and becomes the committed watermark of a successful run.
	now := uc.now().Unix()

	watermark, ok, err := uc.repo.GetWatermark(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to read watermark")
	}
	if !ok {
		watermark = now - int64(uc.lookback.Seconds())
		// Persist right away: a crash after this point must not widen the
		// window a second time.
		if err := uc.repo.PutWatermark(ctx, watermark); err != nil {
			return goerr.Wrap(err, "failed to initialize watermark")
		}
		logger.Info("initialized watermark from lookback window",
			"watermark", watermark,
			"lookback", uc.lookback.String(),
		)
	}

	list, err := uc.feed.FetchQuestions(ctx, uc.tags)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch question list", goerr.V("tags", uc.tags))
	}
	logger.Info("fetched question list",
		"count", len(list.Items),
		"quota_max", list.QuotaMax,
		"quota_remaining", list.QuotaRemaining,
	)

	ledger := buildLedger(list.Items, watermark)
	if len(ledger) == 0 {
		logger.Info("no new activity since watermark", "watermark", watermark)
		return nil
	}

	entries, err := uc.feed.FetchTimeline(ctx, ledger.IDs())
	if err != nil {
		return goerr.Wrap(err, "failed to fetch timeline")
	}

	pending := classifyTimeline(ledger, entries, watermark, uc.siteURL)
	if len(pending) > 0 {
		answers, err := uc.feed.FetchAnswers(ctx, pending.QuestionIDs(), watermark, now)
		if err != nil {
			return goerr.Wrap(err, "failed to fetch answers for reconciliation")
		}
		reconcileAnswers(ledger, pending, answers, uc.siteURL)
	}

	digest := uc.renderDigest(ledger)

	if uc.dryRun {
		header := color.New(color.FgYellow, color.Bold).Sprint("--- dry run: digest below is not delivered ---")
		safe.Write(ctx, uc.out, []byte(header+"\n"+digest+"\n"))
		logger.Info("dry run completed, watermark not advanced",
			"questions", len(ledger),
			"watermark", watermark,
		)
		return nil
	}

	if err := uc.notify.PostDigest(ctx, digest); err != nil {
		return goerr.Wrap(err, "failed to deliver digest")
	}

	if err := uc.repo.PutWatermark(ctx, now); err != nil {
		return goerr.Wrap(err, "failed to commit watermark", goerr.V("watermark", now))
	}

	logger.Info("run completed",
		"questions", len(ledger),
		"watermark", now,
	)

	return nil
}
