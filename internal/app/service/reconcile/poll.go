package reconcile

import (
	"context"
	"time"

	"github.com/agrofono/checkout/pkg/logctx"
	"github.com/agrofono/checkout/pkg/metrics"
	"github.com/agrofono/checkout/pkg/types"
)

// Poll is the bounded polling fallback for a subscription: a fixed-interval
// retry loop that fetches the preapproval status until it is authorized or
// the attempts run out. Fetch failures count as attempts and are retried,
// not surfaced. Returns whether authorization was observed.
func (e *Engine) Poll(ctx context.Context, subscriptionID string) bool {
	log := logctx.FromCtx(ctx, e.log)

	maxRetries := e.cfg.Polling.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 10
	}
	interval := e.cfg.Polling.Interval
	if interval <= 0 {
		interval = 20 * time.Second
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				metrics.PollOutcomesTotal.WithLabelValues("canceled").Inc()
				return false
			case <-time.After(interval):
			}
		}

		metrics.PollAttemptsTotal.Inc()
		pre, err := e.provider.GetPreapproval(ctx, subscriptionID)
		if err != nil {
			log.Warnw("poll_fetch_failed", "subscription_id", subscriptionID, "attempt", attempt+1, "err", err)
			continue
		}

		if pre.Status == types.PreapprovalStatusAuthorized {
			log.Infow("poll_authorized", "subscription_id", subscriptionID, "attempt", attempt+1)
			if err := e.approveSubscription(ctx, subscriptionID); err != nil {
				log.Errorw("poll_approve_failed", "subscription_id", subscriptionID, "err", err)
			}
			metrics.PollOutcomesTotal.WithLabelValues("authorized").Inc()
			return true
		}

		log.Infow("poll_status", "subscription_id", subscriptionID, "status", pre.Status, "attempt", attempt+1)
	}

	log.Warnw("poll_timeout", "subscription_id", subscriptionID, "max_retries", maxRetries)
	metrics.PollOutcomesTotal.WithLabelValues("timeout").Inc()
	return false
}
