package slack

import "context"

// Service is the delivery channel for rendered digests. PostDigest returns
// only after the Slack API has confirmed the message, so a nil error is a
// synchronous delivery confirmation.
type Service interface {
	PostDigest(ctx context.Context, text string) error
}
