package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// DefaultUsername is the bot name shown on posted digests
const DefaultUsername = "StackOverflow Bot"

// client implements Service interface
type client struct {
	api      *slack.Client
	channel  string
	username string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithUsername overrides the bot name shown on posted digests
func WithUsername(username string) Option {
	return func(c *client) {
		c.username = username
	}
}

// New creates a new Slack delivery service posting to the given channel
func New(token, channel string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channel == "" {
		return nil, goerr.New("Slack channel is required")
	}

	c := &client{
		api:      slack.New(token),
		channel:  channel,
		username: DefaultUsername,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) PostDigest(ctx context.Context, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, c.channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionUsername(c.username),
		slack.MsgOptionDisableLinkUnfurl(),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post digest to Slack", goerr.V("channel", c.channel))
	}

	return nil
}
