package config

import (
	"log/slog"

	slacksvc "github.com/ldez/stackoverflow-slack-bot/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

type Slack struct {
	botToken string
	channel  string
	username string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token",
			Category:    "Slack",
			Destination: &x.botToken,
			Sources:     cli.EnvVars("SOBOT_SLACK_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel to post digests to",
			Category:    "Slack",
			Destination: &x.channel,
			Sources:     cli.EnvVars("SOBOT_SLACK_CHANNEL"),
		},
		&cli.StringFlag{
			Name:        "slack-username",
			Usage:       "Display name used when posting",
			Category:    "Slack",
			Destination: &x.username,
			Value:       slacksvc.DefaultUsername,
			Sources:     cli.EnvVars("SOBOT_SLACK_USERNAME"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel", x.channel),
		slog.String("username", x.username),
	)
}

// IsConfigured checks if Slack delivery is fully configured
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" && x.channel != ""
}

// Configure creates a Slack notification service from the flags.
func (x *Slack) Configure() (slacksvc.Service, error) {
	return slacksvc.New(x.botToken, x.channel, slacksvc.WithUsername(x.username))
}
