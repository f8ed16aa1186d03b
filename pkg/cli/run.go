package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ldez/stackoverflow-slack-bot/pkg/cli/config"
	"github.com/ldez/stackoverflow-slack-bot/pkg/usecase"
	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/logging"
)

func cmdRun() *cli.Command {
	var dryRun bool
	var seCfg config.StackExchange
	var slackCfg config.Slack
	var repoCfg config.Repository
	var iconsCfg config.Icons

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Print the digest to stdout instead of posting, without advancing the watermark",
			Sources:     cli.EnvVars("SOBOT_DRY_RUN"),
			Destination: &dryRun,
		},
	}
	flags = append(flags, seCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, iconsCfg.Flags()...)

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Run a single digest cycle and exit",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if !dryRun && !slackCfg.IsConfigured() {
				return goerr.New("Slack delivery is required: set --slack-bot-token and --slack-channel, or use --dry-run")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", logging.ErrAttr(err))
				}
			}()

			feed, err := seCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure question feed")
			}

			icons, err := iconsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load icons")
			}

			opts := []usecase.Option{
				usecase.WithSiteURL(seCfg.SiteURL()),
				usecase.WithLookback(seCfg.Lookback()),
				usecase.WithIcons(icons),
			}

			if dryRun {
				opts = append(opts, usecase.WithDryRun(os.Stdout))
			}

			if slackCfg.IsConfigured() {
				notify, err := slackCfg.Configure()
				if err != nil {
					return goerr.Wrap(err, "failed to configure Slack delivery")
				}
				opts = append(opts, usecase.WithSlack(notify))
			}

			uc := usecase.New(repo, feed, seCfg.Tags(), opts...)

			return uc.Run(ctx)
		},
	}
}
