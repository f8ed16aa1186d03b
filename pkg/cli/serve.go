package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/semaphore"

	"github.com/ldez/stackoverflow-slack-bot/pkg/cli/config"
	httpctrl "github.com/ldez/stackoverflow-slack-bot/pkg/controller/http"
	"github.com/ldez/stackoverflow-slack-bot/pkg/service/worker"
	"github.com/ldez/stackoverflow-slack-bot/pkg/usecase"
	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var interval time.Duration
	var seCfg config.StackExchange
	var slackCfg config.Slack
	var repoCfg config.Repository
	var iconsCfg config.Icons

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("SOBOT_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "interval",
			Usage:       "Digest polling interval (0 disables the poller, leaving only the HTTP trigger)",
			Value:       10 * time.Minute,
			Sources:     cli.EnvVars("SOBOT_INTERVAL"),
			Destination: &interval,
		},
	}
	flags = append(flags, seCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, iconsCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the digest loop with an HTTP trigger endpoint",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if !slackCfg.IsConfigured() {
				return goerr.New("Slack delivery is required: set --slack-bot-token and --slack-channel")
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

			notify, err := slackCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure Slack delivery")
			}

			icons, err := iconsCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load icons")
			}

			uc := usecase.New(repo, feed, seCfg.Tags(),
				usecase.WithSlack(notify),
				usecase.WithSiteURL(seCfg.SiteURL()),
				usecase.WithLookback(seCfg.Lookback()),
				usecase.WithIcons(icons),
			)

			// One digest run at a time, shared between the poller and
			// the HTTP trigger.
			runLock := semaphore.NewWeighted(1)

			var poller *worker.Poller
			if interval > 0 {
				poller = worker.NewPoller(uc, interval, runLock)
				if err := poller.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start poller")
				}
			} else {
				logging.Default().Info("Poller disabled, digest runs only on HTTP trigger")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpctrl.WithRunLock(runLock)),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "interval", interval)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				if poller != nil {
					poller.Stop()
				}
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				if poller != nil {
					poller.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
