package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ldez/stackoverflow-slack-bot/pkg/service/stackexchange"
)

// StackExchange holds CLI flags for the question feed configuration
type StackExchange struct {
	tags        string
	apiBaseURL  string
	site        string
	siteURL     string
	minutesBack int64
	hoursBack   int64
	daysBack    int64
}

// Flags returns CLI flags for the question feed configuration
func (x *StackExchange) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tags",
			Usage:       "Watched tags, separated by ';' (e.g. traefik;docker)",
			Category:    "StackOverflow",
			Required:    true,
			Sources:     cli.EnvVars("SOBOT_TAGS"),
			Destination: &x.tags,
		},
		&cli.StringFlag{
			Name:        "api-base-url",
			Usage:       "StackExchange API base URL",
			Category:    "StackOverflow",
			Value:       stackexchange.DefaultAPIBaseURL,
			Sources:     cli.EnvVars("SOBOT_API_BASE_URL"),
			Destination: &x.apiBaseURL,
		},
		&cli.StringFlag{
			Name:        "site",
			Usage:       "StackExchange site parameter",
			Category:    "StackOverflow",
			Value:       stackexchange.DefaultSite,
			Sources:     cli.EnvVars("SOBOT_SITE"),
			Destination: &x.site,
		},
		&cli.StringFlag{
			Name:        "site-url",
			Usage:       "Site base URL used for permalinks",
			Category:    "StackOverflow",
			Value:       "https://stackoverflow.com",
			Sources:     cli.EnvVars("SOBOT_SITE_URL"),
			Destination: &x.siteURL,
		},
		&cli.Int64Flag{
			Name:        "minutes-back",
			Usage:       "First-run lookback window, minutes part",
			Category:    "StackOverflow",
			Sources:     cli.EnvVars("SOBOT_MINUTES_BACK"),
			Destination: &x.minutesBack,
		},
		&cli.Int64Flag{
			Name:        "hours-back",
			Usage:       "First-run lookback window, hours part",
			Category:    "StackOverflow",
			Sources:     cli.EnvVars("SOBOT_HOURS_BACK"),
			Destination: &x.hoursBack,
		},
		&cli.Int64Flag{
			Name:        "days-back",
			Usage:       "First-run lookback window, days part",
			Category:    "StackOverflow",
			Value:       1,
			Sources:     cli.EnvVars("SOBOT_DAYS_BACK"),
			Destination: &x.daysBack,
		},
	}
}

// Tags returns the watched tag filter
func (x *StackExchange) Tags() string {
	return x.tags
}

// SiteURL returns the site base URL used for permalinks
func (x *StackExchange) SiteURL() string {
	return x.siteURL
}

// Lookback returns the combined first-run lookback window
func (x *StackExchange) Lookback() time.Duration {
	return time.Duration(x.minutesBack)*time.Minute +
		time.Duration(x.hoursBack)*time.Hour +
		time.Duration(x.daysBack)*24*time.Hour
}

// Configure builds the StackExchange feed service
func (x *StackExchange) Configure() (stackexchange.Service, error) {
	if x.tags == "" {
		return nil, goerr.New("tags are required")
	}

	return stackexchange.New(
		stackexchange.WithBaseURL(x.apiBaseURL),
		stackexchange.WithSite(x.site),
	), nil
}

func (x StackExchange) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tags", x.tags),
		slog.String("api_base_url", x.apiBaseURL),
		slog.String("site", x.site),
		slog.Duration("lookback", x.Lookback()),
	)
}
