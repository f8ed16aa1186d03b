package usecase

import (
	"io"
	"os"
	"time"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/interfaces"
	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/model"
	"github.com/ldez/stackoverflow-slack-bot/pkg/service/slack"
	"github.com/ldez/stackoverflow-slack-bot/pkg/service/stackexchange"
)

// DefaultSiteURL is the base URL permalinks and the digest header point to
const DefaultSiteURL = "https://stackoverflow.com"

// DefaultLookback bounds the very first run's window when no watermark has
// been stored yet
const DefaultLookback = 24 * time.Hour

type UseCases struct {
	repo   interfaces.Repository
	feed   stackexchange.Service
	notify slack.Service

	tags     string
	siteURL  string
	lookback time.Duration
	icons    model.IconSet
	now      func() time.Time
	dryRun   bool
	out      io.Writer
}

type Option func(*UseCases)

// WithSlack sets the delivery channel. Required unless dry-run is enabled.
func WithSlack(svc slack.Service) Option {
	return func(uc *UseCases) {
		uc.notify = svc
	}
}

// WithSiteURL overrides the site base URL used for permalinks
func WithSiteURL(siteURL string) Option {
	return func(uc *UseCases) {
		uc.siteURL = siteURL
	}
}

// WithLookback sets the first-run initialization window
func WithLookback(lookback time.Duration) Option {
	return func(uc *UseCases) {
		uc.lookback = lookback
	}
}

// WithIcons overrides the digest emoji set
func WithIcons(icons model.IconSet) Option {
	return func(uc *UseCases) {
		uc.icons = icons
	}
}

// WithClock overrides the run clock, for tests
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

// WithDryRun prints the digest to w instead of delivering it. A dry run
// never advances the watermark.
func WithDryRun(w io.Writer) Option {
	return func(uc *UseCases) {
		uc.dryRun = true
		uc.out = w
	}
}

func New(repo interfaces.Repository, feed stackexchange.Service, tags string, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		feed:     feed,
		tags:     tags,
		siteURL:  DefaultSiteURL,
		lookback: DefaultLookback,
		icons:    model.DefaultIconSet(),
		now:      time.Now,
		out:      os.Stdout,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
