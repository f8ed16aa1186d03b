package postgres

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/interfaces"
)

const defaultKey = "stackoverflow"

const schema = `
CREATE TABLE IF NOT EXISTS watermarks (
	key   TEXT PRIMARY KEY,
	value BIGINT NOT NULL
)`

// Postgres persists the watermark as a single row keyed by the bot instance.
// The upsert runs in a single statement, so a concurrent reader sees either
// the previous or the new value, never a partial one.
type Postgres struct {
	db  *sql.DB
	key string
}

var _ interfaces.Repository = &Postgres{}

type Option func(*Postgres)

// WithKey overrides the row key, so multiple bots can share a database
func WithKey(key string) Option {
	return func(p *Postgres) {
		p.key = key
	}
}

func New(ctx context.Context, dsn string, opts ...Option) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open postgres connection")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to ping postgres")
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to ensure watermarks table")
	}

	p := &Postgres{
		db:  db,
		key: defaultKey,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

func (p *Postgres) GetWatermark(ctx context.Context) (int64, bool, error) {
	var watermark int64
	err := p.db.QueryRowContext(ctx,
		"SELECT value FROM watermarks WHERE key = $1", p.key,
	).Scan(&watermark)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, goerr.Wrap(err, "failed to query watermark", goerr.V("key", p.key))
	}

	return watermark, true, nil
}

func (p *Postgres) PutWatermark(ctx context.Context, watermark int64) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO watermarks (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		p.key, watermark,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to upsert watermark", goerr.V("key", p.key))
	}

	return nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
