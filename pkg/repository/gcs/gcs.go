package gcs

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/interfaces"
	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/logging"
	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/safe"
)

const defaultObject = "stackoverflow-watermark"

// GCS persists the watermark as a single Cloud Storage object, for
// deployments without a durable local disk. Object writes are atomic: a new
// generation becomes visible only once fully written.
type GCS struct {
	client *storage.Client
	bucket string
	object string
}

var _ interfaces.Repository = &GCS{}

type Option func(*GCS)

// WithObject overrides the object name the watermark is stored under
func WithObject(name string) Option {
	return func(g *GCS) {
		g.object = name
	}
}

func New(ctx context.Context, bucket string, clientOpts []option.ClientOption, opts ...Option) (*GCS, error) {
	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	g := &GCS{
		client: client,
		bucket: bucket,
		object: defaultObject,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *GCS) GetWatermark(ctx context.Context) (int64, bool, error) {
	reader, err := g.client.Bucket(g.bucket).Object(g.object).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return 0, false, nil
		}
		return 0, false, goerr.Wrap(err, "failed to open watermark object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}
	defer safe.Close(ctx, reader)

	raw, err := io.ReadAll(reader)
	if err != nil {
		return 0, false, goerr.Wrap(err, "failed to read watermark object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}

	watermark, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		logging.From(ctx).Warn("watermark object is unparseable, treating as uninitialized",
			"bucket", g.bucket,
			"object", g.object,
			"content", string(raw),
		)
		return 0, false, nil
	}

	return watermark, true, nil
}

func (g *GCS) PutWatermark(ctx context.Context, watermark int64) error {
	writer := g.client.Bucket(g.bucket).Object(g.object).NewWriter(ctx)
	writer.ContentType = "text/plain"

	if _, err := writer.Write([]byte(strconv.FormatInt(watermark, 10))); err != nil {
		_ = writer.Close()
		return goerr.Wrap(err, "failed to write watermark object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}

	if err := writer.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize watermark object",
			goerr.V("bucket", g.bucket),
			goerr.V("object", g.object),
		)
	}

	return nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}
