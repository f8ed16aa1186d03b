package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/interfaces"
)

const (
	defaultCollection = "watermarks"
	defaultDocument   = "stackoverflow"
)

// Firestore persists the watermark as a single document. Document writes are
// atomic, which satisfies the all-or-nothing visibility requirement.
type Firestore struct {
	client     *firestore.Client
	collection string
	document   string
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithDocument overrides the collection and document the watermark lives in,
// so multiple bots with distinct tag filters can share a project.
func WithDocument(collection, document string) Option {
	return func(f *Firestore) {
		f.collection = collection
		f.document = document
	}
}

type watermarkDoc struct {
	Value int64 `firestore:"value"`
}

func New(ctx context.Context, projectID, databaseID string, clientOpts []option.ClientOption, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID, clientOpts...)
	} else {
		client, err = firestore.NewClient(ctx, projectID, clientOpts...)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:     client,
		collection: defaultCollection,
		document:   defaultDocument,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) GetWatermark(ctx context.Context) (int64, bool, error) {
	doc, err := f.client.Collection(f.collection).Doc(f.document).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, false, nil
		}
		return 0, false, goerr.Wrap(err, "failed to get watermark from firestore",
			goerr.V("collection", f.collection),
			goerr.V("document", f.document),
		)
	}

	var wm watermarkDoc
	if err := doc.DataTo(&wm); err != nil {
		return 0, false, goerr.Wrap(err, "failed to unmarshal watermark document")
	}

	return wm.Value, true, nil
}

func (f *Firestore) PutWatermark(ctx context.Context, watermark int64) error {
	docRef := f.client.Collection(f.collection).Doc(f.document)
	if _, err := docRef.Set(ctx, watermarkDoc{Value: watermark}); err != nil {
		return goerr.Wrap(err, "failed to put watermark to firestore",
			goerr.V("collection", f.collection),
			goerr.V("document", f.document),
		)
	}

	return nil
}

func (f *Firestore) Close() error {
	return f.client.Close()
}
