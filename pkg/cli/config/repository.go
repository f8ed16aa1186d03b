package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/interfaces"
	"github.com/ldez/stackoverflow-slack-bot/pkg/repository/file"
	"github.com/ldez/stackoverflow-slack-bot/pkg/repository/firestore"
	"github.com/ldez/stackoverflow-slack-bot/pkg/repository/gcs"
	"github.com/ldez/stackoverflow-slack-bot/pkg/repository/memory"
	"github.com/ldez/stackoverflow-slack-bot/pkg/repository/postgres"
	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/logging"
)

// Repository holds CLI flags for watermark storage configuration
type Repository struct {
	backend     string
	filePath    string
	projectID   string
	databaseID  string
	bucket      string
	dsn         string
	credentials string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Watermark storage backend (file, memory, firestore, gcs or postgres)",
			Category:    "Repository",
			Value:       "file",
			Sources:     cli.EnvVars("SOBOT_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "watermark-file",
			Usage:       "Path of the watermark file (file backend)",
			Category:    "Repository",
			Value:       "timestamp.txt",
			Sources:     cli.EnvVars("SOBOT_WATERMARK_FILE"),
			Destination: &r.filePath,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (firestore backend)",
			Category:    "Repository",
			Sources:     cli.EnvVars("SOBOT_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Category:    "Repository",
			Sources:     cli.EnvVars("SOBOT_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Cloud Storage bucket name (gcs backend)",
			Category:    "Repository",
			Sources:     cli.EnvVars("SOBOT_GCS_BUCKET"),
			Destination: &r.bucket,
		},
		&cli.StringFlag{
			Name:        "postgres-dsn",
			Usage:       "PostgreSQL connection string (postgres backend)",
			Category:    "Repository",
			Sources:     cli.EnvVars("SOBOT_POSTGRES_DSN"),
			Destination: &r.dsn,
		},
		&cli.StringFlag{
			Name:        "gcp-credentials",
			Usage:       "Path to a GCP service account key file (firestore and gcs backends)",
			Category:    "Repository",
			Sources:     cli.EnvVars("SOBOT_GCP_CREDENTIALS"),
			Destination: &r.credentials,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

func (x Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("watermark-file", x.filePath),
		slog.String("firestore-project-id", x.projectID),
		slog.String("firestore-database-id", x.databaseID),
		slog.String("gcs-bucket", x.bucket),
		slog.Int("postgres-dsn.len", len(x.dsn)),
	)
}

func (r *Repository) clientOptions() []option.ClientOption {
	if r.credentials == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(r.credentials)}
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "file":
		logging.Default().Info("Using file watermark repository", "path", r.filePath)
		return file.New(r.filePath), nil

	case "memory":
		logging.Default().Info("Using in-memory watermark repository (development mode)")
		return memory.New(), nil

	case "firestore":
		if r.projectID == "" {
			return nil, goerr.New("firestore-project-id is required when using firestore backend")
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID, r.clientOptions())
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.Default().Info("Using Firestore watermark repository",
			"project_id", r.projectID,
			"database_id", r.databaseID,
		)
		return repo, nil

	case "gcs":
		if r.bucket == "" {
			return nil, goerr.New("gcs-bucket is required when using gcs backend")
		}
		repo, err := gcs.New(ctx, r.bucket, r.clientOptions())
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize gcs repository")
		}
		logging.Default().Info("Using Cloud Storage watermark repository", "bucket", r.bucket)
		return repo, nil

	case "postgres":
		if r.dsn == "" {
			return nil, goerr.New("postgres-dsn is required when using postgres backend")
		}
		repo, err := postgres.New(ctx, r.dsn)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize postgres repository")
		}
		logging.Default().Info("Using PostgreSQL watermark repository")
		return repo, nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
