package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/model"
)

type Icons struct {
	path string
}

func (x *Icons) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "icons-file",
			Usage:       "TOML file overriding the digest emoji icons",
			Category:    "StackOverflow",
			Destination: &x.path,
			Sources:     cli.EnvVars("SOBOT_ICONS_FILE"),
		},
	}
}

func (x Icons) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
	)
}

// Configure loads the icon set. Keys missing from the file keep their
// built-in defaults.
func (x *Icons) Configure() (model.IconSet, error) {
	icons := model.DefaultIconSet()
	if x.path == "" {
		return icons, nil
	}

	raw, err := os.ReadFile(x.path)
	if err != nil {
		return icons, goerr.Wrap(err, "failed to read icons file", goerr.V("path", x.path))
	}

	if err := toml.Unmarshal(raw, &icons); err != nil {
		return icons, goerr.Wrap(err, "failed to parse icons file", goerr.V("path", x.path))
	}

	return icons, nil
}
