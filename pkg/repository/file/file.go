package file

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/interfaces"
	"github.com/ldez/stackoverflow-slack-bot/pkg/utils/logging"
)

// File persists the watermark as a decimal epoch value in a local file.
// Writes go through a temporary file followed by a rename so that a crashed
// write can never leave a truncated value behind.
type File struct {
	path string
}

var _ interfaces.Repository = &File{}

func New(path string) *File {
	return &File{path: path}
}

func (f *File) GetWatermark(ctx context.Context) (int64, bool, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, goerr.Wrap(err, "failed to read watermark file", goerr.V("path", f.path))
	}

	watermark, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		// Unparseable content is treated as "never initialized" so the run
		// can re-initialize from the lookback window.
		logging.From(ctx).Warn("watermark file is unparseable, treating as uninitialized",
			"path", f.path,
			"content", string(raw),
		)
		return 0, false, nil
	}

	return watermark, true, nil
}

func (f *File) PutWatermark(ctx context.Context, watermark int64) error {
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary watermark file", goerr.V("dir", dir))
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(strconv.FormatInt(watermark, 10)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to write watermark", goerr.V("path", tmpPath))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to close temporary watermark file", goerr.V("path", tmpPath))
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return goerr.Wrap(err, "failed to replace watermark file", goerr.V("path", f.path))
	}

	return nil
}

func (f *File) Close() error {
	return nil
}
