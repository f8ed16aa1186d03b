package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/interfaces"
	"github.com/ldez/stackoverflow-slack-bot/pkg/repository/file"
	"github.com/ldez/stackoverflow-slack-bot/pkg/repository/memory"
)

func testBackends(t *testing.T) map[string]interfaces.Repository {
	t.Helper()
	return map[string]interfaces.Repository{
		"memory": memory.New(),
		"file":   file.New(filepath.Join(t.TempDir(), "lastend")),
	}
}

func TestWatermark_Uninitialized(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer repo.Close()

			_, ok, err := repo.GetWatermark(context.Background())
			gt.NoError(t, err)
			gt.B(t, ok).False()
		})
	}
}

func TestWatermark_PutThenGet(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer repo.Close()
			ctx := context.Background()

			gt.NoError(t, repo.PutWatermark(ctx, 1700000000))

			watermark, ok, err := repo.GetWatermark(ctx)
			gt.NoError(t, err)
			gt.B(t, ok).True()
			gt.V(t, watermark).Equal(1700000000)
		})
	}
}

func TestWatermark_Overwrite(t *testing.T) {
	for name, repo := range testBackends(t) {
		t.Run(name, func(t *testing.T) {
			defer repo.Close()
			ctx := context.Background()

			gt.NoError(t, repo.PutWatermark(ctx, 100))
			gt.NoError(t, repo.PutWatermark(ctx, 200))

			watermark, ok, err := repo.GetWatermark(ctx)
			gt.NoError(t, err)
			gt.B(t, ok).True()
			gt.V(t, watermark).Equal(200)
		})
	}
}

func TestWatermark_FileUnparseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lastend")
	gt.NoError(t, os.WriteFile(path, []byte("not a number"), 0600))

	repo := file.New(path)
	defer repo.Close()

	_, ok, err := repo.GetWatermark(context.Background())
	gt.NoError(t, err)
	gt.B(t, ok).False()
}

func TestWatermark_FileTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lastend")
	gt.NoError(t, os.WriteFile(path, []byte("1234567890\n"), 0600))

	repo := file.New(path)
	defer repo.Close()

	watermark, ok, err := repo.GetWatermark(context.Background())
	gt.NoError(t, err)
	gt.B(t, ok).True()
	gt.V(t, watermark).Equal(1234567890)
}

func TestWatermark_FileReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lastend")

	repo := file.New(path)
	defer repo.Close()
	ctx := context.Background()

	gt.NoError(t, repo.PutWatermark(ctx, 42))

	// no temporary files left behind
	entries, err := os.ReadDir(dir)
	gt.NoError(t, err)
	gt.A(t, entries).Length(1)
	gt.V(t, entries[0].Name()).Equal("lastend")
}
