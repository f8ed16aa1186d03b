package memory

import (
	"context"
	"sync"

	"github.com/ldez/stackoverflow-slack-bot/pkg/domain/interfaces"
)

// Memory keeps the watermark in process memory. Used in tests and for
// development; the watermark does not survive a restart.
type Memory struct {
	mu        sync.RWMutex
	watermark int64
	stored    bool
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{}
}

func (m *Memory) GetWatermark(ctx context.Context) (int64, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.watermark, m.stored, nil
}

func (m *Memory) PutWatermark(ctx context.Context, watermark int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.watermark = watermark
	m.stored = true
	return nil
}

func (m *Memory) Close() error {
	return nil
}
