package interfaces

import "context"

// Repository defines the interface for watermark persistence. The watermark
// is the epoch-second cutoff before which activity has already been reported.
//
// GetWatermark returns (0, false, nil) when no watermark has been stored yet;
// the caller initializes it from the configured lookback window. A stored but
// unparseable value is treated the same way, never as a fatal error.
//
// PutWatermark must be atomic enough that a failed write can never leave an
// unparseable value behind.
type Repository interface {
	GetWatermark(ctx context.Context) (int64, bool, error)
	PutWatermark(ctx context.Context, watermark int64) error
	Close() error
}
