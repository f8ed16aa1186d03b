package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for run validation
var (
	ErrNoDelivery = goerr.New("no delivery channel configured and dry-run is disabled")
	ErrNoTags     = goerr.New("tag filter is required")
)
