// Package scan runs a per-region scan function across many regions with
// per-region fault isolation. All three resource scanners share this loop.
package scan

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// RegionScanFunc fetches and filters one region's resources.
type RegionScanFunc[T any] func(ctx context.Context, region string) ([]T, error)

// RegionFailure records a region whose scan failed recoverably.
type RegionFailure struct {
	Region string `json:"region"`
	Reason string `json:"reason"`
}

// Result is the outcome of a multi-region scan. Records are grouped by
// region in the order the regions were requested.
type Result[T any] struct {
	Records  []T
	Regions  []string // regions attempted, in scan order
	Failures []RegionFailure
}

// FailureFor returns the recorded failure for region, if any.
func (r *Result[T]) FailureFor(region string) (RegionFailure, bool) {
	for _, f := range r.Failures {
		if f.Region == region {
			return f, true
		}
	}
	return RegionFailure{}, false
}

// Options controls how regions are iterated.
type Options struct {
	// MaxParallel bounds concurrent region scans. Values below 2 mean
	// sequential execution.
	MaxParallel int
	// RegionTimeout, when positive, demotes a hung region call to a
	// recorded per-region failure instead of blocking the whole scan.
	RegionTimeout time.Duration
	// Logger receives per-region diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}
