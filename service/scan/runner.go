package scan

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Run invokes fn once per requested region and concatenates the results in
// request order. A recoverable failure in one region is recorded in the
// Result and never aborts the remaining regions; a fatal error (see IsFatal)
// aborts the whole scan and discards partial results.
//
// Regions may run concurrently up to opts.MaxParallel, but the returned
// record order is deterministic: per-region slices are collected by index
// and joined only after every region has finished.
func Run[T any](ctx context.Context, regionList []string, opts Options, fn RegionScanFunc[T]) (Result[T], error) {
	regions := Dedupe(regionList)

	perRegion := make([][]T, len(regions))
	failed := make([]*RegionFailure, len(regions))

	g, groupCtx := errgroup.WithContext(ctx)
	limit := opts.MaxParallel
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, region := range regions {
		g.Go(func() error {
			callCtx := groupCtx
			if opts.RegionTimeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(groupCtx, opts.RegionTimeout)
				defer cancel()
			}

			records, err := fn(callCtx, region)
			if err != nil {
				if IsFatal(err) {
					return err
				}
				if opts.Logger != nil {
					opts.Logger.Warn().Str("region", region).Err(err).Msg("region scan failed")
				}
				failed[i] = &RegionFailure{Region: region, Reason: FailureReason(err)}
				return nil
			}

			if opts.Logger != nil {
				opts.Logger.Debug().Str("region", region).Int("orphans", len(records)).Msg("region scan complete")
			}
			perRegion[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result[T]{}, err
	}

	result := Result[T]{Regions: regions}
	for i := range regions {
		if failed[i] != nil {
			result.Failures = append(result.Failures, *failed[i])
			continue
		}
		result.Records = append(result.Records, perRegion[i]...)
	}
	return result, nil
}

// Dedupe trims whitespace, drops empty entries, and removes duplicates
// while preserving first-occurrence order.
func Dedupe(input []string) []string {
	out := make([]string, 0, len(input))
	for _, r := range input {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}
