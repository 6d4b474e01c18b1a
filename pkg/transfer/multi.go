package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// Uploader is one destination's transfer unit as seen by the
// multi-destination driver.
type Uploader interface {
	// Name returns a human-readable destination name.
	Name() string

	// Upload transfers the local root and returns the accumulated stats.
	Upload(ctx context.Context, root string) (*Stats, error)
}

// MultiTransferer runs independent uploads to multiple destinations in
// parallel. Units share no mutable state; each owns its own connection.
type MultiTransferer struct {
	logger        zerolog.Logger
	maxConcurrent int64
}

// NewMultiTransferer creates a multi-destination driver. maxConcurrent caps
// how many destinations transfer at once; zero means all at once.
func NewMultiTransferer(logger zerolog.Logger, maxConcurrent int) *MultiTransferer {
	return &MultiTransferer{
		logger:        logger,
		maxConcurrent: int64(maxConcurrent),
	}
}

// Run uploads root to every destination concurrently and collects every
// outcome. One destination's failure never prevents the others from running
// to completion; a panicking unit is recorded as that destination's error
// instead of crashing the process.
func (m *MultiTransferer) Run(ctx context.Context, uploaders []Uploader, root string) []Result {
	var sem *semaphore.Weighted
	if m.maxConcurrent > 0 {
		sem = semaphore.NewWeighted(m.maxConcurrent)
	}

	resultsChan := make(chan Result, len(uploaders))

	for _, uploader := range uploaders {
		go func(u Uploader) {
			defer func() {
				if r := recover(); r != nil {
					resultsChan <- Result{
						Destination: u.Name(),
						Err:         fmt.Errorf("transfer aborted unexpectedly: %v", r),
					}
				}
			}()

			if sem != nil {
				if err := sem.Acquire(ctx, 1); err != nil {
					resultsChan <- Result{Destination: u.Name(), Err: err}
					return
				}
				defer sem.Release(1)
			}

			start := time.Now()
			m.logger.Debug().
				Str("destination", u.Name()).
				Str("root", root).
				Msg("starting transfer")

			stats, err := u.Upload(ctx, root)
			if err != nil {
				m.logger.Error().
					Err(err).
					Str("destination", u.Name()).
					Dur("duration", time.Since(start)).
					Msg("transfer failed")
				resultsChan <- Result{Destination: u.Name(), Err: err}
				return
			}

			m.logger.Info().
				Str("destination", u.Name()).
				Int64("bytes", stats.Bytes).
				Dur("duration", stats.Duration).
				Msg("transfer succeeded")
			resultsChan <- Result{Destination: u.Name(), Stats: stats}
		}(uploader)
	}

	// The join point: wait for every unit, successful or not.
	results := make([]Result, 0, len(uploaders))
	for range uploaders {
		results = append(results, <-resultsChan)
	}

	return results
}

// Partition splits results into successes and failures.
func Partition(results []Result) (succeeded, failed []Result) {
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		} else {
			succeeded = append(succeeded, r)
		}
	}
	return succeeded, failed
}
