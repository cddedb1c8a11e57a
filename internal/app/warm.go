package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"propdash/internal/domain"
)

// Warm walks the backend's property listing and fetches every detail
// record with at most workers concurrent calls, priming the backend's
// cache. A listed ID that 404s is skipped, not fatal; only the listing
// call itself can abort the run. Returns how many records warmed and how
// many were skipped.
func Warm(ctx context.Context, b domain.PropertyBackend, workers int) (warmed, skipped int, err error) {
	if workers < 1 {
		workers = 1
	}

	listing, err := b.ListProperties(ctx)
	if err != nil {
		return 0, 0, err
	}
	log.Info().Int("count", listing.TotalProperties).Msg("listing fetched")

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var nWarm, nSkip int64

	for _, p := range listing.Properties {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return int(nWarm), int(nSkip), err
		}

		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			defer sem.Release(1)

			if _, err := b.GetProperty(ctx, id); err != nil {
				atomic.AddInt64(&nSkip, 1)
				if errors.Is(err, domain.ErrNotFound) {
					log.Warn().Int64("id", id).Msg("listed property missing")
					return
				}
				log.Warn().Int64("id", id).Err(err).Msg("warm failed")
				return
			}
			atomic.AddInt64(&nWarm, 1)
			log.Info().Int64("id", id).Msg("warm ok")
		}(p.ID)
	}

	wg.Wait()
	return int(nWarm), int(nSkip), nil
}
