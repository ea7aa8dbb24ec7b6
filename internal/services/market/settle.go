package market

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFetches bounds the per-request fan-out to the upstream
// provider. The universe is small; this is headroom, not throttling.
const maxConcurrentFetches = 8

// Drop records a ticker excluded from a batch result and why. Batch
// endpoints drop failures silently from the response; the reasons are kept
// for logging.
type Drop struct {
	Ticker string
	Reason error
}

// settleAll fans out one fetch per ticker, waits for every outcome, and
// splits them into successes (request order preserved) and drops. It never
// fails as a whole: if all fetches fail the success slice is empty.
func settleAll[T any](ctx context.Context, tickers []string, fetch func(ctx context.Context, ticker string) (T, error)) ([]T, []Drop) {
	results := make([]*T, len(tickers))
	errs := make([]error, len(tickers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, ticker := range tickers {
		g.Go(func() error {
			v, err := fetch(ctx, ticker)
			if err != nil {
				errs[i] = err
				return nil
			}
			results[i] = &v
			return nil
		})
	}
	g.Wait()

	successes := make([]T, 0, len(tickers))
	var drops []Drop
	for i, r := range results {
		if r != nil {
			successes = append(successes, *r)
			continue
		}
		drops = append(drops, Drop{Ticker: tickers[i], Reason: errs[i]})
	}

	return successes, drops
}
