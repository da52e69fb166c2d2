package services

import (
	"context"
	"errors"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
)

// outcomeKind tags the result of one bounded provider call.
type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeTimeout
	outcomeFailure
)

// outcome is produced by runBounded and consumed by Search. It never
// leaves this package.
type outcome struct {
	kind outcomeKind
	resp *domain.ProviderResponse
	err  error
}

// runBounded executes one provider call under a hard wall-clock deadline.
//
// The call runs in its own goroutine with a context that is cancelled at
// the deadline. Cancellation is advisory: when the deadline elapses,
// control returns to the caller immediately and the in-flight call is
// abandoned - it may keep running until the provider notices the cancelled
// context, so the provider must be safe for concurrent background
// completion. The result channel is buffered so an abandoned call can
// finish without leaking its goroutine.
func (s *SearchService) runBounded(ctx context.Context, req domain.SearchRequest) outcome {
	attemptCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type callResult struct {
		resp *domain.ProviderResponse
		err  error
	}
	done := make(chan callResult, 1)

	go func() {
		resp, err := s.provider.Search(attemptCtx, req.Query, req.MaxResults, req.SiteFilter)
		done <- callResult{resp: resp, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			// A provider that honours the cancellation reports the
			// deadline itself; both races map to the same outcome.
			if errors.Is(r.err, context.DeadlineExceeded) {
				return outcome{kind: outcomeTimeout}
			}
			return outcome{kind: outcomeFailure, err: r.err}
		}
		return outcome{kind: outcomeSuccess, resp: r.resp}

	case <-attemptCtx.Done():
		if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return outcome{kind: outcomeTimeout}
		}
		// Parent context cancelled before the deadline.
		return outcome{kind: outcomeFailure, err: attemptCtx.Err()}
	}
}
