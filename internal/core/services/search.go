package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
	"github.com/IngLP/PerplexitySearchMCP/internal/core/ports/driven"
	"github.com/IngLP/PerplexitySearchMCP/internal/core/ports/driving"
	"github.com/IngLP/PerplexitySearchMCP/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// DefaultTimeout is the per-attempt deadline for one provider call.
// Retries get a fresh full deadline, not the remaining budget.
const DefaultTimeout = 5 * time.Second

// SearchService runs the validated, bounded, single-retry search pipeline.
// It is stateless across calls and safe for concurrent use.
type SearchService struct {
	provider driven.SearchProvider
	timeout  time.Duration
}

// NewSearchService creates a new search service. A non-positive timeout
// falls back to DefaultTimeout.
func NewSearchService(provider driven.SearchProvider, timeout time.Duration) *SearchService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &SearchService{
		provider: provider,
		timeout:  timeout,
	}
}

// Search validates the raw inputs, runs the provider call under a deadline
// and returns the normalised results.
//
// Retry policy: exactly one immediate retry, and only on transient
// connectivity failures. Timeouts are terminal - a timed-out attempt already
// consumed its full time budget. Validation and credential failures are
// rejected before the transient classifier runs, so their message text can
// never cause a retry.
func (s *SearchService) Search(
	ctx context.Context, query string, numResults *int, siteFilter []string,
) ([]domain.SearchResult, error) {
	req, err := domain.NewSearchRequest(query, numResults, siteFilter)
	if err != nil {
		return nil, err
	}

	logger.Debug("Query: %q, max results: %d, site filter: %v", req.Query, req.MaxResults, req.SiteFilter)

	out := s.runBounded(ctx, req)
	switch out.kind {
	case outcomeSuccess:
		return normaliseResults(out.resp), nil
	case outcomeTimeout:
		return nil, s.timeoutError()
	}

	err = out.err
	if errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrAuthRequired) ||
		errors.Is(err, domain.ErrAuthInvalid) {
		return nil, err
	}
	if !isTransient(err) {
		return nil, fmt.Errorf("perplexity search failed: %w", err)
	}

	logger.Debug("Transient failure, retrying once: %v", err)

	out = s.runBounded(ctx, req)
	switch out.kind {
	case outcomeSuccess:
		return normaliseResults(out.resp), nil
	case outcomeTimeout:
		return nil, s.timeoutError()
	default:
		return nil, fmt.Errorf("perplexity search failed after retry: %w", out.err)
	}
}

// timeoutError surfaces the configured deadline so a timeout can be
// diagnosed from the message alone.
func (s *SearchService) timeoutError() error {
	return fmt.Errorf("%w after %dms", domain.ErrTimeout, s.timeout.Milliseconds())
}

// normaliseResults maps the provider's raw response into the fixed output
// record shape. An absent or empty result collection yields an empty list,
// not an error.
//
// LastUpdate always carries Date's value (or stays empty), while Date itself
// is kept only when the provider supplied a non-empty value. The asymmetry
// is part of the output contract.
func normaliseResults(resp *domain.ProviderResponse) []domain.SearchResult {
	if resp == nil || len(resp.Results) == 0 {
		return []domain.SearchResult{}
	}

	out := make([]domain.SearchResult, 0, len(resp.Results))
	for _, item := range resp.Results {
		rec := domain.SearchResult{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: item.Snippet,
		}
		if item.Date != "" {
			rec.Date = item.Date
			rec.LastUpdate = item.Date
		}
		out = append(out, rec)
	}
	return out
}
