package driving

import (
	"context"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
)

// SearchService provides web search capabilities to external actors.
type SearchService interface {
	// Search validates the raw inputs, runs the provider call under a
	// deadline with a single retry on transient connectivity failures,
	// and returns the normalised results. A nil numResults uses the
	// default cap; a nil siteFilter disables domain filtering.
	Search(ctx context.Context, query string, numResults *int, siteFilter []string) ([]domain.SearchResult, error)
}
