package driven

import (
	"context"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
)

// SearchProvider is the gateway to the external search provider.
//
// The gateway is an opaque capability: given a query, a result cap and an
// optional hostname allow-list, it returns the provider's raw result
// collection or an error. Cancellation of ctx is advisory - a provider call
// that has been abandoned on timeout may still complete in the background,
// so implementations must be safe for concurrent use and must not touch
// shared mutable state from an abandoned call.
//
// Implementations wrap connectivity-class failures (connection refused or
// reset, HTTP 429 and 5xx) with domain.ErrProviderUnavailable, and credential
// rejections with domain.ErrAuthInvalid.
type SearchProvider interface {
	// Search performs one provider call. A nil or empty siteFilter means
	// no domain filtering.
	Search(ctx context.Context, query string, maxResults int, siteFilter []string) (*domain.ProviderResponse, error)
}
