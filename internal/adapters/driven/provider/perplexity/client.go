// Package perplexity implements the search provider gateway using the
// Perplexity Search API.
package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/time/rate"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
	"github.com/IngLP/PerplexitySearchMCP/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.SearchProvider = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.perplexity.ai"

	// EnvAPIKey names the environment variable holding the credential.
	EnvAPIKey = "PERPLEXITY_API_KEY"

	// Conservative sustained rate for the search endpoint.
	DefaultRequestsPerSecond = 10.0
	DefaultBurstSize         = 5
)

// Config holds configuration for the Perplexity client.
type Config struct {
	// APIKey is the Perplexity API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.perplexity.ai).
	BaseURL string

	// RequestsPerSecond caps the sustained request rate. Zero or negative
	// uses the default; set NoRateLimit to disable limiting entirely.
	RequestsPerSecond float64

	// BurstSize is the token bucket burst (default: 5).
	BurstSize int

	// NoRateLimit disables client-side rate limiting.
	NoRateLimit bool

	// HTTPClient overrides the default transport. Mostly for tests.
	HTTPClient *http.Client
}

// Client calls the Perplexity Search API.
//
// A Client is immutable after construction and safe for concurrent use,
// including completion of calls that were abandoned on timeout: per-attempt
// deadlines arrive via the request context, never as client state.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// NewClient creates a new Perplexity client.
// A missing or empty API key is a configuration failure, not a provider one.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: %s is required but missing or empty", domain.ErrAuthRequired, EnvAPIKey)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		// No client-level timeout: the per-attempt deadline comes from the
		// request context set by the bounded executor.
		cfg.HTTPClient = &http.Client{}
	}

	var limiter *rate.Limiter
	if !cfg.NoRateLimit {
		rps := cfg.RequestsPerSecond
		if rps <= 0 {
			rps = DefaultRequestsPerSecond
		}
		burst := cfg.BurstSize
		if burst <= 0 {
			burst = DefaultBurstSize
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}

	return &Client{
		client:  cfg.HTTPClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		limiter: limiter,
	}, nil
}

// NewClientFromEnv creates a client with the credential read from the
// process environment at construction time.
func NewClientFromEnv(cfg Config) (*Client, error) {
	cfg.APIKey = os.Getenv(EnvAPIKey)
	return NewClient(cfg)
}

// searchRequest is the POST /search request format.
type searchRequest struct {
	Query              string   `json:"query"`
	MaxResults         int      `json:"max_results"`
	SearchDomainFilter []string `json:"search_domain_filter,omitempty"`
}

// searchResponse is the POST /search response format.
type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Date    string `json:"date"`
		Snippet string `json:"snippet"`
	} `json:"results"`
}

// Search performs one search call against the API.
func (c *Client) Search(
	ctx context.Context, query string, maxResults int, siteFilter []string,
) (*domain.ProviderResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("perplexity: rate limit wait: %w", err)
		}
	}

	reqBody := searchRequest{
		Query:      query,
		MaxResults: maxResults,
	}
	if len(siteFilter) > 0 {
		reqBody.SearchDomainFilter = siteFilter
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("perplexity: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/search",
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("perplexity: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, wrapTransport("send request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapTransport("read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, body)
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("perplexity: decode response: %w", err)
	}

	out := &domain.ProviderResponse{
		Results: make([]domain.ProviderResult, 0, len(searchResp.Results)),
	}
	for _, r := range searchResp.Results {
		out.Results = append(out.Results, domain.ProviderResult{
			Title:   r.Title,
			URL:     r.URL,
			Date:    r.Date,
			Snippet: r.Snippet,
		})
	}
	return out, nil
}
