package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
)

// SearchInput is the input schema for the perplexity_search tool.
type SearchInput struct {
	Query              string   `json:"query" jsonschema:"the search query text"`
	NumResults         *int     `json:"num_results,omitempty" jsonschema:"maximum number of results to return (default 10, clamped to 1-30)"`
	SearchDomainFilter []string `json:"search_domain_filter,omitempty" jsonschema:"optional list of hostnames to restrict results to"`
}

// SearchOutput is the output schema for the perplexity_search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
}

// SearchResultOutput represents a single search result. The date key is
// present only when the provider supplied one; last_update is always
// present and mirrors date.
type SearchResultOutput struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Date       string `json:"date,omitempty"`
	LastUpdate string `json:"last_update"`
	Snippet    string `json:"snippet"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "perplexity_search",
		Description: "Run a Perplexity web search and return structured results",
	}, s.handleSearch)
}

// handleSearch handles the perplexity_search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	requestID := uuid.New().String()
	start := time.Now()

	log.Info().
		Str("request_id", requestID).
		Int("query_length", len(input.Query)).
		Msg("perplexity_search start")

	results, err := s.ports.Search.Search(ctx, input.Query, input.NumResults, input.SearchDomainFilter)
	durationMS := time.Since(start).Milliseconds()

	if err != nil {
		log.Error().
			Str("request_id", requestID).
			Int64("duration_ms", durationMS).
			Str("provider_status", statusFor(err)).
			Err(err).
			Msg("perplexity_search failed")
		return nil, SearchOutput{}, err
	}

	log.Info().
		Str("request_id", requestID).
		Int64("duration_ms", durationMS).
		Int("result_count", len(results)).
		Str("provider_status", "ok").
		Msg("perplexity_search done")

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			Title:      results[i].Title,
			URL:        results[i].URL,
			Date:       results[i].Date,
			LastUpdate: results[i].LastUpdate,
			Snippet:    results[i].Snippet,
		}
	}

	return nil, output, nil
}

// statusFor maps the error taxonomy to the logged provider status.
func statusFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrAuthRequired), errors.Is(err, domain.ErrAuthInvalid):
		return "auth_error"
	case errors.Is(err, domain.ErrTimeout):
		return "timeout"
	default:
		return "provider_error"
	}
}
