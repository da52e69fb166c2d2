package mcp

import (
	"context"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error

	gotQuery      string
	gotNumResults *int
	gotFilter     []string
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	numResults *int,
	siteFilter []string,
) ([]domain.SearchResult, error) {
	m.gotQuery = query
	m.gotNumResults = numResults
	m.gotFilter = siteFilter
	return m.results, m.err
}
