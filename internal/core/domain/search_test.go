package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNewSearchRequest_Query(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		req, err := NewSearchRequest("  golang concurrency  ", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "golang concurrency", req.Query)
	})

	t.Run("empty query fails", func(t *testing.T) {
		_, err := NewSearchRequest("", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("whitespace-only query fails", func(t *testing.T) {
		_, err := NewSearchRequest("   \t\n  ", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("query at maximum length is accepted", func(t *testing.T) {
		req, err := NewSearchRequest(strings.Repeat("a", MaxQueryLength), nil, nil)
		require.NoError(t, err)
		assert.Len(t, req.Query, MaxQueryLength)
	})

	t.Run("query over maximum length fails", func(t *testing.T) {
		_, err := NewSearchRequest(strings.Repeat("a", MaxQueryLength+1), nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestNewSearchRequest_MaxResults(t *testing.T) {
	tests := []struct {
		name string
		in   *int
		want int
	}{
		{"absent defaults to 10", nil, DefaultResults},
		{"zero clamps to minimum", intPtr(0), MinResults},
		{"negative clamps to minimum", intPtr(-5), MinResults},
		{"99 clamps to maximum", intPtr(99), MaxResults},
		{"in-range value kept", intPtr(7), 7},
		{"boundary values kept", intPtr(30), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewSearchRequest("test", tt.in, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.MaxResults)
		})
	}
}

func TestNewSearchRequest_SiteFilter(t *testing.T) {
	t.Run("nil filter means no filtering", func(t *testing.T) {
		req, err := NewSearchRequest("test", nil, nil)
		require.NoError(t, err)
		assert.Nil(t, req.SiteFilter)
	})

	t.Run("lowercases, deduplicates, preserves order", func(t *testing.T) {
		req, err := NewSearchRequest("test", nil, []string{"Example.com", "example.com", "sub.domain.com"})
		require.NoError(t, err)
		assert.Equal(t, []string{"example.com", "sub.domain.com"}, req.SiteFilter)
	})

	t.Run("explicitly empty filter fails", func(t *testing.T) {
		_, err := NewSearchRequest("test", nil, []string{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("entry with path fails the whole request", func(t *testing.T) {
		_, err := NewSearchRequest("test", nil, []string{"good.com", "bad.com/path"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "bad.com/path")
	})

	t.Run("entry with scheme fails", func(t *testing.T) {
		_, err := NewSearchRequest("test", nil, []string{"https://example.com"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("entry with whitespace fails", func(t *testing.T) {
		_, err := NewSearchRequest("test", nil, []string{"exam ple.com"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("entry with invalid characters fails", func(t *testing.T) {
		_, err := NewSearchRequest("test", nil, []string{"exämple.com"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty entry fails", func(t *testing.T) {
		_, err := NewSearchRequest("test", nil, []string{""})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("entry at length limit is accepted", func(t *testing.T) {
		host := strings.Repeat("a", MaxHostnameLength)
		req, err := NewSearchRequest("test", nil, []string{host})
		require.NoError(t, err)
		assert.Equal(t, []string{host}, req.SiteFilter)
	})

	t.Run("entry over length limit fails", func(t *testing.T) {
		host := strings.Repeat("a", MaxHostnameLength+1)
		_, err := NewSearchRequest("test", nil, []string{host})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
