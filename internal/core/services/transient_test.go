package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"structured provider unavailable", fmt.Errorf("%w: 503", domain.ErrProviderUnavailable), true},
		{"wrapped provider unavailable", fmt.Errorf("calling api: %w", domain.ErrProviderUnavailable), true},
		{"net timeout error", &net.DNSError{Err: "lookup", IsTimeout: true}, true},
		{"keyword timeout", errors.New("request Timeout"), true},
		{"keyword timed out", errors.New("operation timed out"), true},
		{"keyword connection", errors.New("Connection refused"), true},
		{"keyword transport", errors.New("transport closed"), true},
		{"keyword temporarily unavailable", errors.New("service temporarily unavailable"), true},
		{"keyword try again", errors.New("resource busy, try again later"), true},
		{"plain application error", errors.New("malformed response"), false},
		{"invalid input", domain.ErrInvalidInput, false},
		{"auth required", domain.ErrAuthRequired, false},
		{"context cancelled", context.Canceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTransient(tt.err))
		})
	}
}
