package services

import (
	"errors"
	"net"
	"strings"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
)

// transientKeywords are the fallback textual markers of connectivity-class
// failures, matched case-insensitively when no structured category applies.
var transientKeywords = []string{
	"timeout",
	"timed out",
	"connection",
	"transport",
	"temporarily unavailable",
	"try again",
}

// isTransient reports whether err is a connectivity-class failure worth a
// single immediate retry.
//
// The structured category is checked first: the provider adapter wraps
// transport-level and 429/5xx failures with domain.ErrProviderUnavailable.
// The keyword heuristic only runs when no structured category matched.
// The predicate is pure and never panics.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrProviderUnavailable) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, kw := range transientKeywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
