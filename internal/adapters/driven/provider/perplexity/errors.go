package perplexity

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/IngLP/PerplexitySearchMCP/internal/core/domain"
)

// APIError represents a non-2xx response from the Perplexity API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("perplexity: API error %d: %s", e.StatusCode, e.Message)
}

// newAPIError builds the typed error for a non-2xx response and attaches
// the matching domain category: 401/403 are credential rejections, while
// 408, 429 and 5xx are transient.
func newAPIError(status int, body []byte) error {
	apiErr := &APIError{
		StatusCode: status,
		Message:    errorMessage(body),
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrAuthInvalid, apiErr)
	case status == http.StatusRequestTimeout ||
		status == http.StatusTooManyRequests ||
		status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, apiErr)
	default:
		return apiErr
	}
}

// errorMessage extracts the API's error detail, falling back to the raw body.
func errorMessage(body []byte) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return "no response body"
	}
	return msg
}

// wrapTransport marks a transport-level failure with the structured
// transient category while keeping the underlying cause in the chain.
// Context errors stay visible to the executor's deadline check.
func wrapTransport(op string, err error) error {
	return fmt.Errorf("perplexity: %s: %w: %w", op, domain.ErrProviderUnavailable, err)
}

// IsUnauthorized checks if the error indicates a rejected credential.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting by the API.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}
