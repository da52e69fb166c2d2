package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Result cap and query bounds for a search request.
const (
	MinResults     = 1
	MaxResults     = 30
	DefaultResults = 10

	// MaxQueryLength is the maximum query length after trimming.
	MaxQueryLength = 4096

	// MaxHostnameLength is the maximum length of a site filter entry,
	// per RFC 1035.
	MaxHostnameLength = 253
)

// hostnamePattern matches a normalised (lowercased) hostname.
var hostnamePattern = regexp.MustCompile(`^[a-z0-9.-]+$`)

// SearchRequest is a validated, normalised search request.
// Construct via NewSearchRequest; a zero value is not valid.
type SearchRequest struct {
	// Query is the trimmed query text, 1 to 4096 characters.
	Query string

	// MaxResults is the result cap, clamped to [MinResults, MaxResults].
	MaxResults int

	// SiteFilter is an optional hostname allow-list: lowercased,
	// deduplicated, order of first occurrence preserved. Nil means no
	// filtering. It is never non-nil and empty.
	SiteFilter []string
}

// NewSearchRequest validates and normalises the raw inputs of a search call.
//
// The query is trimmed and must be 1 to 4096 characters. A nil numResults
// means "use the default"; an explicit value is clamped silently into
// [1, 30], never rejected. A nil siteFilter means "no filtering"; a present
// filter must contain at least one entry and every entry must be a bare
// hostname (no scheme, no path, no whitespace). A single offending entry
// fails the whole request.
func NewSearchRequest(query string, numResults *int, siteFilter []string) (SearchRequest, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return SearchRequest{}, fmt.Errorf("%w: query must be non-empty after trimming whitespace", ErrInvalidInput)
	}
	if utf8.RuneCountInString(q) > MaxQueryLength {
		return SearchRequest{}, fmt.Errorf("%w: query exceeds maximum length of %d characters", ErrInvalidInput, MaxQueryLength)
	}

	max := DefaultResults
	if numResults != nil {
		max = *numResults
		if max < MinResults {
			max = MinResults
		}
		if max > MaxResults {
			max = MaxResults
		}
	}

	filter, err := normaliseSiteFilter(siteFilter)
	if err != nil {
		return SearchRequest{}, err
	}

	return SearchRequest{
		Query:      q,
		MaxResults: max,
		SiteFilter: filter,
	}, nil
}

// normaliseSiteFilter lowercases, validates and deduplicates the hostname
// allow-list. Validation is all-or-nothing: invalid entries are never
// silently dropped.
func normaliseSiteFilter(entries []string) ([]string, error) {
	if entries == nil {
		return nil, nil
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: search_domain_filter must contain at least one hostname", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, raw := range entries {
		host := strings.ToLower(raw)
		if err := validateHostname(host); err != nil {
			return nil, fmt.Errorf("%w: search_domain_filter entry %q: %v", ErrInvalidInput, raw, err)
		}
		if _, dup := seen[host]; dup {
			continue
		}
		seen[host] = struct{}{}
		out = append(out, host)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: search_domain_filter normalised to an empty set", ErrInvalidInput)
	}
	return out, nil
}

// validateHostname checks a lowercased site filter entry.
func validateHostname(host string) error {
	if host == "" {
		return fmt.Errorf("hostname is empty")
	}
	if len(host) > MaxHostnameLength {
		return fmt.Errorf("hostname exceeds %d characters", MaxHostnameLength)
	}
	if strings.Contains(host, "://") {
		return fmt.Errorf("hostname must not contain a scheme")
	}
	if strings.Contains(host, "/") {
		return fmt.Errorf("hostname must not contain a path")
	}
	if strings.ContainsAny(host, " \t") {
		return fmt.Errorf("hostname must not contain whitespace")
	}
	if !hostnamePattern.MatchString(host) {
		return fmt.Errorf("hostname contains characters outside [a-z0-9.-]")
	}
	return nil
}

// SearchResult is a single normalised search hit, immutable once built.
//
// Date carries optional-field semantics: it is serialised only when the
// provider supplied a non-empty value. LastUpdate is always present and
// mirrors Date's value, or is empty. This asymmetry is part of the output
// contract.
type SearchResult struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Date       string `json:"date,omitempty"`
	LastUpdate string `json:"last_update"`
	Snippet    string `json:"snippet"`
}

// ProviderResponse is the raw result collection returned by the search
// provider gateway, before normalisation. Absent fields are empty strings.
type ProviderResponse struct {
	Results []ProviderResult
}

// ProviderResult is one raw provider result item. Any field may be empty.
type ProviderResult struct {
	Title   string
	URL     string
	Date    string
	Snippet string
}
