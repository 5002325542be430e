package errors

import (
	"fmt"
	"strings"
)

// ErrNotConfigured is returned when the Storefront API credentials are
// missing. Detected before any network call so the caller can render a
// setup prompt instead of a generic failure.
type ErrNotConfigured struct {
	Missing []string
}

func (e *ErrNotConfigured) Error() string {
	if len(e.Missing) == 0 {
		return "shopify storefront is not configured"
	}
	return fmt.Sprintf("shopify storefront is not configured: missing %s", strings.Join(e.Missing, ", "))
}

// ErrUpstream is returned when the Storefront API answers with a non-2xx
// status or cannot be reached at all (StatusCode 0).
type ErrUpstream struct {
	StatusCode int
	Body       string
}

func (e *ErrUpstream) Error() string {
	if e.StatusCode == 0 {
		return "storefront API unreachable"
	}
	return fmt.Sprintf("storefront API rejected request: status %d", e.StatusCode)
}

// ErrQueryRejected is returned when the Storefront API answers 2xx but the
// GraphQL error list is non-empty. Data alongside errors is never trusted.
type ErrQueryRejected struct {
	Messages []string
}

func (e *ErrQueryRejected) Error() string {
	return fmt.Sprintf("graphQL errors: %s", strings.Join(e.Messages, "; "))
}

// ErrNotFound is returned when a single-entity lookup resolves to null
// upstream. A normal outcome, distinct from the failure classifications
// above, so callers render a 404 rather than an error banner.
type ErrNotFound struct {
	Resource string
	Handle   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Handle)
}
