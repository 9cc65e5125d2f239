package amazon

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors returned by the catalog clients. Wrap-aware: check with
// errors.Is.
var (
	// ErrInvalidArgument is returned when the caller supplied a malformed
	// input (unknown country code, bad ASIN, pagination out of range) or
	// the server rejected a parameter value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAuthentication is returned when the OAuth2 token refresh fails.
	ErrAuthentication = errors.New("authentication failed")

	// ErrAssociateValidation is returned when the partner tag is not
	// registered for the selected marketplace.
	ErrAssociateValidation = errors.New("associate validation failed")

	// ErrItemsNotFound is returned on a 404, or on a 200 whose result
	// envelope is missing or empty.
	ErrItemsNotFound = errors.New("items not found")

	// ErrTooManyRequests is returned on a 429. Callers should increase
	// the throttle spacing.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrMalformedRequest is returned when request assembly failed for an
	// internal reason, such as a missing partner tag.
	ErrMalformedRequest = errors.New("malformed request")
)

// bodyExcerptLen bounds how much of an error response body is carried in
// an APIError message.
const bodyExcerptLen = 200

// APIError represents an unclassified non-200 response from the backend.
type APIError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ClassifyResponse maps a non-200 response to the error taxonomy. The
// body is inspected for the server's sentinel error codes before falling
// back to a generic APIError.
func ClassifyResponse(status int, body []byte) error {
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: server returned 404", ErrItemsNotFound)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: consider increasing the throttle spacing", ErrTooManyRequests)
	}

	text := string(body)
	switch {
	case strings.Contains(text, "InvalidParameterValue"):
		return fmt.Errorf("%w: %s", ErrInvalidArgument, excerpt(text))
	case strings.Contains(text, "InvalidPartnerTag"):
		return fmt.Errorf("%w: %s", ErrInvalidArgument, excerpt(text))
	case strings.Contains(text, "InvalidAssociate"):
		return fmt.Errorf("%w: partner tag is not registered for this marketplace", ErrAssociateValidation)
	}

	return &APIError{StatusCode: status, Body: excerpt(text)}
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > bodyExcerptLen {
		return s[:bodyExcerptLen]
	}
	return s
}
