package authcode

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration errors
var (
	ErrMissingClientID     = errors.New("authcode: client id is required")
	ErrMissingClientSecret = errors.New("authcode: client secret is required")
	ErrMissingVerifier     = errors.New("authcode: verify function is required")
)

// Request errors, reported as fail info.
var (
	ErrMalformedBody = errors.New("authcode: malformed request body")
	ErrMissingCode   = errors.New("authcode: missing authorization code")
)

// Profile errors, reported as errors.
var (
	ErrFetchProfile     = errors.New("failed to fetch user profile")
	ErrParseProfile     = errors.New("failed to parse user profile")
	ErrMissingProfileID = errors.New("user profile has no id")
)

// ProviderError describes an error the provider reported back through the
// callback query (error, error_description, error_uri, error_reason, error_code).
type ProviderError struct {
	Code        string
	Description string
	URI         string
	Reason      string
	ErrorCode   string
}

func (e *ProviderError) Error() string {
	var b strings.Builder
	b.WriteString("authcode: provider error: ")
	b.WriteString(e.Code)
	if e.Description != "" {
		b.WriteString(": ")
		b.WriteString(e.Description)
	}
	if e.Reason != "" {
		b.WriteString(" (")
		b.WriteString(e.Reason)
		b.WriteString(")")
	}
	return b.String()
}

// StatusError is returned by the default Fetcher when the provider answers
// with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("authcode: unexpected status %d: %s", e.StatusCode, e.Body)
}
