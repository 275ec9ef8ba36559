package connections

import (
	"fmt"
	"strings"
)

// RequestError represents a failed portal request with a categorized reason.
// These are transport-level failures; the portal never saw or never answered
// the request.
type RequestError struct {
	Endpoint string
	Reason   FailReason
	Cause    error
}

// FailReason categorizes why a portal request failed.
type FailReason int

const (
	FailUnknown FailReason = iota
	FailTimeout
	FailRefused
	FailUnreachable
	FailDNS
	FailTLS
)

// String returns a human-readable description of the failure reason.
func (r FailReason) String() string {
	switch r {
	case FailTimeout:
		return "request timed out"
	case FailRefused:
		return "connection refused"
	case FailUnreachable:
		return "portal unreachable"
	case FailDNS:
		return "host not found"
	case FailTLS:
		return "TLS handshake failed"
	default:
		return "unknown error"
	}
}

func (e *RequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s request failed: %s (%v)", e.Endpoint, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s request failed: %s", e.Endpoint, e.Reason)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}

// APIError is a response the portal did answer, but with a non-success
// status or an error payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("portal returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("portal returned status %d: %s", e.StatusCode, e.Message)
}

// categorizeRequestError converts a generic transport error into a
// RequestError with a categorized failure reason.
func categorizeRequestError(endpoint string, err error) *RequestError {
	if err == nil {
		return nil
	}

	reqErr := &RequestError{
		Endpoint: endpoint,
		Reason:   FailUnknown,
		Cause:    err,
	}

	errStr := strings.ToLower(err.Error())

	// Check for timeout
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") ||
		strings.Contains(errStr, "i/o timeout") {
		reqErr.Reason = FailTimeout
		return reqErr
	}

	// Check for connection refused
	if strings.Contains(errStr, "connection refused") {
		reqErr.Reason = FailRefused
		return reqErr
	}

	// Check for unreachable host
	if strings.Contains(errStr, "no route to host") ||
		strings.Contains(errStr, "network is unreachable") ||
		strings.Contains(errStr, "host is down") {
		reqErr.Reason = FailUnreachable
		return reqErr
	}

	// Check for DNS failures
	if strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "server misbehaving") {
		reqErr.Reason = FailDNS
		return reqErr
	}

	// Check for TLS problems
	if strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "certificate") {
		reqErr.Reason = FailTLS
		return reqErr
	}

	return reqErr
}
