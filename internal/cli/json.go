package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/Boomerang-Apps/wave-sub012/internal/connections"
	"github.com/Boomerang-Apps/wave-sub012/internal/errors"
)

// Machine mode flag - when true, errors are emitted as JSON envelopes
var machineMode bool

// MachineMode returns true if machine-readable output is enabled
func MachineMode() bool {
	return machineMode
}

// JSONEnvelope wraps command output in a consistent structure for machine parsing.
// All --json output should use this envelope.
type JSONEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *JSONError  `json:"error,omitempty"`
}

// JSONError provides structured error information for machine parsing.
type JSONError struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Details    interface{} `json:"details,omitempty"`
}

// Error codes for machine-readable output.
// These map to specific actions automation can take.
const (
	ErrCodeConfigNotFound = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
	ErrCodeProjectPath    = "PROJECT_PATH"
	ErrCodeAPITimeout     = "API_TIMEOUT"
	ErrCodeAPIRefused     = "API_REFUSED"
	ErrCodeAPIUnreachable = "API_UNREACHABLE"
	ErrCodeAPIDNS         = "API_DNS"
	ErrCodeAPITLS         = "API_TLS"
	ErrCodeAPIAuth        = "API_AUTH"
	ErrCodeAPIError       = "API_ERROR"
	ErrCodeUnknown        = "UNKNOWN"
)

// WriteJSONSuccess writes a successful response with data to the writer.
func WriteJSONSuccess(w io.Writer, data interface{}) error {
	env := JSONEnvelope{
		Success: true,
		Data:    data,
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONError writes an error response to the writer.
func WriteJSONError(w io.Writer, code, message, suggestion string, details interface{}) error {
	env := JSONEnvelope{
		Success: false,
		Error: &JSONError{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
			Details:    details,
		},
	}
	return writeJSONEnvelope(w, env)
}

// WriteJSONFromError converts a Go error to a JSON error response.
func WriteJSONFromError(w io.Writer, err error) error {
	jsonErr := ErrorToJSON(err)
	env := JSONEnvelope{
		Success: false,
		Error:   jsonErr,
	}
	return writeJSONEnvelope(w, env)
}

// writeJSONEnvelope writes the envelope with consistent formatting.
func writeJSONEnvelope(w io.Writer, env JSONEnvelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ErrorToJSON converts a Go error to a JSONError with appropriate code mapping.
func ErrorToJSON(err error) *JSONError {
	if err == nil {
		return nil
	}

	// Check if it's our structured error type
	var waveErr *errors.Error
	if stderrors.As(err, &waveErr) {
		return &JSONError{
			Code:       mapErrorCode(waveErr.Code, waveErr.Message),
			Message:    waveErr.Message,
			Suggestion: waveErr.Suggestion,
		}
	}

	// Transport failures carry a categorized reason
	var reqErr *connections.RequestError
	if stderrors.As(err, &reqErr) {
		return requestErrorToJSON(reqErr)
	}

	// The portal answered, but with an error
	var apiErr *connections.APIError
	if stderrors.As(err, &apiErr) {
		return apiErrorToJSON(apiErr)
	}

	// Generic error
	return &JSONError{
		Code:    ErrCodeUnknown,
		Message: err.Error(),
	}
}

// mapErrorCode maps internal error codes to machine-readable codes.
func mapErrorCode(internalCode, message string) string {
	switch internalCode {
	case errors.ErrConfig:
		// Distinguish between not found and invalid
		msgLower := strings.ToLower(message)
		if strings.Contains(msgLower, "not found") || strings.Contains(msgLower, "no config") {
			return ErrCodeConfigNotFound
		}
		return ErrCodeConfigInvalid
	case errors.ErrProject:
		return ErrCodeProjectPath
	case errors.ErrAPI:
		return ErrCodeAPIError
	}

	return ErrCodeUnknown
}

// requestErrorToJSON converts a transport failure to JSON with a
// reason-specific error code.
func requestErrorToJSON(reqErr *connections.RequestError) *JSONError {
	var code string
	var suggestion string

	switch reqErr.Reason {
	case connections.FailTimeout:
		code = ErrCodeAPITimeout
		suggestion = "Check that the portal is running and not stuck starting up"
	case connections.FailRefused:
		code = ErrCodeAPIRefused
		suggestion = "Start the portal and retry"
	case connections.FailDNS:
		code = ErrCodeAPIDNS
		suggestion = "Check portal.base_url for typos"
	case connections.FailTLS:
		code = ErrCodeAPITLS
		suggestion = "Local portals usually want an http:// base URL"
	default:
		code = ErrCodeAPIUnreachable
		suggestion = "Check your network connection and portal.base_url"
	}

	return &JSONError{
		Code:       code,
		Message:    reqErr.Error(),
		Suggestion: suggestion,
		Details: map[string]interface{}{
			"reason":   reqErr.Reason.String(),
			"endpoint": reqErr.Endpoint,
		},
	}
}

// apiErrorToJSON converts a portal error response to JSON.
func apiErrorToJSON(apiErr *connections.APIError) *JSONError {
	code := ErrCodeAPIError
	suggestion := "The portal answered but the request failed. Check the portal logs."
	if apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden {
		code = ErrCodeAPIAuth
		suggestion = "Set portal.token in your wave.yaml to a valid portal token"
	}

	return &JSONError{
		Code:       code,
		Message:    apiErr.Error(),
		Suggestion: suggestion,
		Details: map[string]interface{}{
			"status_code": apiErr.StatusCode,
		},
	}
}
