package plaid

import (
	"errors"
	"fmt"
)

// Errors returned when constructing a Client.
var (
	// ErrMissingClientID indicates no client ID was supplied.
	ErrMissingClientID = errors.New("plaid client ID is required")
	// ErrMissingSecret indicates no secret was supplied.
	ErrMissingSecret = errors.New("plaid secret is required")
	// ErrInvalidEnvironment indicates an unrecognized environment name.
	ErrInvalidEnvironment = errors.New("invalid plaid environment")
)

// ErrorResponse is the structured error payload returned by the Plaid API.
type ErrorResponse struct {
	// A broad categorization of the error, safe for programmatic use.
	// Possible values include INVALID_REQUEST, INVALID_INPUT,
	// INSTITUTION_ERROR, RATE_LIMIT_EXCEEDED, API_ERROR, ITEM_ERROR,
	// OAUTH_ERROR and others.
	ErrorType string `json:"error_type"`
	// The particular error code, safe for programmatic use.
	ErrorCode string `json:"error_code"`
	// A developer-friendly description. Not stable across releases.
	ErrorMessage string `json:"error_message"`
	// A user-friendly description, nil when the error is not related to
	// user action.
	DisplayMessage *string `json:"display_message"`
	// A unique identifier for the request, for troubleshooting. Omitted in
	// errors delivered via webhooks.
	RequestID string `json:"request_id"`
}

// APIError is returned when the Plaid API answers with a well-formed error
// payload, regardless of the HTTP status it arrived with.
type APIError struct {
	ErrorResponse

	// StatusCode is the HTTP status the error payload arrived with.
	StatusCode int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("plaid API error: request_id=%s status=%d type=%s code=%s message=%s",
		e.RequestID, e.StatusCode, e.ErrorType, e.ErrorCode, e.ErrorMessage)
}

// IsRateLimited checks if the error indicates request throttling.
func (e *APIError) IsRateLimited() bool {
	return e.ErrorType == "RATE_LIMIT_EXCEEDED"
}

// IsItemError checks if the error relates to the Item itself, such as
// ITEM_LOGIN_REQUIRED, rather than to the request.
func (e *APIError) IsItemError() bool {
	return e.ErrorType == "ITEM_ERROR"
}

// DecodeError is returned when a response body cannot be parsed as either
// the expected success payload or a Plaid error payload.
type DecodeError struct {
	// StatusCode is the HTTP status of the undecodable response.
	StatusCode int
	// Err is the first decode failure encountered.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("plaid response decode failed (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying decode failure.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError is returned when the HTTP exchange itself fails:
// connection refused, timeout, DNS failure, or an interrupted body read.
type TransportError struct {
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("plaid request failed: %v", e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}
