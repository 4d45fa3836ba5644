package plaid

import (
	"encoding/json"
	"errors"
)

// errMissingRequestID marks a body that parsed as JSON but lacks the
// request_id every Plaid success payload carries.
var errMissingRequestID = errors.New("required field request_id is absent")

// decodeResponse classifies a raw response body as a typed success payload
// or an API error. Payload shape is authoritative and the HTTP status is
// advisory only: Plaid has been observed to return error-shaped bodies with
// 2xx statuses and vice versa, so an error-shaped body always classifies as
// *APIError and a success-shaped body always decodes, whatever the status.
// A body matching neither shape yields *DecodeError.
//
// Unknown JSON keys are ignored so that upstream schema additions never
// break existing decodes. The reverse does not hold: encoding/json leaves
// absent fields at their zero values, so a body that is valid JSON but not
// a Plaid payload would otherwise decode into an all-zero success struct.
// Every success payload carries a request_id; a body without one is a
// *DecodeError, not an empty success.
func decodeResponse[T any](statusCode int, raw []byte) (*T, error) {
	var probe ErrorResponse
	if err := json.Unmarshal(raw, &probe); err == nil && probe.ErrorType != "" && probe.ErrorCode != "" {
		return nil, &APIError{ErrorResponse: probe, StatusCode: statusCode}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &DecodeError{StatusCode: statusCode, Err: err}
	}
	if probe.RequestID == "" {
		return nil, &DecodeError{StatusCode: statusCode, Err: errMissingRequestID}
	}
	return &out, nil
}
