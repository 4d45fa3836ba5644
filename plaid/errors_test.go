package plaid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &APIError{
			ErrorResponse: ErrorResponse{
				ErrorType:    "INVALID_INPUT",
				ErrorCode:    "INVALID_ACCESS_TOKEN",
				ErrorMessage: "could not find matching access token",
				RequestID:    "req-1",
			},
			StatusCode: 400,
		}
		assert.Contains(t, err.Error(), "INVALID_ACCESS_TOKEN")
		assert.Contains(t, err.Error(), "req-1")
		assert.Contains(t, err.Error(), "status=400")
	})

	t.Run("IsRateLimited", func(t *testing.T) {
		err := &APIError{ErrorResponse: ErrorResponse{ErrorType: "RATE_LIMIT_EXCEEDED"}}
		assert.True(t, err.IsRateLimited())

		err.ErrorType = "API_ERROR"
		assert.False(t, err.IsRateLimited())
	})

	t.Run("IsItemError", func(t *testing.T) {
		err := &APIError{ErrorResponse: ErrorResponse{ErrorType: "ITEM_ERROR"}}
		assert.True(t, err.IsItemError())

		err.ErrorType = "INSTITUTION_ERROR"
		assert.False(t, err.IsItemError())
	})
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &DecodeError{StatusCode: 502, Err: cause}

	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), cause.Error())
	require.ErrorIs(t, err, cause)
}

func TestTransportError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Err: cause}

	assert.Contains(t, err.Error(), cause.Error())
	require.ErrorIs(t, err, cause)
}
