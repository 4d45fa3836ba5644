package plaid

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResponse(t *testing.T) {
	t.Run("success payload", func(t *testing.T) {
		raw := []byte(`{"request_id":"req-1","public_token":"public-sandbox-abc"}`)

		resp, err := decodeResponse[CreateSandboxPublicTokenResponse](http.StatusOK, raw)
		require.NoError(t, err)
		assert.Equal(t, "req-1", resp.RequestID)
		assert.Equal(t, "public-sandbox-abc", resp.PublicToken)
	})

	t.Run("error payload with error status", func(t *testing.T) {
		raw := []byte(`{
			"error_type": "INVALID_INPUT",
			"error_code": "INVALID_ACCESS_TOKEN",
			"error_message": "could not find matching access token",
			"display_message": null,
			"request_id": "req-2"
		}`)

		_, err := decodeResponse[GetAccountsResponse](http.StatusBadRequest, raw)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "INVALID_INPUT", apiErr.ErrorType)
		assert.Equal(t, "INVALID_ACCESS_TOKEN", apiErr.ErrorCode)
		assert.Equal(t, "req-2", apiErr.RequestID)
		assert.Nil(t, apiErr.DisplayMessage)
	})

	// A well-formed error body wins over a 200 status.
	t.Run("error payload with OK status", func(t *testing.T) {
		raw := []byte(`{
			"error_type": "ITEM_ERROR",
			"error_code": "ITEM_LOGIN_REQUIRED",
			"error_message": "the login details of this item have changed",
			"request_id": "req-3"
		}`)

		_, err := decodeResponse[GetAccountsResponse](http.StatusOK, raw)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusOK, apiErr.StatusCode)
		assert.Equal(t, "ITEM_LOGIN_REQUIRED", apiErr.ErrorCode)
		assert.True(t, apiErr.IsItemError())
	})

	t.Run("malformed body", func(t *testing.T) {
		raw := []byte(`<html>502 Bad Gateway</html>`)

		_, err := decodeResponse[GetAccountsResponse](http.StatusBadGateway, raw)
		require.Error(t, err)

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, http.StatusBadGateway, decodeErr.StatusCode)
		assert.Error(t, decodeErr.Unwrap())
	})

	// A partial error shape (missing error_code) is not treated as an API
	// error; it decodes as the success type instead.
	t.Run("incomplete error shape falls through", func(t *testing.T) {
		raw := []byte(`{"error_type":"INVALID_REQUEST","request_id":"req-4"}`)

		resp, err := decodeResponse[GetCategoriesResponse](http.StatusOK, raw)
		require.NoError(t, err)
		assert.Equal(t, "req-4", resp.RequestID)
	})

	// A body that is valid JSON but not a Plaid payload must never decode
	// into an all-zero success struct. request_id is the marker: every
	// success payload carries one.
	t.Run("empty object rejected", func(t *testing.T) {
		_, err := decodeResponse[ExchangePublicTokenResponse](http.StatusOK, []byte(`{}`))
		require.Error(t, err)

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, http.StatusOK, decodeErr.StatusCode)
		assert.ErrorIs(t, err, errMissingRequestID)
	})

	t.Run("success shape without request_id rejected", func(t *testing.T) {
		raw := []byte(`{"access_token":"access-sandbox-abc","item_id":"item-1"}`)

		_, err := decodeResponse[ExchangePublicTokenResponse](http.StatusOK, raw)
		require.Error(t, err)

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.ErrorIs(t, err, errMissingRequestID)
	})

	// Fields the decoder does not know about never fail the decode.
	t.Run("unknown fields tolerated", func(t *testing.T) {
		raw := []byte(`{"request_id":"req-5","categories":[],"brand_new_field":{"a":1}}`)

		resp, err := decodeResponse[GetCategoriesResponse](http.StatusOK, raw)
		require.NoError(t, err)
		assert.Equal(t, "req-5", resp.RequestID)
	})
}
