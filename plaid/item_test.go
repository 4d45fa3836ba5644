package plaid

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExchangePublicToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item/public_token/exchange", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "test-client-id", body["client_id"])
		assert.Equal(t, "test-secret", body["secret"])
		assert.Equal(t, "public-sandbox-abc", body["public_token"])

		json.NewEncoder(w).Encode(map[string]string{
			"request_id":   "req-exchange",
			"access_token": "access-sandbox-xyz",
			"item_id":      "item-1",
		})
	})

	resp, err := client.ExchangePublicToken(t.Context(), "public-sandbox-abc")
	require.NoError(t, err)
	assert.Equal(t, "access-sandbox-xyz", resp.AccessToken)
	assert.Equal(t, "item-1", resp.ItemID)
}

func TestGetItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/item/get", r.URL.Path)

			json.NewEncoder(w).Encode(map[string]interface{}{
				"request_id": "req-item",
				"item": map[string]interface{}{
					"item_id":            "item-1",
					"institution_id":     "ins_3",
					"webhook":            "https://www.example.com/webhook",
					"error":              nil,
					"available_products": []string{"balance", "identity"},
					"billed_products":    []string{"transactions"},
					"update_type":        "background",
				},
				"status": map[string]interface{}{
					"transactions": map[string]interface{}{
						"last_successful_update": "2023-09-24T11:01:01Z",
					},
				},
			})
		})

		resp, err := client.GetItem(t.Context(), "access-sandbox-token")
		require.NoError(t, err)
		assert.Equal(t, "item-1", resp.Item.ItemID)
		assert.Equal(t, UpdateTypeBackground, resp.Item.UpdateType)
		require.NotNil(t, resp.Status)
		require.NotNil(t, resp.Status.Transactions)
		assert.NotNil(t, resp.Status.Transactions.LastSuccessfulUpdate)
	})

	t.Run("item error surfaces as APIError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"error_type":    "ITEM_ERROR",
				"error_code":    "ITEM_LOGIN_REQUIRED",
				"error_message": "the login details of this item have changed",
				"request_id":    "req-err",
			})
		})

		_, err := client.GetItem(t.Context(), "access-sandbox-token")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.IsItemError())
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})
}

func TestRemoveItem(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item/remove", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"request_id": "req-remove"})
	})

	resp, err := client.RemoveItem(t.Context(), "access-sandbox-token")
	require.NoError(t, err)
	assert.Equal(t, "req-remove", resp.RequestID)
}

func TestUpdateItemWebhook(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item/webhook/update", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "https://new.example.com/webhook", body["webhook"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"request_id": "req-webhook",
			"item": map[string]interface{}{
				"item_id": "item-1",
				"webhook": "https://new.example.com/webhook",
			},
		})
	})

	resp, err := client.UpdateItemWebhook(t.Context(), "access-sandbox-token", "https://new.example.com/webhook")
	require.NoError(t, err)
	require.NotNil(t, resp.Item.Webhook)
	assert.Equal(t, "https://new.example.com/webhook", *resp.Item.Webhook)
}

func TestInvalidateAccessToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item/access_token/invalidate", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"request_id":       "req-rotate",
			"new_access_token": "access-sandbox-rotated",
		})
	})

	resp, err := client.InvalidateAccessToken(t.Context(), "access-sandbox-token")
	require.NoError(t, err)
	assert.Equal(t, "access-sandbox-rotated", resp.NewAccessToken)
}
