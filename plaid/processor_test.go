package plaid

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProcessorToken(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/processor/token/create", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "access-token", body["access_token"])
		assert.Equal(t, "acc-1", body["account_id"])
		assert.Equal(t, "dwolla", body["processor"])

		json.NewEncoder(w).Encode(map[string]string{
			"request_id":      "req-processor",
			"processor_token": "processor-sandbox-xyz",
		})
	})

	resp, err := client.CreateProcessorToken(t.Context(), "access-token", "acc-1", "dwolla")
	require.NoError(t, err)
	assert.Equal(t, "processor-sandbox-xyz", resp.ProcessorToken)
}

func TestGetWebhookVerificationKey(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/webhook_verification_key/get", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "kid-123", body["key_id"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"request_id": "req-jwk",
			"key": map[string]interface{}{
				"alg":        "ES256",
				"crv":        "P-256",
				"kid":        "kid-123",
				"kty":        "EC",
				"use":        "sig",
				"x":          "x-coord",
				"y":          "y-coord",
				"created_at": 1609459200,
				"expired_at": nil,
			},
		})
	})

	resp, err := client.GetWebhookVerificationKey(t.Context(), "kid-123")
	require.NoError(t, err)
	assert.Equal(t, "ES256", resp.Key.Alg)
	assert.Equal(t, "kid-123", resp.Key.Kid)
	assert.Nil(t, resp.Key.ExpiredAt)
}

func TestGetCategories(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories/get", r.URL.Path)

		// This endpoint is public: the body carries no credentials.
		body := decodeBody(t, r)
		assert.NotContains(t, body, "client_id")
		assert.NotContains(t, body, "secret")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"request_id": "req-categories",
			"categories": []map[string]interface{}{
				{
					"category_id": "10000000",
					"group":       "special",
					"hierarchy":   []string{"Bank Fees"},
				},
				{
					"category_id": "13005032",
					"group":       "place",
					"hierarchy":   []string{"Food and Drink", "Restaurants", "Coffee Shop"},
				},
			},
		})
	})

	resp, err := client.GetCategories(t.Context())
	require.NoError(t, err)
	require.Len(t, resp.Categories, 2)
	assert.Equal(t, []string{"Food and Drink", "Restaurants", "Coffee Shop"}, resp.Categories[1].Hierarchy)
}

func TestDepositSwitch(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/deposit_switch/create", r.URL.Path)

			body := decodeBody(t, r)
			assert.Equal(t, "acc-target", body["target_account_id"])
			assert.Equal(t, "access-target", body["target_access_token"])

			json.NewEncoder(w).Encode(map[string]string{
				"request_id":        "req-ds-create",
				"deposit_switch_id": "ds-1",
			})
		})

		resp, err := client.CreateDepositSwitch(t.Context(), "acc-target", "access-target")
		require.NoError(t, err)
		assert.Equal(t, "ds-1", resp.DepositSwitchID)
	})

	t.Run("get", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/deposit_switch/get", r.URL.Path)

			body := decodeBody(t, r)
			assert.Equal(t, "ds-1", body["deposit_switch_id"])

			json.NewEncoder(w).Encode(map[string]interface{}{
				"request_id":        "req-ds-get",
				"deposit_switch":    "ds-1",
				"target_account_id": "acc-target",
				"state":             "completed",
				"percent_allocated": 100,
				"date_created":      "2021-01-04",
				"date_completed":    "2021-01-05",
			})
		})

		resp, err := client.GetDepositSwitch(t.Context(), "ds-1")
		require.NoError(t, err)
		assert.Equal(t, DepositSwitchStateCompleted, resp.State)
		assert.True(t, resp.State.Known())
		require.NotNil(t, resp.PercentAllocated)
		assert.Equal(t, 100, *resp.PercentAllocated)
		assert.Equal(t, "2021-01-04", resp.DateCreated.String())
		require.NotNil(t, resp.DateCompleted)
	})
}
