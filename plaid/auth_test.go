package plaid

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAuth(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/get", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "access-sandbox-token", body["access_token"])
		assert.NotContains(t, body, "options")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"request_id": "req-auth",
			"accounts":   []interface{}{},
			"numbers": map[string]interface{}{
				"ach": []map[string]interface{}{
					{
						"account_id":   "acc-1",
						"account":      "9900009606",
						"routing":      "011401533",
						"wire_routing": "021000021",
					},
				},
				"eft": []map[string]interface{}{
					{
						"account_id":  "acc-2",
						"account":     "111122223333",
						"institution": "021",
						"branch":      "01140",
					},
				},
				"international": []interface{}{},
				"bacs":          []interface{}{},
			},
			"item": map[string]interface{}{"item_id": "item-1"},
		})
	})

	resp, err := client.GetAuth(t.Context(), "access-sandbox-token", nil)
	require.NoError(t, err)

	require.Len(t, resp.Numbers.ACH, 1)
	ach := resp.Numbers.ACH[0]
	assert.Equal(t, "9900009606", ach.Account)
	assert.Equal(t, "011401533", ach.Routing)
	require.NotNil(t, ach.WireRouting)
	assert.Equal(t, "021000021", *ach.WireRouting)

	require.Len(t, resp.Numbers.EFT, 1)
	assert.Equal(t, "021", resp.Numbers.EFT[0].Institution)
	assert.Empty(t, resp.Numbers.International)
	assert.Empty(t, resp.Numbers.BACS)
}

func TestGetIdentity(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/identity/get", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"request_id": "req-identity",
			"accounts": []map[string]interface{}{
				{
					"account_id": "acc-1",
					"balances":   map[string]interface{}{"current": 110.75},
					"name":       "Plaid Checking",
					"type":       "depository",
					"owners": []map[string]interface{}{
						{
							"names": []string{"Alberta Bobbeth Charleson"},
							"phone_numbers": []map[string]interface{}{
								{"data": "1112223333", "primary": false, "type": "home"},
							},
							"emails": []map[string]interface{}{
								{"data": "accountholder0@example.com", "primary": true, "type": "primary"},
							},
							"addresses": []map[string]interface{}{
								{
									"data": map[string]interface{}{
										"city":        "Malakoff",
										"region":      "NY",
										"street":      "2992 Cameron Road",
										"postal_code": "14236",
										"country":     "US",
									},
									"primary": true,
								},
							},
						},
					},
				},
			},
			"item": map[string]interface{}{"item_id": "item-1"},
		})
	})

	resp, err := client.GetIdentity(t.Context(), "access-sandbox-token", nil)
	require.NoError(t, err)

	require.Len(t, resp.Accounts, 1)
	account := resp.Accounts[0]
	assert.Equal(t, "Plaid Checking", account.Name)
	require.Len(t, account.Owners, 1)

	owner := account.Owners[0]
	assert.Equal(t, []string{"Alberta Bobbeth Charleson"}, owner.Names)
	require.Len(t, owner.Emails, 1)
	assert.True(t, owner.Emails[0].Primary)
	require.Len(t, owner.Addresses, 1)
	assert.Equal(t, "Malakoff", owner.Addresses[0].Data.City)
}
