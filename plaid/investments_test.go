package plaid

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHoldings(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/investments/holdings/get", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "access-sandbox-token", body["access_token"])
		assert.NotContains(t, body, "options")

		json.NewEncoder(w).Encode(map[string]interface{}{
			"request_id": "req-holdings",
			"accounts":   []interface{}{},
			"holdings": []map[string]interface{}{
				{
					"account_id":              "acc-1",
					"security_id":             "sec-1",
					"institution_price":       10.42,
					"institution_price_as_of": "2023-09-22",
					"institution_value":       104.2,
					"cost_basis":              100,
					"quantity":                10,
					"iso_currency_code":       "USD",
				},
			},
			"securities": []map[string]interface{}{
				{
					"security_id":        "sec-1",
					"isin":               "US0378331005",
					"cusip":              "037833100",
					"name":               "Apple Inc.",
					"ticker_symbol":      "AAPL",
					"is_cash_equivalent": false,
					"type":               "equity",
					"close_price":        10.42,
					"close_price_as_of":  "2023-09-22",
					"iso_currency_code":  "USD",
				},
			},
			"item": map[string]interface{}{"item_id": "item-1"},
		})
	})

	resp, err := client.GetHoldings(t.Context(), "access-sandbox-token", nil)
	require.NoError(t, err)

	require.Len(t, resp.Holdings, 1)
	holding := resp.Holdings[0]
	assert.True(t, holding.Quantity.Equal(decimal.NewFromInt(10)))

	money := holding.Money()
	assert.True(t, money.Value.Equal(decimal.NewFromFloat(104.2)))
	assert.Equal(t, "USD", money.CurrencyCode)

	require.Len(t, resp.Securities, 1)
	security := resp.Securities[0]
	require.NotNil(t, security.TickerSymbol)
	assert.Equal(t, "AAPL", *security.TickerSymbol)

	closePrice, ok := security.ClosePriceAmount()
	require.True(t, ok)
	assert.True(t, closePrice.Value.Equal(decimal.NewFromFloat(10.42)))
}

func TestGetInvestmentTransactions(t *testing.T) {
	start := NewDate(2023, time.September, 1)
	end := NewDate(2023, time.September, 30)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/investments/transactions/get", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "2023-09-01", body["start_date"])
		assert.Equal(t, "2023-09-30", body["end_date"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"request_id": "req-inv-tx",
			"accounts":   []interface{}{},
			"securities": []interface{}{},
			"investment_transactions": []map[string]interface{}{
				{
					"investment_transaction_id": "inv-tx-1",
					"account_id":                "acc-1",
					"security_id":               "sec-1",
					"date":                      "2023-09-15",
					"name":                      "BUY AAPL",
					"quantity":                  5,
					"amount":                    52.1,
					"price":                     10.42,
					"fees":                      0.05,
					"type":                      "buy",
					"subtype":                   "buy",
					"iso_currency_code":         "USD",
				},
			},
			"total_investment_transactions": 1,
			"item":                          map[string]interface{}{"item_id": "item-1"},
		})
	})

	resp, err := client.GetInvestmentTransactions(t.Context(), "access-sandbox-token", start, end, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalInvestmentTransactions)

	require.Len(t, resp.InvestmentTransactions, 1)
	tx := resp.InvestmentTransactions[0]
	assert.Equal(t, InvestmentTransactionTypeBuy, tx.Type)
	assert.True(t, tx.Type.Known())
	assert.Equal(t, "2023-09-15", tx.Date.String())
	assert.True(t, tx.Money().Value.Equal(decimal.NewFromFloat(52.1)))
}
