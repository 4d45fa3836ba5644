// Package plaid provides a typed client for the Plaid API.
//
// Plaid is a financial-data aggregator: an application links a user's bank
// account (an Item), receives an access token, and uses it to pull
// accounts, balances, transactions, identity, liabilities and investment
// data from ~40 JSON-over-POST endpoints.
//
// # Usage
//
// Create a Client with explicit credentials, or from the PLAID_CLIENT_ID,
// PLAID_SECRET and PLAID_ENVIRONMENT environment variables:
//
//	client, err := plaid.NewClient(clientID, secret, plaid.Sandbox)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.GetTransactions(ctx, accessToken, start, end, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, tx := range resp.Transactions {
//		fmt.Println(tx.Date, tx.Name, tx.Money())
//	}
//
// Every endpoint method takes a context.Context and returns a typed
// response struct. Credentials are injected into each request body by the
// client; callers never pass them per call. The Client is safe to share
// across goroutines.
//
// # Optional parameters
//
// Endpoints with optional parameters take a per-endpoint options struct,
// passed as a nil-able pointer. Unset option fields are omitted from the
// request body entirely, never sent as JSON null; Plaid distinguishes the
// two for some endpoints.
//
// # Error handling
//
// All failures surface as one of three error types, matchable with
// errors.As:
//
//   - *plaid.APIError: Plaid returned a structured error payload
//     (error_type, error_code, display_message, request_id)
//   - *plaid.DecodeError: the response body did not match the expected
//     shape
//   - *plaid.TransportError: the HTTP exchange itself failed
//
// Classification is by payload shape, not HTTP status: an error-shaped
// body returned with a 200 still surfaces as *APIError.
//
// # Forward compatibility
//
// Unknown response fields are ignored, and enumerated string fields
// (account types, loan statuses, payment channels, ...) decode any
// unrecognized upstream value verbatim instead of failing; the typed
// constants cover the documented sets and Known() reports whether a value
// is one of them.
package plaid
