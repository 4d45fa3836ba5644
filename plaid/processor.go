package plaid

import "context"

type createProcessorTokenRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
	Processor   string `json:"processor"`
}

// CreateProcessorTokenResponse is the response to a CreateProcessorToken
// call.
type CreateProcessorTokenResponse struct {
	RequestID string `json:"request_id"`
	// The token the Plaid partner uses to make API requests.
	ProcessorToken string `json:"processor_token"`
}

// CreateProcessorToken creates a token suitable for sending to one of
// Plaid's partners to enable integrations, e.g. "dwolla" or
// "modern_treasury". Stripe partnerships use bank account tokens
// instead. accountID is the value from Link's onSuccess callback.
func (c *Client) CreateProcessorToken(ctx context.Context, accessToken, accountID, processor string) (*CreateProcessorTokenResponse, error) {
	return sendRequest[CreateProcessorTokenResponse](ctx, c, "processor/token/create", &createProcessorTokenRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		AccountID:   accountID,
		Processor:   processor,
	})
}
