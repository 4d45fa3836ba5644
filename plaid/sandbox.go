package plaid

import "context"

type createSandboxPublicTokenRequest struct {
	ClientID        string   `json:"client_id"`
	Secret          string   `json:"secret"`
	InstitutionID   string   `json:"institution_id"`
	InitialProducts []string `json:"initial_products"`
}

// CreateSandboxPublicTokenResponse is the response to a
// CreateSandboxPublicToken call.
type CreateSandboxPublicTokenResponse struct {
	RequestID string `json:"request_id"`
	// A public token exchangeable for an access token via
	// ExchangePublicToken.
	PublicToken string `json:"public_token"`
}

// CreateSandboxPublicToken creates a valid public_token for an arbitrary
// institution with test credentials. The token maps to a new Sandbox
// Item; exchange it with ExchangePublicToken to perform API actions
// against it. initialProducts may not be empty.
func (c *Client) CreateSandboxPublicToken(ctx context.Context, institutionID string, initialProducts []string) (*CreateSandboxPublicTokenResponse, error) {
	return sendRequest[CreateSandboxPublicTokenResponse](ctx, c, "sandbox/public_token/create", &createSandboxPublicTokenRequest{
		ClientID:        c.clientID,
		Secret:          c.secret,
		InstitutionID:   institutionID,
		InitialProducts: initialProducts,
	})
}

type resetSandboxItemRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

// ResetSandboxItemResponse is the response to a ResetSandboxItem call.
type ResetSandboxItemResponse struct {
	RequestID  string `json:"request_id"`
	ResetLogin bool   `json:"reset_login"`
}

// ResetSandboxItem forces a Sandbox Item into an ITEM_LOGIN_REQUIRED
// state, simulating an Item whose login is no longer valid. Link's
// update mode can then restore the Item. An ITEM_LOGIN_REQUIRED webhook
// fires if one is associated with the Item.
func (c *Client) ResetSandboxItem(ctx context.Context, accessToken string) (*ResetSandboxItemResponse, error) {
	return sendRequest[ResetSandboxItemResponse](ctx, c, "sandbox/item/reset_login", &resetSandboxItemRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	})
}

type setSandboxVerificationStatusRequest struct {
	ClientID           string             `json:"client_id"`
	Secret             string             `json:"secret"`
	AccessToken        string             `json:"access_token"`
	AccountID          string             `json:"account_id"`
	VerificationStatus VerificationStatus `json:"verification_status"`
}

// SetSandboxVerificationStatusResponse is the response to a
// SetSandboxVerificationStatus call.
type SetSandboxVerificationStatusResponse struct {
	RequestID string `json:"request_id"`
}

// SetSandboxVerificationStatus changes the verification status of a
// Sandbox account to simulate the automated micro-deposit flow.
// Supported statuses are VerificationStatusAutomaticallyVerified and
// VerificationStatusExpired.
func (c *Client) SetSandboxVerificationStatus(ctx context.Context, accessToken, accountID string, status VerificationStatus) (*SetSandboxVerificationStatusResponse, error) {
	return sendRequest[SetSandboxVerificationStatusResponse](ctx, c, "sandbox/item/set_verification_status", &setSandboxVerificationStatusRequest{
		ClientID:           c.clientID,
		Secret:             c.secret,
		AccessToken:        accessToken,
		AccountID:          accountID,
		VerificationStatus: status,
	})
}

type fireWebhookRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
	WebhookCode string `json:"webhook_code"`
}

// FireWebhookResponse is the response to a FireWebhook call.
type FireWebhookResponse struct {
	RequestID    string `json:"request_id"`
	WebhookFired bool   `json:"webhook_fired"`
}

// FireWebhook triggers a Transactions DEFAULT_UPDATE webhook for a
// Sandbox Item, for testing webhook handling code. Items without the
// Transactions product return a SANDBOX_PRODUCT_NOT_ENABLED error.
func (c *Client) FireWebhook(ctx context.Context, accessToken, webhookCode string) (*FireWebhookResponse, error) {
	return sendRequest[FireWebhookResponse](ctx, c, "sandbox/item/fire_webhook", &fireWebhookRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		WebhookCode: webhookCode,
	})
}
