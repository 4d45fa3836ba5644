package plaid

import (
	"context"
	"time"
)

// UpdateType indicates whether an Item requires user interaction to be
// updated.
type UpdateType string

const (
	UpdateTypeBackground          UpdateType = "background"
	UpdateTypeUserPresentRequired UpdateType = "user_present_required"
)

// Known reports whether the update type is a documented value.
func (t UpdateType) Known() bool {
	return t == UpdateTypeBackground || t == UpdateTypeUserPresentRequired
}

// Item represents a linked financial-institution connection.
type Item struct {
	// The Plaid Item ID.
	ItemID string `json:"item_id"`
	// The institution the Item is linked to. Nil for Items created via
	// Same Day Micro-deposits.
	InstitutionID *string `json:"institution_id"`
	// The URL registered to receive webhooks for the Item.
	Webhook *string `json:"webhook"`
	// The error state of the Item, if any. Shares the shape of API error
	// payloads.
	Error *ErrorResponse `json:"error"`
	// Products available for the Item that have not yet been accessed.
	AvailableProducts []string `json:"available_products"`
	// Products that have been billed for the Item.
	BilledProducts []string `json:"billed_products"`
	// When the end user's consent expires, if it does.
	ConsentExpirationTime *time.Time `json:"consent_expiration_time"`
	UpdateType            UpdateType `json:"update_type"`
}

// ItemStatus reports per-product update history for an Item.
type ItemStatus struct {
	// Last successful and failed investments updates.
	Investments *ProductStatus `json:"investments"`
	// Last successful and failed transactions updates.
	Transactions *ProductStatus `json:"transactions"`
	// The last webhook fired for the Item.
	LastWebhook *WebhookStatus `json:"last_webhook"`
}

// ProductStatus holds the timestamps of the last update attempts for one
// product.
type ProductStatus struct {
	LastSuccessfulUpdate *time.Time `json:"last_successful_update"`
	LastFailedUpdate     *time.Time `json:"last_failed_update"`
}

// WebhookStatus describes the last webhook fired for an Item.
type WebhookStatus struct {
	SentAt   *time.Time `json:"sent_at"`
	CodeSent *string    `json:"code_sent"`
}

type getItemRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

// GetItemResponse is the response to a GetItem call.
type GetItemResponse struct {
	RequestID string `json:"request_id"`
	Item      Item   `json:"item"`
	// Update status per product, when available.
	Status *ItemStatus `json:"status"`
	// Echo of the access token the data was requested for, when returned.
	AccessToken *string `json:"access_token"`
}

// GetItem returns information about the status of an Item.
func (c *Client) GetItem(ctx context.Context, accessToken string) (*GetItemResponse, error) {
	return sendRequest[GetItemResponse](ctx, c, "item/get", &getItemRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	})
}

type removeItemRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

// RemoveItemResponse is the response to a RemoveItem call.
type RemoveItemResponse struct {
	RequestID string `json:"request_id"`
}

// RemoveItem removes an Item. The associated access token is invalidated
// and can no longer be used.
func (c *Client) RemoveItem(ctx context.Context, accessToken string) (*RemoveItemResponse, error) {
	return sendRequest[RemoveItemResponse](ctx, c, "item/remove", &removeItemRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	})
}

type updateItemWebhookRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
	Webhook     string `json:"webhook"`
}

// UpdateItemWebhookResponse is the response to an UpdateItemWebhook call.
type UpdateItemWebhookResponse struct {
	RequestID string `json:"request_id"`
	Item      Item   `json:"item"`
}

// UpdateItemWebhook updates the webhook URL associated with an Item. This
// triggers a WEBHOOK_UPDATE_ACKNOWLEDGED webhook to the new URL.
func (c *Client) UpdateItemWebhook(ctx context.Context, accessToken, webhook string) (*UpdateItemWebhookResponse, error) {
	return sendRequest[UpdateItemWebhookResponse](ctx, c, "item/webhook/update", &updateItemWebhookRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Webhook:     webhook,
	})
}

type invalidateAccessTokenRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

// InvalidateAccessTokenResponse is the response to an
// InvalidateAccessToken call.
type InvalidateAccessTokenResponse struct {
	RequestID      string `json:"request_id"`
	NewAccessToken string `json:"new_access_token"`
}

// InvalidateAccessToken rotates the access token for an Item: the returned
// token replaces the supplied one, which stops working immediately.
func (c *Client) InvalidateAccessToken(ctx context.Context, accessToken string) (*InvalidateAccessTokenResponse, error) {
	return sendRequest[InvalidateAccessTokenResponse](ctx, c, "item/access_token/invalidate", &invalidateAccessTokenRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	})
}

type createPublicTokenRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

// CreatePublicTokenResponse is the response to a CreatePublicToken call.
type CreatePublicTokenResponse struct {
	RequestID   string `json:"request_id"`
	PublicToken string `json:"public_token"`
}

// CreatePublicToken creates a public token for an existing Item.
//
// Deprecated upstream since July 2020: use CreateLinkToken with an access
// token to run Link in update mode instead.
func (c *Client) CreatePublicToken(ctx context.Context, accessToken string) (*CreatePublicTokenResponse, error) {
	return sendRequest[CreatePublicTokenResponse](ctx, c, "item/public_token/create", &createPublicTokenRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	})
}

type exchangePublicTokenRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	PublicToken string `json:"public_token"`
}

// ExchangePublicTokenResponse is the response to an ExchangePublicToken
// call.
type ExchangePublicTokenResponse struct {
	RequestID   string `json:"request_id"`
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}

// ExchangePublicToken exchanges a Link public token for an API access
// token. The public token is ephemeral and expires after 30 minutes; the
// returned item ID should be stored alongside the access token, as it
// identifies the Item in webhooks.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (*ExchangePublicTokenResponse, error) {
	return sendRequest[ExchangePublicTokenResponse](ctx, c, "item/public_token/exchange", &exchangePublicTokenRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		PublicToken: publicToken,
	})
}
