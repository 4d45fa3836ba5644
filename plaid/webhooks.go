package plaid

import "context"

// WebhookVerificationKey is a JSON Web Key (JWK) usable with JWT
// libraries to verify the Plaid-Verification header on incoming
// webhooks.
type WebhookVerificationKey struct {
	// The cryptographic algorithm family used with the key.
	Alg string `json:"alg"`
	// The cryptographic curve used with the key.
	Crv string `json:"crv"`
	// The key ID, used to match a specific key during rollover.
	Kid string `json:"kid"`
	// The key type, such as RSA or EC.
	Kty string `json:"kty"`
	// The intended use of the public key.
	Use string `json:"use"`
	// The x coordinate of the elliptic curve point.
	X string `json:"x"`
	// The y coordinate of the elliptic curve point.
	Y         string `json:"y"`
	CreatedAt int64  `json:"created_at"`
	ExpiredAt *int64 `json:"expired_at"`
}

type getWebhookVerificationKeyRequest struct {
	ClientID string `json:"client_id"`
	Secret   string `json:"secret"`
	KeyID    string `json:"key_id"`
}

// GetWebhookVerificationKeyResponse is the response to a
// GetWebhookVerificationKey call.
type GetWebhookVerificationKeyResponse struct {
	RequestID string                 `json:"request_id"`
	Key       WebhookVerificationKey `json:"key"`
}

// GetWebhookVerificationKey returns the JWK for verifying the JWT that
// Plaid sends in the Plaid-Verification header of outgoing webhooks.
// keyID is the kid from the JWT header.
func (c *Client) GetWebhookVerificationKey(ctx context.Context, keyID string) (*GetWebhookVerificationKeyResponse, error) {
	return sendRequest[GetWebhookVerificationKeyResponse](ctx, c, "webhook_verification_key/get", &getWebhookVerificationKeyRequest{
		ClientID: c.clientID,
		Secret:   c.secret,
		KeyID:    keyID,
	})
}
