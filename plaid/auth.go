package plaid

import "context"

// AccountNumbers groups the identifying numbers usable for electronic
// transfers to and from an Item's accounts, by numbering scheme.
type AccountNumbers struct {
	ACH           []ACHNumber  `json:"ach"`
	EFT           []EFTNumber  `json:"eft"`
	International []IBANNumber `json:"international"`
	BACS          []BACSNumber `json:"bacs"`
}

// ACHNumber identifies a US account.
type ACHNumber struct {
	AccountID string `json:"account_id"`
	// The ACH account number.
	Account string `json:"account"`
	// The ACH routing number.
	Routing string `json:"routing"`
	// The wire transfer routing number, if available.
	WireRouting *string `json:"wire_routing"`
}

// EFTNumber identifies a Canadian account.
type EFTNumber struct {
	AccountID string `json:"account_id"`
	Account   string `json:"account"`
	// The EFT institution number.
	Institution string `json:"institution"`
	// The EFT branch number.
	Branch string `json:"branch"`
}

// IBANNumber identifies an international account.
type IBANNumber struct {
	AccountID string `json:"account_id"`
	IBAN      string `json:"iban"`
	// The Bank Identifier Code.
	BIC string `json:"bic"`
}

// BACSNumber identifies a UK account.
type BACSNumber struct {
	AccountID string `json:"account_id"`
	Account   string `json:"account"`
	SortCode  string `json:"sort_code"`
}

// GetAuthOptions filters a GetAuth call. All fields are optional.
type GetAuthOptions struct {
	// AccountIDs restricts the response to the listed accounts.
	AccountIDs []string `json:"account_ids,omitempty"`
}

type getAuthRequest struct {
	ClientID    string          `json:"client_id"`
	Secret      string          `json:"secret"`
	AccessToken string          `json:"access_token"`
	Options     *GetAuthOptions `json:"options,omitempty"`
}

// GetAuthResponse is the response to a GetAuth call.
type GetAuthResponse struct {
	RequestID string    `json:"request_id"`
	Accounts  []Account `json:"accounts"`
	// Identifying numbers for making electronic transfers.
	Numbers AccountNumbers `json:"numbers"`
	Item    Item           `json:"item"`
}

// GetAuth retrieves the bank account and bank identification numbers
// (routing numbers, for US accounts) for an Item's checking and savings
// accounts, along with balances where available.
func (c *Client) GetAuth(ctx context.Context, accessToken string, options *GetAuthOptions) (*GetAuthResponse, error) {
	return sendRequest[GetAuthResponse](ctx, c, "auth/get", &getAuthRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Options:     options,
	})
}
