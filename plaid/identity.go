package plaid

import "context"

// Identity is the account-holder information an institution has on file.
// Only names are guaranteed; the other slices are empty when the
// institution provides nothing.
type Identity struct {
	Names        []string      `json:"names"`
	PhoneNumbers []PhoneNumber `json:"phone_numbers"`
	Emails       []Email       `json:"emails"`
	Addresses    []Address     `json:"addresses"`
}

// Address is one address on file for an account.
type Address struct {
	Data AddressData `json:"data"`
	// True when this is the primary address on the account.
	Primary *bool `json:"primary"`
}

// AddressData holds the components of an address.
type AddressData struct {
	City       string  `json:"city"`
	Region     *string `json:"region"`
	Street     string  `json:"street"`
	PostalCode *string `json:"postal_code"`
	Country    string  `json:"country"`
}

// Email is one email address on file for an account.
type Email struct {
	Data    string `json:"data"`
	Primary bool   `json:"primary"`
	// primary, secondary or other, as described by the institution.
	Type string `json:"type"`
}

// PhoneNumber is one phone number on file for an account.
type PhoneNumber struct {
	Data    string `json:"data"`
	Primary *bool  `json:"primary"`
	// home, work, office, mobile or other, as described by the
	// institution.
	Type *string `json:"type"`
}

// AccountWithOwners is an Account plus the owner data returned by the
// identity product.
type AccountWithOwners struct {
	Account

	// Owner information the institution has on file.
	Owners []Identity `json:"owners"`
}

// GetIdentityOptions filters a GetIdentity call. All fields are optional.
type GetIdentityOptions struct {
	// AccountIDs restricts the response to the listed accounts. An error
	// is returned if an ID is not associated with the Item.
	AccountIDs []string `json:"account_ids,omitempty"`
}

type getIdentityRequest struct {
	ClientID    string              `json:"client_id"`
	Secret      string              `json:"secret"`
	AccessToken string              `json:"access_token"`
	Options     *GetIdentityOptions `json:"options,omitempty"`
}

// GetIdentityResponse is the response to a GetIdentity call.
type GetIdentityResponse struct {
	RequestID string              `json:"request_id"`
	Accounts  []AccountWithOwners `json:"accounts"`
	Item      Item                `json:"item"`
}

// GetIdentity retrieves account-holder information on file with the
// institution: names, emails, phone numbers and addresses.
func (c *Client) GetIdentity(ctx context.Context, accessToken string, options *GetIdentityOptions) (*GetIdentityResponse, error) {
	return sendRequest[GetIdentityResponse](ctx, c, "identity/get", &getIdentityRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Options:     options,
	})
}
