package plaid

import (
	"context"
	"time"
)

// LinkTokenUser identifies the end user who will go through the Link
// flow. ClientUserID is required; the rest enable the returning user
// experience.
type LinkTokenUser struct {
	// A unique ID representing the end user.
	ClientUserID string `json:"client_user_id"`
	// The user's full legal name.
	LegalName string `json:"legal_name,omitempty"`
	// The user's phone number in E.164 format. Required for the
	// returning user experience.
	PhoneNumber string `json:"phone_number,omitempty"`
	// When the phone number was verified.
	PhoneNumberVerifiedTime *time.Time `json:"phone_number_verified_time,omitempty"`
	// The user's email address. Required for the pre-authenticated
	// returning user flow.
	EmailAddress string `json:"email_address,omitempty"`
	// When the email address was verified.
	EmailAddressVerifiedTime *time.Time `json:"email_address_verified_time,omitempty"`
	// SSN in "ddd-dd-dddd" format.
	SSN string `json:"ssn,omitempty"`
	// Date of birth in "yyyy-mm-dd" format.
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

// AccountFilters narrows the account types and subtypes shown in Link,
// keyed by account type, e.g.
//
//	{"depository": {"account_subtypes": ["checking", "savings"]}}
type AccountFilters map[string]map[string][]string

// LinkTokenConfigs are the parameters for CreateLinkToken. User,
// ClientName, Language and CountryCodes are required.
type LinkTokenConfigs struct {
	// The end user who will be linking their account.
	User LinkTokenUser `json:"user"`
	// Your application's name, as displayed in Link.
	ClientName string `json:"client_name"`
	// The language Link is displayed in, e.g. "en".
	Language string `json:"language"`
	// ISO 3166-1 alpha-2 country codes, e.g. "US".
	CountryCodes []string `json:"country_codes"`
	// The Plaid products to initialize Link for.
	Products []string `json:"products,omitempty"`
	// The destination URL for webhooks.
	Webhook string `json:"webhook,omitempty"`
	// The name of a Link customization from the Plaid Dashboard.
	LinkCustomizationName string `json:"link_customization_name,omitempty"`
	// Restricts the account types shown in Link.
	AccountFilters AccountFilters `json:"account_filters,omitempty"`
	// Where the user is forwarded after completing Link.
	RedirectURI string `json:"redirect_uri,omitempty"`
	// Your app's Android package name.
	AndroidPackageName string `json:"android_package_name,omitempty"`
}

type createLinkTokenRequest struct {
	ClientID string `json:"client_id"`
	Secret   string `json:"secret"`
	LinkTokenConfigs
}

// CreateLinkTokenResponse is the response to a CreateLinkToken call.
type CreateLinkTokenResponse struct {
	RequestID string `json:"request_id"`
	// The token to supply to Link to initialize it.
	LinkToken string `json:"link_token"`
	// When the token expires.
	Expiration time.Time `json:"expiration"`
}

// CreateLinkToken creates a link_token, the parameter required to
// initialize Link. Link returns a public_token that ExchangePublicToken
// turns into an access_token. A link_token also drives other Link
// flows, such as update mode for Items with expired credentials.
func (c *Client) CreateLinkToken(ctx context.Context, configs LinkTokenConfigs) (*CreateLinkTokenResponse, error) {
	return sendRequest[CreateLinkTokenResponse](ctx, c, "link/token/create", &createLinkTokenRequest{
		ClientID:         c.clientID,
		Secret:           c.secret,
		LinkTokenConfigs: configs,
	})
}

type getLinkTokenRequest struct {
	ClientID  string `json:"client_id"`
	Secret    string `json:"secret"`
	LinkToken string `json:"link_token"`
}

// LinkTokenMetadata echoes the arguments originally passed to
// CreateLinkToken.
type LinkTokenMetadata struct {
	InitialProducts []string       `json:"initial_products"`
	Webhook         *string        `json:"webhook"`
	CountryCodes    []string       `json:"country_codes"`
	Language        *string        `json:"language"`
	AccountFilters  AccountFilters `json:"account_filters"`
	RedirectURI     *string        `json:"redirect_uri"`
	ClientName      *string        `json:"client_name"`
}

// GetLinkTokenResponse is the response to a GetLinkToken call.
type GetLinkTokenResponse struct {
	RequestID  string     `json:"request_id"`
	LinkToken  string     `json:"link_token"`
	CreatedAt  *time.Time `json:"created_at"`
	Expiration *time.Time `json:"expiration"`
	// The arguments originally provided to CreateLinkToken.
	Metadata LinkTokenMetadata `json:"metadata"`
}

// GetLinkToken returns information about a previously created
// link_token. Useful for debugging.
func (c *Client) GetLinkToken(ctx context.Context, linkToken string) (*GetLinkTokenResponse, error) {
	return sendRequest[GetLinkTokenResponse](ctx, c, "link/token/get", &getLinkTokenRequest{
		ClientID:  c.clientID,
		Secret:    c.secret,
		LinkToken: linkToken,
	})
}
