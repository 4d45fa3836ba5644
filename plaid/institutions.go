package plaid

import "context"

// Institution is one financial institution supported by Plaid.
type Institution struct {
	InstitutionID string `json:"institution_id"`
	// The official name of the institution.
	Name string `json:"name"`
	// The Plaid products the institution supports, e.g. "auth",
	// "transactions", "identity".
	Products []string `json:"products"`
	// ISO-3166-1 alpha-2 country codes the institution supports.
	CountryCodes []string `json:"country_codes"`
	// The institution's website. Only populated when optional metadata is
	// requested.
	URL *string `json:"url"`
	// Hexadecimal primary brand color.
	PrimaryColor *string `json:"primary_color"`
	// Base64-encoded logo.
	Logo *string `json:"logo"`
	// A partial list of routing numbers, for lookup purposes only.
	RoutingNumbers []string `json:"routing_numbers"`
	// True when the institution uses an OAuth login flow.
	OAuth bool `json:"oauth"`
}

// GetInstitutionsOptions filters a GetInstitutions call. All fields are
// optional.
type GetInstitutionsOptions struct {
	// Products restricts results to institutions supporting all the listed
	// products.
	Products []string `json:"products,omitempty"`
	// RoutingNumbers restricts results to institutions matching any of the
	// listed routing numbers.
	RoutingNumbers []string `json:"routing_numbers,omitempty"`
	// OAuth, when set, restricts results to institutions with (true) or
	// without (false) OAuth login flows.
	OAuth *bool `json:"oauth,omitempty"`
	// IncludeOptionalMetadata requests the homepage URL, logo and brand
	// color.
	IncludeOptionalMetadata bool `json:"include_optional_metadata,omitempty"`
}

type getInstitutionsRequest struct {
	ClientID     string                  `json:"client_id"`
	Secret       string                  `json:"secret"`
	Count        int                     `json:"count"`
	Offset       int                     `json:"offset"`
	CountryCodes []string                `json:"country_codes"`
	Options      *GetInstitutionsOptions `json:"options,omitempty"`
}

// GetInstitutionsResponse is the response to a GetInstitutions call.
type GetInstitutionsResponse struct {
	RequestID    string        `json:"request_id"`
	Institutions []Institution `json:"institutions"`
	// The total number of institutions available, for pagination.
	Total int `json:"total"`
}

// GetInstitutions returns details on the institutions Plaid supports.
// Plaid supports thousands of institutions, so results are paginated via
// count and offset; this data changes frequently upstream.
func (c *Client) GetInstitutions(ctx context.Context, count, offset int, countryCodes []string, options *GetInstitutionsOptions) (*GetInstitutionsResponse, error) {
	return sendRequest[GetInstitutionsResponse](ctx, c, "institutions/get", &getInstitutionsRequest{
		ClientID:     c.clientID,
		Secret:       c.secret,
		Count:        count,
		Offset:       offset,
		CountryCodes: countryCodes,
		Options:      options,
	})
}

// GetInstitutionByIDOptions adjusts a GetInstitutionByID call. All fields
// are optional.
type GetInstitutionByIDOptions struct {
	// IncludeOptionalMetadata requests the logo, brand color and URL.
	IncludeOptionalMetadata bool `json:"include_optional_metadata,omitempty"`
	// IncludeStatus requests status information about the institution.
	IncludeStatus bool `json:"include_status,omitempty"`
}

type getInstitutionByIDRequest struct {
	ClientID      string                     `json:"client_id"`
	Secret        string                     `json:"secret"`
	InstitutionID string                     `json:"institution_id"`
	CountryCodes  []string                   `json:"country_codes"`
	Options       *GetInstitutionByIDOptions `json:"options,omitempty"`
}

// GetInstitutionByIDResponse is the response to a GetInstitutionByID call.
type GetInstitutionByIDResponse struct {
	RequestID   string      `json:"request_id"`
	Institution Institution `json:"institution"`
}

// GetInstitutionByID returns details on a single institution.
func (c *Client) GetInstitutionByID(ctx context.Context, institutionID string, countryCodes []string, options *GetInstitutionByIDOptions) (*GetInstitutionByIDResponse, error) {
	return sendRequest[GetInstitutionByIDResponse](ctx, c, "institutions/get_by_id", &getInstitutionByIDRequest{
		ClientID:      c.clientID,
		Secret:        c.secret,
		InstitutionID: institutionID,
		CountryCodes:  countryCodes,
		Options:       options,
	})
}

// SearchInstitutionsOptions adjusts a SearchInstitutions call. All fields
// are optional.
type SearchInstitutionsOptions struct {
	// IncludeOptionalMetadata requests the homepage URL, logo and brand
	// color.
	IncludeOptionalMetadata bool `json:"include_optional_metadata,omitempty"`
	// OAuth, when set, restricts results to institutions with (true) or
	// without (false) OAuth login flows.
	OAuth *bool `json:"oauth,omitempty"`
}

type searchInstitutionsRequest struct {
	ClientID     string                     `json:"client_id"`
	Secret       string                     `json:"secret"`
	Query        string                     `json:"query"`
	CountryCodes []string                   `json:"country_codes"`
	Products     []string                   `json:"products"`
	Options      *SearchInstitutionsOptions `json:"options,omitempty"`
}

// SearchInstitutionsResponse is the response to a SearchInstitutions call.
type SearchInstitutionsResponse struct {
	RequestID    string        `json:"request_id"`
	Institutions []Institution `json:"institutions"`
}

// SearchInstitutions returns institutions whose names match the query, up
// to ten per call, restricted to those supporting all listed products.
func (c *Client) SearchInstitutions(ctx context.Context, query string, products, countryCodes []string, options *SearchInstitutionsOptions) (*SearchInstitutionsResponse, error) {
	return sendRequest[SearchInstitutionsResponse](ctx, c, "institutions/search", &searchInstitutionsRequest{
		ClientID:     c.clientID,
		Secret:       c.secret,
		Query:        query,
		CountryCodes: countryCodes,
		Products:     products,
		Options:      options,
	})
}
