package plaid

import "context"

// Category is one of the transaction categories used by Plaid.
type Category struct {
	// A Plaid-specific identifier for the category. Does not correspond
	// to merchant category codes.
	CategoryID string `json:"category_id"`
	// "place" for physical transactions or "special" for other
	// transactions such as bank charges.
	Group string `json:"group"`
	// The hierarchy of categories this category belongs to.
	Hierarchy []string `json:"hierarchy"`
}

// The categories endpoint takes no parameters, not even credentials.
type getCategoriesRequest struct{}

// GetCategoriesResponse is the response to a GetCategories call.
type GetCategoriesResponse struct {
	Categories []Category `json:"categories"`
	RequestID  string     `json:"request_id"`
}

// GetCategories returns detailed information on all transaction
// categories used by Plaid.
func (c *Client) GetCategories(ctx context.Context) (*GetCategoriesResponse, error) {
	return sendRequest[GetCategoriesResponse](ctx, c, "categories/get", &getCategoriesRequest{})
}
