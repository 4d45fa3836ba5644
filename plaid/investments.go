package plaid

import (
	"context"

	"github.com/shopspring/decimal"
)

// Security describes a security referenced by holdings or investment
// transactions.
type Security struct {
	// Plaid's unique, case-sensitive identifier for the security.
	SecurityID string `json:"security_id"`
	// 12-character ISIN, a globally unique securities identifier.
	ISIN *string `json:"isin"`
	// 9-character CUSIP, assigned to North American securities.
	CUSIP *string `json:"cusip"`
	// 7-character SEDOL, assigned to securities in the UK.
	SEDOL *string `json:"sedol"`
	// The institution's own identifier for the security.
	InstitutionSecurityID *string `json:"institution_security_id"`
	// The institution the identifier belongs to, when
	// InstitutionSecurityID is set.
	InstitutionID *string `json:"institution_id"`
	// The ID of a publicly traded security whose performance models this
	// one, when Plaid provides one.
	ProxySecurityID *string `json:"proxy_security_id"`
	// A descriptive name suitable for display.
	Name *string `json:"name"`
	// The trading symbol for publicly traded securities.
	TickerSymbol *string `json:"ticker_symbol"`
	// True when the security is liquid enough to be treated like cash.
	IsCashEquivalent bool `json:"is_cash_equivalent"`
	// The security type, e.g. "equity", "etf", "mutual fund".
	Type *string `json:"type"`
	// Price at the close of the previous trading session. Nil for
	// non-public securities.
	ClosePrice *decimal.Decimal `json:"close_price"`
	// The date ClosePrice is accurate for. Always nil when ClosePrice is.
	ClosePriceAsOf         *Date   `json:"close_price_as_of"`
	ISOCurrencyCode        *string `json:"iso_currency_code"`
	UnofficialCurrencyCode *string `json:"unofficial_currency_code"`
}

// ClosePriceAmount returns the close price paired with its currency. The
// second return is false for non-public securities without one.
func (s Security) ClosePriceAmount() (Amount, bool) {
	if s.ClosePrice == nil {
		return Amount{}, false
	}
	return newAmount(*s.ClosePrice, s.ISOCurrencyCode, s.UnofficialCurrencyCode), true
}

// Holding is one position in an investment account.
type Holding struct {
	AccountID  string `json:"account_id"`
	SecurityID string `json:"security_id"`
	// The last price the institution gave for the security.
	InstitutionPrice     decimal.Decimal `json:"institution_price"`
	InstitutionPriceAsOf *Date           `json:"institution_price_as_of"`
	// The value of the holding as reported by the institution.
	InstitutionValue decimal.Decimal `json:"institution_value"`
	// The cost basis, when the institution reports one.
	CostBasis *decimal.Decimal `json:"cost_basis"`
	// The quantity of the asset held.
	Quantity               decimal.Decimal `json:"quantity"`
	ISOCurrencyCode        *string         `json:"iso_currency_code"`
	UnofficialCurrencyCode *string         `json:"unofficial_currency_code"`
}

// Money returns the holding's institution-reported value paired with its
// currency.
func (h Holding) Money() Amount {
	return newAmount(h.InstitutionValue, h.ISOCurrencyCode, h.UnofficialCurrencyCode)
}

// InvestmentTransactionType classifies an investment transaction.
type InvestmentTransactionType string

const (
	InvestmentTransactionTypeBuy      InvestmentTransactionType = "buy"
	InvestmentTransactionTypeSell     InvestmentTransactionType = "sell"
	InvestmentTransactionTypeCancel   InvestmentTransactionType = "cancel"
	InvestmentTransactionTypeCash     InvestmentTransactionType = "cash"
	InvestmentTransactionTypeFee      InvestmentTransactionType = "fee"
	InvestmentTransactionTypeTransfer InvestmentTransactionType = "transfer"
)

// Known reports whether the type is a documented value.
func (t InvestmentTransactionType) Known() bool {
	switch t {
	case InvestmentTransactionTypeBuy, InvestmentTransactionTypeSell,
		InvestmentTransactionTypeCancel, InvestmentTransactionTypeCash,
		InvestmentTransactionTypeFee, InvestmentTransactionTypeTransfer:
		return true
	}
	return false
}

// InvestmentTransaction is a single transaction in an investment account.
type InvestmentTransaction struct {
	// The unique, case-sensitive ID of the transaction.
	InvestmentTransactionID string `json:"investment_transaction_id"`
	// The transaction this one cancels, where applicable.
	CancelTransactionID *string `json:"cancel_transaction_id"`
	AccountID           string  `json:"account_id"`
	// The security the transaction relates to, when there is one.
	SecurityID *string `json:"security_id"`
	// Posting date, or transacted date for pending transactions.
	Date Date `json:"date"`
	// The institution's description of the transaction.
	Name string `json:"name"`
	// The number of units of the security involved.
	Quantity decimal.Decimal `json:"quantity"`
	// The complete value of the transaction.
	Amount decimal.Decimal `json:"amount"`
	// The security price the transaction occurred at.
	Price decimal.Decimal `json:"price"`
	// The combined value of all fees applied.
	Fees *decimal.Decimal          `json:"fees"`
	Type InvestmentTransactionType `json:"type"`
	// A finer-grained classification of Type.
	Subtype                string  `json:"subtype"`
	ISOCurrencyCode        *string `json:"iso_currency_code"`
	UnofficialCurrencyCode *string `json:"unofficial_currency_code"`
}

// Money returns the transaction amount paired with its currency.
func (t InvestmentTransaction) Money() Amount {
	return newAmount(t.Amount, t.ISOCurrencyCode, t.UnofficialCurrencyCode)
}

// GetHoldingsOptions filters a GetHoldings call. All fields are optional.
type GetHoldingsOptions struct {
	// AccountIDs restricts the response to the listed accounts.
	AccountIDs []string `json:"account_ids,omitempty"`
}

type getHoldingsRequest struct {
	ClientID    string              `json:"client_id"`
	Secret      string              `json:"secret"`
	AccessToken string              `json:"access_token"`
	Options     *GetHoldingsOptions `json:"options,omitempty"`
}

// GetHoldingsResponse is the response to a GetHoldings call.
type GetHoldingsResponse struct {
	RequestID string    `json:"request_id"`
	Accounts  []Account `json:"accounts"`
	Holdings  []Holding `json:"holdings"`
	// The securities referenced by the holdings.
	Securities []Security `json:"securities"`
	Item       Item       `json:"item"`
}

// GetHoldings retrieves stock position data for the Item's investment
// accounts.
func (c *Client) GetHoldings(ctx context.Context, accessToken string, options *GetHoldingsOptions) (*GetHoldingsResponse, error) {
	return sendRequest[GetHoldingsResponse](ctx, c, "investments/holdings/get", &getHoldingsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Options:     options,
	})
}

// GetInvestmentTransactionsOptions adjusts a GetInvestmentTransactions
// call. All fields are optional.
type GetInvestmentTransactionsOptions struct {
	// AccountIDs restricts the response to the listed accounts.
	AccountIDs []string `json:"account_ids,omitempty"`
	// Count is the number of transactions to fetch, up to 500.
	Count int `json:"count,omitempty"`
	// Offset is the number of transactions to skip, for pagination.
	Offset int `json:"offset,omitempty"`
}

type getInvestmentTransactionsRequest struct {
	ClientID    string                            `json:"client_id"`
	Secret      string                            `json:"secret"`
	AccessToken string                            `json:"access_token"`
	StartDate   Date                              `json:"start_date"`
	EndDate     Date                              `json:"end_date"`
	Options     *GetInvestmentTransactionsOptions `json:"options,omitempty"`
}

// GetInvestmentTransactionsResponse is the response to a
// GetInvestmentTransactions call.
type GetInvestmentTransactionsResponse struct {
	RequestID  string     `json:"request_id"`
	Accounts   []Account  `json:"accounts"`
	Securities []Security `json:"securities"`
	// Transactions in reverse-chronological order.
	InvestmentTransactions []InvestmentTransaction `json:"investment_transactions"`
	// The total number of transactions in the date range, for pagination.
	TotalInvestmentTransactions int  `json:"total_investment_transactions"`
	Item                        Item `json:"item"`
}

// GetInvestmentTransactions retrieves transaction data for the Item's
// investment accounts within a date range. Results are paginated via the
// Count and Offset options against TotalInvestmentTransactions.
func (c *Client) GetInvestmentTransactions(ctx context.Context, accessToken string, startDate, endDate Date, options *GetInvestmentTransactionsOptions) (*GetInvestmentTransactionsResponse, error) {
	return sendRequest[GetInvestmentTransactionsResponse](ctx, c, "investments/transactions/get", &getInvestmentTransactionsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		StartDate:   startDate,
		EndDate:     endDate,
		Options:     options,
	})
}
