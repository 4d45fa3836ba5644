package plaid

import (
	"context"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account. Unrecognized upstream values decode
// verbatim; Known reports whether the value is a documented one.
type AccountType string

const (
	AccountTypeInvestment AccountType = "investment"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeDepository AccountType = "depository"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeBrokerage  AccountType = "brokerage"
	AccountTypeOther      AccountType = "other"
)

// Known reports whether the account type is one of the documented values.
func (t AccountType) Known() bool {
	switch t {
	case AccountTypeInvestment, AccountTypeCredit, AccountTypeDepository,
		AccountTypeLoan, AccountTypeBrokerage, AccountTypeOther:
		return true
	}
	return false
}

// VerificationStatus is the micro-deposit verification state of an Auth
// account.
type VerificationStatus string

const (
	VerificationStatusAutomaticallyVerified VerificationStatus = "automatically_verified"
	VerificationStatusPendingAutomatic      VerificationStatus = "pending_automatic_verification"
	VerificationStatusPendingManual         VerificationStatus = "pending_manual_verification"
	VerificationStatusManuallyVerified      VerificationStatus = "manually_verified"
	VerificationStatusExpired               VerificationStatus = "verification_expired"
	VerificationStatusFailed                VerificationStatus = "verification_failed"
)

// Known reports whether the verification status is a documented value.
func (s VerificationStatus) Known() bool {
	switch s {
	case VerificationStatusAutomaticallyVerified, VerificationStatusPendingAutomatic,
		VerificationStatusPendingManual, VerificationStatusManuallyVerified,
		VerificationStatusExpired, VerificationStatusFailed:
		return true
	}
	return false
}

// Account is a single financial account belonging to an Item.
type Account struct {
	// Plaid's unique identifier for the account.
	AccountID string `json:"account_id"`
	// Balances for the account. May be cached; use GetBalances to force a
	// refresh.
	Balances AccountBalances `json:"balances"`
	// The last 2-4 alphanumeric characters of the official account number.
	// May be non-unique between an Item's accounts.
	Mask *string `json:"mask"`
	// The account name, assigned by the user or the institution.
	Name string `json:"name"`
	// The official name of the account as given by the institution.
	OfficialName *string     `json:"official_name"`
	Type         AccountType `json:"type"`
	// A finer-grained account classification, e.g. "checking", "401k",
	// "credit card". The upstream set is large and open.
	Subtype *string `json:"subtype"`
	// Verification status for Auth Items initiated through micro-deposits.
	VerificationStatus *VerificationStatus `json:"verification_status"`
}

// AccountBalances describes the balance of an account.
type AccountBalances struct {
	// Funds available to be withdrawn, as determined by the institution.
	Available *decimal.Decimal `json:"available"`
	// The total amount of funds in or owed by the account.
	Current decimal.Decimal `json:"current"`
	// The credit limit for credit accounts, or the overdraft limit for
	// some depository accounts.
	Limit *decimal.Decimal `json:"limit"`
	// ISO-4217 currency code. Always nil if UnofficialCurrencyCode is set.
	ISOCurrencyCode *string `json:"iso_currency_code"`
	// Institution-specific currency code. Always nil if ISOCurrencyCode is
	// set.
	UnofficialCurrencyCode *string `json:"unofficial_currency_code"`
}

// CurrentAmount returns the current balance paired with its currency.
func (b AccountBalances) CurrentAmount() Amount {
	return newAmount(b.Current, b.ISOCurrencyCode, b.UnofficialCurrencyCode)
}

// AvailableAmount returns the available balance paired with its currency.
// The second return is false when the institution did not report one.
func (b AccountBalances) AvailableAmount() (Amount, bool) {
	if b.Available == nil {
		return Amount{}, false
	}
	return newAmount(*b.Available, b.ISOCurrencyCode, b.UnofficialCurrencyCode), true
}

// LimitAmount returns the credit/overdraft limit paired with its currency.
// The second return is false when the institution did not report one.
func (b AccountBalances) LimitAmount() (Amount, bool) {
	if b.Limit == nil {
		return Amount{}, false
	}
	return newAmount(*b.Limit, b.ISOCurrencyCode, b.UnofficialCurrencyCode), true
}

// GetAccountsOptions filters a GetAccounts call. All fields are optional.
type GetAccountsOptions struct {
	// AccountIDs restricts the response to the listed accounts.
	AccountIDs []string `json:"account_ids,omitempty"`
}

type getAccountsRequest struct {
	ClientID    string              `json:"client_id"`
	Secret      string              `json:"secret"`
	AccessToken string              `json:"access_token"`
	Options     *GetAccountsOptions `json:"options,omitempty"`
}

// GetAccountsResponse is the response to a GetAccounts call.
type GetAccountsResponse struct {
	RequestID string    `json:"request_id"`
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
}

// GetAccounts retrieves the active accounts linked to an Item.
//
// Balance data in the response may be cached; use GetBalances when the
// freshest available/current figures are needed.
func (c *Client) GetAccounts(ctx context.Context, accessToken string, options *GetAccountsOptions) (*GetAccountsResponse, error) {
	return sendRequest[GetAccountsResponse](ctx, c, "accounts/get", &getAccountsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Options:     options,
	})
}

// GetBalancesOptions filters a GetBalances call. All fields are optional.
type GetBalancesOptions struct {
	// AccountIDs restricts the response to the listed accounts.
	AccountIDs []string `json:"account_ids,omitempty"`
}

type getBalancesRequest struct {
	ClientID    string              `json:"client_id"`
	Secret      string              `json:"secret"`
	AccessToken string              `json:"access_token"`
	Options     *GetBalancesOptions `json:"options,omitempty"`
}

// GetBalancesResponse is the response to a GetBalances call.
type GetBalancesResponse struct {
	RequestID string    `json:"request_id"`
	Accounts  []Account `json:"accounts"`
}

// GetBalances retrieves real-time balance data. Unlike the balance objects
// on other endpoints, this forces the available and current fields to be
// refreshed rather than served from cache.
func (c *Client) GetBalances(ctx context.Context, accessToken string, options *GetBalancesOptions) (*GetBalancesResponse, error) {
	return sendRequest[GetBalancesResponse](ctx, c, "accounts/balance/get", &getBalancesRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Options:     options,
	})
}
