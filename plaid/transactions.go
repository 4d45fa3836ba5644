package plaid

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentChannel is the channel a transaction was made through.
type PaymentChannel string

const (
	PaymentChannelOnline  PaymentChannel = "online"
	PaymentChannelInStore PaymentChannel = "in store"
	PaymentChannelOther   PaymentChannel = "other"
)

// Known reports whether the payment channel is a documented value.
func (p PaymentChannel) Known() bool {
	switch p {
	case PaymentChannelOnline, PaymentChannelInStore, PaymentChannelOther:
		return true
	}
	return false
}

// Transaction is a single settled or pending transaction on an account.
type Transaction struct {
	// The unique, case-sensitive ID of the transaction.
	TransactionID string `json:"transaction_id"`
	// The name of the account owner. Only relevant for sub-accounts.
	AccountOwner *string `json:"account_owner"`
	// For posted transactions, the ID of the associated pending
	// transaction, where applicable.
	PendingTransactionID *string `json:"pending_transaction_id"`
	// True while the transaction is pending or unsettled. Pending details
	// may change before they settle.
	Pending        bool           `json:"pending"`
	PaymentChannel PaymentChannel `json:"payment_channel"`
	// Inter-bank transfer details. All fields nil for other transactions.
	PaymentMeta PaymentMeta `json:"payment_meta"`
	// The merchant name or transaction description.
	Name string `json:"name"`
	// The merchant name as extracted by Plaid from Name.
	MerchantName *string `json:"merchant_name"`
	// Where the transaction took place.
	Location Location `json:"location"`
	// The date the transaction was authorized, when known.
	AuthorizedDate     *Date      `json:"authorized_date"`
	AuthorizedDatetime *time.Time `json:"authorized_datetime"`
	// The transaction date for pending transactions, or the posting date
	// for posted ones.
	Date     Date       `json:"date"`
	Datetime *time.Time `json:"datetime"`
	// The Plaid category ID the transaction belongs to.
	CategoryID string `json:"category_id"`
	// Hierarchical category names, most general first.
	Category               []string `json:"category"`
	UnofficialCurrencyCode *string  `json:"unofficial_currency_code"`
	ISOCurrencyCode        *string  `json:"iso_currency_code"`
	// The settled value. Positive when money moves out of the account,
	// negative when it moves in.
	Amount decimal.Decimal `json:"amount"`
	// The account the transaction occurred in.
	AccountID string `json:"account_id"`
	// Transaction type classifier. Only populated for European
	// institutions.
	TransactionCode *string `json:"transaction_code"`
}

// Money returns the transaction amount paired with its currency.
func (t Transaction) Money() Amount {
	return newAmount(t.Amount, t.ISOCurrencyCode, t.UnofficialCurrencyCode)
}

// PaymentMeta carries details specific to inter-bank transfers.
type PaymentMeta struct {
	// The transaction reference number supplied by the institution.
	ReferenceNumber *string `json:"reference_number"`
	// The ACH PPD ID for the payer.
	PPDID *string `json:"ppd_id"`
	// The receiving party, for transfers.
	Payee *string `json:"payee"`
	// The party initiating a wire transfer.
	ByOrderOf *string `json:"by_order_of"`
	// The paying party, for transfers.
	Payer *string `json:"payer"`
	// The type of transfer, e.g. "ACH".
	PaymentMethod *string `json:"payment_method"`
	// The name of the payment processor.
	PaymentProcessor *string `json:"payment_processor"`
	// The payer-supplied description of the transfer.
	Reason *string `json:"reason"`
}

// Location describes where a transaction took place.
type Location struct {
	Address    *string  `json:"address"`
	City       *string  `json:"city"`
	Region     *string  `json:"region"`
	PostalCode *string  `json:"postal_code"`
	Country    *string  `json:"country"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
	// The merchant-defined store number.
	StoreNumber *string `json:"store_number"`
}

// GetTransactionsOptions adjusts a GetTransactions call. All fields are
// optional.
type GetTransactionsOptions struct {
	// AccountIDs restricts the response to the listed accounts.
	AccountIDs []string `json:"account_ids,omitempty"`
	// Count is the number of transactions to fetch, up to 500. Zero means
	// the upstream default (100).
	Count int `json:"count,omitempty"`
	// Offset is the number of transactions to skip, for pagination.
	Offset int `json:"offset,omitempty"`
}

type getTransactionsRequest struct {
	ClientID    string                  `json:"client_id"`
	Secret      string                  `json:"secret"`
	AccessToken string                  `json:"access_token"`
	StartDate   Date                    `json:"start_date"`
	EndDate     Date                    `json:"end_date"`
	Options     *GetTransactionsOptions `json:"options,omitempty"`
}

// GetTransactionsResponse is the response to a GetTransactions call.
type GetTransactionsResponse struct {
	RequestID string    `json:"request_id"`
	Accounts  []Account `json:"accounts"`
	// Transactions in reverse-chronological order, most recent first.
	Transactions []Transaction `json:"transactions"`
	// The total number of transactions in the date range. When larger than
	// len(Transactions), more pages are available via the Offset option;
	// the caller drives the pagination loop.
	TotalTransactions int  `json:"total_transactions"`
	Item              Item `json:"item"`
}

// GetTransactions retrieves transaction data for credit, depository and
// some loan-type accounts within a date range. Results are paginated;
// manipulate Count and Offset against TotalTransactions to fetch them all.
//
// Transaction data may not be immediately ready after linking; until it is,
// the endpoint answers with a PRODUCT_NOT_READY error.
func (c *Client) GetTransactions(ctx context.Context, accessToken string, startDate, endDate Date, options *GetTransactionsOptions) (*GetTransactionsResponse, error) {
	return sendRequest[GetTransactionsResponse](ctx, c, "transactions/get", &getTransactionsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		StartDate:   startDate,
		EndDate:     endDate,
		Options:     options,
	})
}

type syncTransactionsRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
	// Omitted entirely on the first sync; Plaid treats a present-but-null
	// cursor differently from an absent one.
	Cursor string `json:"cursor,omitempty"`
	Count  int    `json:"count,omitempty"`
}

// SyncTransactionsResponse is one page of a transaction sync.
type SyncTransactionsResponse struct {
	RequestID string `json:"request_id"`
	// Cursor to pass to the next SyncTransactions call.
	NextCursor string `json:"next_cursor"`
	// True while more pages are immediately available.
	HasMore bool `json:"has_more"`
	// Transactions added since the supplied cursor.
	Added []Transaction `json:"added"`
	// Transactions changed since the supplied cursor.
	Modified []Transaction `json:"modified"`
	// IDs of transactions removed since the supplied cursor.
	Removed []RemovedTransaction `json:"removed"`
}

// RemovedTransaction identifies a transaction deleted by the institution.
type RemovedTransaction struct {
	TransactionID string `json:"transaction_id"`
}

// SyncTransactions retrieves incremental transaction updates. Pass an empty
// cursor for the initial sync, then feed NextCursor back in while HasMore
// is true; the caller owns the loop and cursor persistence.
func (c *Client) SyncTransactions(ctx context.Context, accessToken, cursor string, count int) (*SyncTransactionsResponse, error) {
	return sendRequest[SyncTransactionsResponse](ctx, c, "transactions/sync", &syncTransactionsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Cursor:      cursor,
		Count:       count,
	})
}

type refreshTransactionsRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

// RefreshTransactionsResponse is the response to a RefreshTransactions
// call.
type RefreshTransactionsResponse struct {
	RequestID string `json:"request_id"`
}

// RefreshTransactions initiates an on-demand extraction of the newest
// transactions for an Item, in addition to Plaid's periodic extractions.
// Discovered changes are announced via webhooks and fetched with
// GetTransactions.
func (c *Client) RefreshTransactions(ctx context.Context, accessToken string) (*RefreshTransactionsResponse, error) {
	return sendRequest[RefreshTransactionsResponse](ctx, c, "transactions/refresh", &refreshTransactionsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	})
}
