package plaid

import (
	"context"

	"github.com/shopspring/decimal"
)

// DepositSwitchState is the state of a deposit switch.
type DepositSwitchState string

const (
	DepositSwitchStateInitialized DepositSwitchState = "initialized"
	DepositSwitchStateCompleted   DepositSwitchState = "completed"
	DepositSwitchStateError       DepositSwitchState = "error"
)

// Known reports whether the state is a documented value.
func (s DepositSwitchState) Known() bool {
	switch s {
	case DepositSwitchStateInitialized, DepositSwitchStateCompleted, DepositSwitchStateError:
		return true
	}
	return false
}

type getDepositSwitchRequest struct {
	ClientID        string `json:"client_id"`
	Secret          string `json:"secret"`
	DepositSwitchID string `json:"deposit_switch_id"`
}

// GetDepositSwitchResponse is the response to a GetDepositSwitch call.
type GetDepositSwitchResponse struct {
	RequestID string `json:"request_id"`
	// The ID of the deposit switch.
	DepositSwitch string `json:"deposit_switch"`
	// The bank account the direct deposit was switched to.
	TargetAccountID *string `json:"target_account_id"`
	// The Item the direct deposit was switched to.
	TargetItemID *string            `json:"target_item_id"`
	State        DepositSwitchState `json:"state"`
	// True when the direct deposit goes to multiple banks. Nil until the
	// switch completes.
	AccountHasMultipleAllocations *bool `json:"account_has_multiple_allocations"`
	// True when the target account receives the remainder after all
	// other allocations. Nil until the switch completes.
	IsAllocatedRemainder *bool `json:"is_allocated_remainder"`
	// The percentage of the direct deposit allocated to the target
	// account. Nil when allocation is not percentage-based.
	PercentAllocated *int `json:"percent_allocated"`
	// The dollar amount allocated to the target account. Nil when
	// allocation is not amount-based.
	AmountAllocated *decimal.Decimal `json:"amount_allocated"`
	DateCreated     Date             `json:"date_created"`
	// Nil until the switch completes.
	DateCompleted *Date `json:"date_completed"`
}

// GetDepositSwitch returns how the user configured their payroll
// allocation and the state of the switch.
func (c *Client) GetDepositSwitch(ctx context.Context, depositSwitchID string) (*GetDepositSwitchResponse, error) {
	return sendRequest[GetDepositSwitchResponse](ctx, c, "deposit_switch/get", &getDepositSwitchRequest{
		ClientID:        c.clientID,
		Secret:          c.secret,
		DepositSwitchID: depositSwitchID,
	})
}

type createDepositSwitchRequest struct {
	ClientID          string `json:"client_id"`
	Secret            string `json:"secret"`
	TargetAccessToken string `json:"target_access_token"`
	TargetAccountID   string `json:"target_account_id"`
}

// CreateDepositSwitchResponse is the response to a CreateDepositSwitch
// call.
type CreateDepositSwitchResponse struct {
	RequestID string `json:"request_id"`
	// Persisted throughout the lifetime of the switch.
	DepositSwitchID string `json:"deposit_switch_id"`
}

// CreateDepositSwitch creates a deposit switch entity. targetAccountID
// names the account that will receive the user's direct deposit;
// targetAccessToken is the access token for the target Item.
func (c *Client) CreateDepositSwitch(ctx context.Context, targetAccountID, targetAccessToken string) (*CreateDepositSwitchResponse, error) {
	return sendRequest[CreateDepositSwitchResponse](ctx, c, "deposit_switch/create", &createDepositSwitchRequest{
		ClientID:          c.clientID,
		Secret:            c.secret,
		TargetAccessToken: targetAccessToken,
		TargetAccountID:   targetAccountID,
	})
}
