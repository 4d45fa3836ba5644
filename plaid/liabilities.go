package plaid

import (
	"context"

	"github.com/shopspring/decimal"
)

// APRType classifies the balance an APR applies to.
type APRType string

const (
	APRTypeBalanceTransfer APRType = "balance_transfer_apr"
	APRTypeCash            APRType = "cash_apr"
	APRTypePurchase        APRType = "purchase_apr"
	APRTypeSpecial         APRType = "special"
)

// Known reports whether the APR type is a documented value.
func (t APRType) Known() bool {
	switch t {
	case APRTypeBalanceTransfer, APRTypeCash, APRTypePurchase, APRTypeSpecial:
		return true
	}
	return false
}

// APR is one of the interest rates applied to a credit account.
type APR struct {
	// The annual percentage rate applied.
	APRPercentage decimal.Decimal `json:"apr_percentage"`
	Type          APRType         `json:"apr_type"`
	// The amount of money subject to the APR if a balance is carried past
	// the due date. Often an average daily balance; varies by issuer.
	BalanceSubjectToAPR *decimal.Decimal `json:"balance_subject_to_apr"`
	// Interest charged since the last statement.
	InterestChargeAmount *decimal.Decimal `json:"interest_charge_amount"`
}

// CreditLiability describes a credit card or similar revolving account.
type CreditLiability struct {
	AccountID *string `json:"account_id"`
	// The interest rates that apply to the account.
	APRs []APR `json:"aprs"`
	// True when a payment is currently overdue. Availability is limited.
	IsOverdue *bool `json:"is_overdue"`
	// The amount of the last payment.
	LastPaymentAmount decimal.Decimal `json:"last_payment_amount"`
	LastPaymentDate   *Date           `json:"last_payment_date"`
	// The outstanding balance on the last statement.
	LastStatementBalance   decimal.Decimal `json:"last_statement_balance"`
	LastStatementIssueDate Date            `json:"last_statement_issue_date"`
	// The minimum payment due for the next billing cycle.
	MinimumPaymentAmount decimal.Decimal `json:"minimum_payment_amount"`
	// Nil when no payment is expected.
	NextPaymentDueDate *Date `json:"next_payment_due_date"`
}

// MortgageInterestRate describes the interest rate on a mortgage.
type MortgageInterestRate struct {
	// The interest rate, not the APR, as a percentage.
	Percentage *decimal.Decimal `json:"percentage"`
	// "fixed" or "variable".
	Type *string `json:"type"`
}

// MortgagePropertyAddress is the address of the mortgaged property.
type MortgagePropertyAddress struct {
	City       *string `json:"city"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
	Region     *string `json:"region"`
	Street     *string `json:"street"`
}

// MortgageLiability describes a mortgage account.
type MortgageLiability struct {
	AccountID *string `json:"account_id"`
	// The account number of the loan.
	AccountNumber string `json:"account_number"`
	// The current outstanding amount charged for late payment.
	CurrentLateFee *decimal.Decimal `json:"current_late_fee"`
	// Total held in escrow for taxes and insurance.
	EscrowBalance *decimal.Decimal `json:"escrow_balance"`
	// Whether private mortgage insurance is in effect.
	HasPMI *bool `json:"has_pmi"`
	// Whether early payoff incurs a penalty.
	HasPrepaymentPenalty *bool                `json:"has_prepayment_penalty"`
	InterestRate         MortgageInterestRate `json:"interest_rate"`
	LastPaymentAmount    *decimal.Decimal     `json:"last_payment_amount"`
	LastPaymentDate      *Date                `json:"last_payment_date"`
	// Servicer-provided loan description, e.g. conventional or fixed.
	// Not an enumerated set.
	LoanTypeDescription *string `json:"loan_type_description"`
	// Full duration of the mortgage at origination, e.g. "10 year".
	LoanTerm *string `json:"loan_term"`
	// Original date on which the mortgage is due in full.
	MaturityDate               *Date            `json:"maturity_date"`
	NextMonthlyPayment         *decimal.Decimal `json:"next_monthly_payment"`
	NextPaymentDueDate         *Date            `json:"next_payment_due_date"`
	OriginationDate            *Date            `json:"origination_date"`
	OriginationPrincipalAmount *decimal.Decimal `json:"origination_principal_amount"`
	// Principal plus interest past due for payment.
	PastDueAmount    *decimal.Decimal        `json:"past_due_amount"`
	PropertyAddress  MortgagePropertyAddress `json:"property_address"`
	YTDInterestPaid  *decimal.Decimal        `json:"ytd_interest_paid"`
	YTDPrincipalPaid *decimal.Decimal        `json:"ytd_principal_paid"`
}

// StudentLoanStatusType classifies the status of a student loan.
type StudentLoanStatusType string

const (
	StudentLoanStatusCancelled         StudentLoanStatusType = "cancelled"
	StudentLoanStatusChargedOff        StudentLoanStatusType = "charged off"
	StudentLoanStatusClaim             StudentLoanStatusType = "claim"
	StudentLoanStatusConsolidated      StudentLoanStatusType = "consolidated"
	StudentLoanStatusDeferment         StudentLoanStatusType = "deferment"
	StudentLoanStatusDelinquent        StudentLoanStatusType = "delinquent"
	StudentLoanStatusDischarged        StudentLoanStatusType = "discharged"
	StudentLoanStatusExtension         StudentLoanStatusType = "extension"
	StudentLoanStatusForbearance       StudentLoanStatusType = "forbearance"
	StudentLoanStatusInGrace           StudentLoanStatusType = "in grace"
	StudentLoanStatusInMilitary        StudentLoanStatusType = "in military"
	StudentLoanStatusInSchool          StudentLoanStatusType = "in school"
	StudentLoanStatusNotFullyDisbursed StudentLoanStatusType = "not fully disbursed"
	StudentLoanStatusOther             StudentLoanStatusType = "other"
	StudentLoanStatusPaidInFull        StudentLoanStatusType = "paid in full"
	StudentLoanStatusRefunded          StudentLoanStatusType = "refunded"
	StudentLoanStatusRepayment         StudentLoanStatusType = "repayment"
	StudentLoanStatusTransferred       StudentLoanStatusType = "transferred"
)

// Known reports whether the status is a documented value.
func (t StudentLoanStatusType) Known() bool {
	switch t {
	case StudentLoanStatusCancelled, StudentLoanStatusChargedOff,
		StudentLoanStatusClaim, StudentLoanStatusConsolidated,
		StudentLoanStatusDeferment, StudentLoanStatusDelinquent,
		StudentLoanStatusDischarged, StudentLoanStatusExtension,
		StudentLoanStatusForbearance, StudentLoanStatusInGrace,
		StudentLoanStatusInMilitary, StudentLoanStatusInSchool,
		StudentLoanStatusNotFullyDisbursed, StudentLoanStatusOther,
		StudentLoanStatusPaidInFull, StudentLoanStatusRefunded,
		StudentLoanStatusRepayment, StudentLoanStatusTransferred:
		return true
	}
	return false
}

// StudentLoanStatus is the status of a student loan.
type StudentLoanStatus struct {
	// The date until which the loan keeps its current status.
	EndDate *Date                  `json:"end_date"`
	Type    *StudentLoanStatusType `json:"type"`
}

// PSLFStatus reports eligibility progress in the Public Service Loan
// Forgiveness program. Only returned by institutions that support it.
type PSLFStatus struct {
	// Estimated date the borrower completes 120 qualifying payments.
	EstimatedEligibilityDate *Date  `json:"estimated_eligibility_date"`
	PaymentsMade             *int64 `json:"payments_made"`
	PaymentsRemaining        *int64 `json:"payments_remaining"`
}

// RepaymentPlanType classifies a student loan repayment plan.
type RepaymentPlanType string

const (
	RepaymentPlanExtendedGraduated RepaymentPlanType = "extended graduated"
	RepaymentPlanExtendedStandard  RepaymentPlanType = "extended standard"
	RepaymentPlanGraduated         RepaymentPlanType = "graduated"
	RepaymentPlanIncomeContingent  RepaymentPlanType = "income-contingent repayment"
	RepaymentPlanIncomeBased       RepaymentPlanType = "income-based repayment"
	RepaymentPlanInterestOnly      RepaymentPlanType = "interest-only"
	RepaymentPlanOther             RepaymentPlanType = "other"
	RepaymentPlanPayAsYouEarn      RepaymentPlanType = "pay as you earn"
	RepaymentPlanRevisedPAYE       RepaymentPlanType = "revised pay as you earn"
	RepaymentPlanStandard          RepaymentPlanType = "standard"
)

// Known reports whether the plan type is a documented value.
func (t RepaymentPlanType) Known() bool {
	switch t {
	case RepaymentPlanExtendedGraduated, RepaymentPlanExtendedStandard,
		RepaymentPlanGraduated, RepaymentPlanIncomeContingent,
		RepaymentPlanIncomeBased, RepaymentPlanInterestOnly,
		RepaymentPlanOther, RepaymentPlanPayAsYouEarn,
		RepaymentPlanRevisedPAYE, RepaymentPlanStandard:
		return true
	}
	return false
}

// StudentLoanRepaymentPlan is the repayment plan for a student loan.
type StudentLoanRepaymentPlan struct {
	// The servicer's description of the plan.
	Description *string            `json:"description"`
	Type        *RepaymentPlanType `json:"type"`
}

// StudentLoanServicerAddress is the servicer's remittance address.
type StudentLoanServicerAddress struct {
	City       *string `json:"city"`
	Region     *string `json:"region"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
	Street     *string `json:"street"`
}

// StudentLoanLiability describes a student loan account.
type StudentLoanLiability struct {
	AccountID *string `json:"account_id"`
	// The account number of the loan.
	AccountNumber *string `json:"account_number"`
	// Dates on which loaned funds were or will be disbursed.
	DisbursementDates []Date `json:"disbursement_dates"`
	// Expected payoff date. Availability is limited.
	ExpectedPayoffDate *string `json:"expected_payoff_date"`
	// The guarantor of the loan.
	Guarantor *string `json:"guarantor"`
	// The interest rate as a percentage.
	InterestRatePercentage decimal.Decimal  `json:"interest_rate_percentage"`
	IsOverdue              *bool            `json:"is_overdue"`
	LastPaymentAmount      *decimal.Decimal `json:"last_payment_amount"`
	LastPaymentDate        *Date            `json:"last_payment_date"`
	// The outstanding balance on the last statement. Some institutions
	// report the next payment due here instead.
	LastStatementBalance   *decimal.Decimal `json:"last_statement_balance"`
	LastStatementIssueDate *Date            `json:"last_statement_issue_date"`
	// The type of loan, e.g. "Consolidation Loans".
	LoanName             *string           `json:"loan_name"`
	LoanStatus           StudentLoanStatus `json:"loan_status"`
	MinimumPaymentAmount *decimal.Decimal  `json:"minimum_payment_amount"`
	NextPaymentDueDate   *Date             `json:"next_payment_due_date"`
	OriginationDate      *Date             `json:"origination_date"`
	// The original principal balance of the loan.
	OriginationPrincipalAmount *decimal.Decimal `json:"origination_principal_amount"`
	// Accrued interest at origination. Some institutions fold this into
	// the current balance and return null.
	OriginationInterestAmount *decimal.Decimal `json:"origination_interest_amount"`
	// The account number payments should reference. Usually matches
	// AccountNumber but some servicers differ.
	PaymentReferenceNumber *string                  `json:"payment_reference_number"`
	PSLFStatus             PSLFStatus               `json:"pslf_status"`
	RepaymentPlan          StudentLoanRepaymentPlan `json:"repayment_plan"`
	// The sequence number of the loan. Not all servicers provide it.
	SequenceNumber   *string                    `json:"sequence_number"`
	ServicerAddress  StudentLoanServicerAddress `json:"servicer_address"`
	YTDInterestPaid  *decimal.Decimal           `json:"ytd_interest_paid"`
	YTDPrincipalPaid *decimal.Decimal           `json:"ytd_principal_paid"`
}

// Liabilities groups liability accounts by kind. A kind absent from the
// Item is nil rather than an empty slice.
type Liabilities struct {
	Credit   []CreditLiability      `json:"credit"`
	Mortgage []MortgageLiability    `json:"mortgage"`
	Student  []StudentLoanLiability `json:"student"`
}

// GetLiabilitiesOptions filters a GetLiabilities call. All fields are
// optional.
type GetLiabilitiesOptions struct {
	// AccountIDs restricts the response to the listed accounts.
	AccountIDs []string `json:"account_ids,omitempty"`
}

type getLiabilitiesRequest struct {
	ClientID    string                 `json:"client_id"`
	Secret      string                 `json:"secret"`
	AccessToken string                 `json:"access_token"`
	Options     *GetLiabilitiesOptions `json:"options,omitempty"`
}

// GetLiabilitiesResponse is the response to a GetLiabilities call.
type GetLiabilitiesResponse struct {
	RequestID   string      `json:"request_id"`
	Accounts    []Account   `json:"accounts"`
	Item        Item        `json:"item"`
	Liabilities Liabilities `json:"liabilities"`
}

// GetLiabilities returns details about an Item's loan and credit
// accounts: balances, due dates, loan terms, and account details such as
// the original loan amount and guarantor. Data refreshes approximately
// once per day.
func (c *Client) GetLiabilities(ctx context.Context, accessToken string, options *GetLiabilitiesOptions) (*GetLiabilitiesResponse, error) {
	return sendRequest[GetLiabilitiesResponse](ctx, c, "liabilities/get", &getLiabilitiesRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		Options:     options,
	})
}
