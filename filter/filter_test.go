package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunebank/plaid-go/plaid"
)

func testTransaction() plaid.Transaction {
	merchant := "Starbucks"
	city := "Seattle"
	iso := "USD"
	return plaid.Transaction{
		TransactionID:   "tx-1",
		AccountID:       "acc-1",
		Name:            "STARBUCKS STORE 1234",
		MerchantName:    &merchant,
		Amount:          decimal.NewFromFloat(6.33),
		ISOCurrencyCode: &iso,
		Date:            plaid.DateOf(time.Now().AddDate(0, 0, -3)),
		Pending:         false,
		PaymentChannel:  plaid.PaymentChannelInStore,
		Category:        []string{"Food and Drink", "Coffee Shop"},
		CategoryID:      "13005043",
		Location:        plaid.Location{City: &city},
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{
			name:       "simple comparison",
			expression: "Amount > 5",
		},
		{
			name:       "helper call",
			expression: `contains(Name, "starbucks")`,
		},
		{
			name:       "compound expression",
			expression: `Amount > 5 && !Pending && hasCategory("Coffee Shop")`,
		},
		{
			name:       "empty expression",
			expression: "",
			wantErr:    true,
		},
		{
			name:       "whitespace only",
			expression: "   ",
			wantErr:    true,
		},
		{
			name:       "syntax error",
			expression: "Amount >",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestFilterMatch(t *testing.T) {
	tx := testTransaction()

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{"amount above", "Amount > 5", true},
		{"amount below", "Amount > 10", false},
		{"name contains", `contains(Name, "starbucks")`, true},
		{"merchant name", `MerchantName == "Starbucks"`, true},
		{"not pending", "!Pending", true},
		{"category match", `hasCategory("Coffee Shop")`, true},
		{"category case-insensitive", `hasCategory("coffee shop")`, true},
		{"category miss", `hasCategory("Travel")`, false},
		{"channel helper", `inChannel("in store")`, true},
		{"debit", "isDebit()", true},
		{"credit", "isCredit()", false},
		{"recent date", "daysSince(Date) < 30", true},
		{"date comparison", "Date > daysAgo(7)", true},
		{"currency", `Currency == "USD"`, true},
		{"location", `City == "Seattle"`, true},
		{"compound", `Amount > 5 && hasCategory("Coffee Shop") && !Pending`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Match(tx))
		})
	}
}

func TestFilterApply(t *testing.T) {
	small := testTransaction()
	small.TransactionID = "tx-small"
	small.Amount = decimal.NewFromFloat(3.50)

	large := testTransaction()
	large.TransactionID = "tx-large"
	large.Amount = decimal.NewFromFloat(120)

	pending := testTransaction()
	pending.TransactionID = "tx-pending"
	pending.Amount = decimal.NewFromFloat(50)
	pending.Pending = true

	f, err := Compile("Amount > 10 && !Pending")
	require.NoError(t, err)

	matched := f.Apply([]plaid.Transaction{small, large, pending})
	require.Len(t, matched, 1)
	assert.Equal(t, "tx-large", matched[0].TransactionID)
}

func TestCompilerCache(t *testing.T) {
	c := NewCompiler()

	f1, err := c.Compile("Amount > 5")
	require.NoError(t, err)
	f2, err := c.Compile("Amount > 5")
	require.NoError(t, err)
	assert.Same(t, f1, f2)
	assert.Equal(t, 1, c.Size())

	_, err = c.Compile("Amount > 10")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())
}

func TestCompilerCacheBound(t *testing.T) {
	c := NewCompiler(WithCacheSize(2))

	_, err := c.Compile("Amount > 1")
	require.NoError(t, err)
	_, err = c.Compile("Amount > 2")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	// Hitting the bound resets the cache before inserting.
	_, err = c.Compile("Amount > 3")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Size())
}

func TestNilPointerFieldsAreEmpty(t *testing.T) {
	tx := testTransaction()
	tx.MerchantName = nil
	tx.Location.City = nil

	f, err := Compile(`MerchantName == "" && City == ""`)
	require.NoError(t, err)
	assert.True(t, f.Match(tx))
}
