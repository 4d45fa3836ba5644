// Package filter compiles boolean expressions over transactions using
// the expr language. Expressions see each transaction's fields plus a
// set of helper functions, e.g.
//
//	Amount > 50 && contains(Name, "coffee") && !Pending
//	daysSince(Date) < 30 && hasCategory("Travel")
package filter

import (
	"strings"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/lunebank/plaid-go/plaid"
)

// Filter is a compiled transaction predicate. It is safe for concurrent
// use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compiler compiles expressions into Filters, caching compiled programs
// by expression text.
type Compiler struct {
	mu    sync.Mutex
	cache map[string]*Filter
	// cap bounds the cache; zero means unbounded.
	cap int
}

// CompilerOption configures a Compiler.
type CompilerOption func(*Compiler)

// WithCacheSize bounds the number of compiled filters kept. When the
// bound is hit the cache is dropped wholesale; compilation is cheap
// enough that finer-grained eviction isn't worth the bookkeeping.
func WithCacheSize(n int) CompilerOption {
	return func(c *Compiler) {
		c.cap = n
	}
}

// NewCompiler creates a filter compiler.
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		cache: make(map[string]*Filter),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile parses and type-checks an expression. The expression must
// produce a boolean.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	c.mu.Lock()
	cached, ok := c.cache[expression]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		program:    program,
	}

	c.mu.Lock()
	if c.cap > 0 && len(c.cache) >= c.cap {
		c.cache = make(map[string]*Filter)
	}
	c.cache[expression] = f
	c.mu.Unlock()

	return f, nil
}

// Size returns the number of cached filters.
func (c *Compiler) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}

// Compile compiles an expression with a throwaway compiler.
func Compile(expression string) (*Filter, error) {
	return NewCompiler().Compile(expression)
}

// Expression returns the original expression text.
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one transaction. Evaluation errors
// (such as a type mismatch against an undefined variable) count as a
// non-match.
func (f *Filter) Match(tx plaid.Transaction) bool {
	result, err := expr.Run(f.program, environment(tx))
	if err != nil {
		return false
	}
	return result.(bool)
}

// Apply returns the transactions matching the filter, preserving order.
func (f *Filter) Apply(txs []plaid.Transaction) []plaid.Transaction {
	matched := make([]plaid.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Match(tx) {
			matched = append(matched, tx)
		}
	}
	return matched
}

// helperFunctions returns the functions available during compilation.
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	return env
}

func addHelperFunctions(env map[string]any) {
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["parseDate"] = func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["abs"] = func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}
	env["now"] = time.Now
}

// environment builds the evaluation environment for one transaction.
func environment(tx plaid.Transaction) map[string]any {
	env := make(map[string]any, 32)
	addHelperFunctions(env)

	// Decimal amounts are exposed as float64 so expressions can use
	// ordinary comparison operators. Filtering tolerates the rounding.
	amount, _ := tx.Amount.Float64()

	env["Transaction"] = tx
	env["TransactionID"] = tx.TransactionID
	env["AccountID"] = tx.AccountID
	env["Name"] = tx.Name
	env["MerchantName"] = stringOrEmpty(tx.MerchantName)
	env["Amount"] = amount
	env["Currency"] = tx.Money().CurrencyCode
	env["Date"] = tx.Date.Time
	env["Pending"] = tx.Pending
	env["Channel"] = string(tx.PaymentChannel)
	env["Category"] = tx.Category
	env["CategoryID"] = tx.CategoryID
	env["City"] = stringOrEmpty(tx.Location.City)
	env["Region"] = stringOrEmpty(tx.Location.Region)
	env["Country"] = stringOrEmpty(tx.Location.Country)

	env["hasCategory"] = hasCategoryFunc(tx.Category)
	// Plaid reports outflows as positive and inflows as negative.
	env["isDebit"] = func() bool { return amount > 0 }
	env["isCredit"] = func() bool { return amount < 0 }
	env["inChannel"] = func(channel string) bool {
		return strings.EqualFold(string(tx.PaymentChannel), channel)
	}

	return env
}

func hasCategoryFunc(categories []string) func(string) bool {
	lowered := make([]string, len(categories))
	for i, c := range categories {
		lowered[i] = strings.ToLower(c)
	}
	return func(name string) bool {
		target := strings.ToLower(name)
		for _, c := range lowered {
			if c == target {
				return true
			}
		}
		return false
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
