package plaid

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component, encoded on the wire as
// YYYY-MM-DD. Plaid uses it for transaction dates, statement dates and the
// like, distinct from RFC 3339 timestamps which decode into time.Time.
type Date struct {
	time.Time
}

// NewDate builds a Date from a year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// MarshalJSON encodes the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON decodes a "YYYY-MM-DD" string. A JSON null leaves the date
// unset rather than failing the decode.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a JSON string, got %s", s)
	}
	t, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// Amount pairs a monetary value with the currency it is denominated in.
// Plaid always reports a currency code alongside an amount, so amounts are
// surfaced as this pair rather than as bare numbers.
type Amount struct {
	Value decimal.Decimal
	// CurrencyCode is the ISO-4217 code, or an institution-specific code
	// when Unofficial is true. Empty when the institution reported neither.
	CurrencyCode string
	// Unofficial is true when CurrencyCode is not an ISO-4217 code.
	Unofficial bool
}

// String formats the amount with its currency code.
func (a Amount) String() string {
	if a.CurrencyCode == "" {
		return a.Value.String()
	}
	return a.Value.String() + " " + a.CurrencyCode
}

// newAmount pairs a value with whichever currency code the institution
// reported. iso and unofficial are mutually exclusive upstream.
func newAmount(value decimal.Decimal, iso, unofficial *string) Amount {
	switch {
	case iso != nil:
		return Amount{Value: value, CurrencyCode: *iso}
	case unofficial != nil:
		return Amount{Value: value, CurrencyCode: *unofficial, Unofficial: true}
	}
	return Amount{Value: value}
}
