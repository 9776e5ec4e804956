package kernel

import (
	"fmt"

	"bundling/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative, currency-agnostic
// monetary amount. It wraps shopspring/decimal to avoid the rounding surprises
// of binary floating point when summing prices across deeply nested bundles.
//
// The zero value of Money is a valid amount of 0.00, so Money can be used
// directly as an accumulator:
//
//	var total kernel.Money
//	for _, p := range prices {
//	    total = total.Add(p)
//	}
//
// Money is immutable and safe for concurrent use.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Returns a validation error if the amount is negative.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromFloat(25.99))
//	if err != nil {
//	    return err
//	}
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount),
		)
	}

	return Money{amount: amount}, nil
}

// MoneyFromString parses a Money from its decimal string representation,
// e.g. "25.99". Returns an error for malformed or negative input.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}

	return NewMoney(amount)
}

// MoneyFromFloat64 creates a Money from a float64 amount.
// Returns an error for negative input. Intended for API boundaries where
// amounts arrive as JSON numbers; internal code should prefer NewMoney.
func MoneyFromFloat64(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// ZeroMoney returns a Money of 0.00.
func ZeroMoney() Money {
	return Money{}
}

// Add returns the sum of two amounts. Money is non-negative by construction,
// so the sum never underflows.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Div returns the amount divided by n, rounded to 2 decimal places.
// n must be positive; callers guard against division by zero.
func (m Money) Div(n int) Money {
	return Money{amount: m.amount.Div(decimal.NewFromInt(int64(n))).Round(2)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts numerically, ignoring trailing zeros
// (1.5 equals 1.50).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly two decimal places and no
// currency symbol, e.g. "120.98". This format is part of the description
// contract consumed by report renderers.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
