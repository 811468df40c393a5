package shared

import (
	"errors"
	"fmt"
	"math"
)

// MoedaPadrao is the currency every price in the system is denominated in.
const MoedaPadrao = "BRL"

// Money is an immutable value object. The amount is stored in the
// smallest currency unit (centavos) to avoid floating point drift.
type Money struct {
	amount   int64
	currency string
}

// NewMoney creates a Money value in the given currency.
func NewMoney(amount int64, currency string) Money {
	return Money{amount: amount, currency: currency}
}

// NewReais creates a BRL Money value from an amount in centavos.
func NewReais(centavos int64) Money {
	return Money{amount: centavos, currency: MoedaPadrao}
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() int64 { return m.amount }

// Currency returns the ISO currency code.
func (m Money) Currency() string { return m.currency }

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool { return m.amount > 0 }

// Add returns the sum of two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errors.New("cannot add money with different currencies")
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Multiply scales the amount by a quantity, guarding against overflow.
func (m Money) Multiply(quantity int) (Money, error) {
	q := int64(quantity)
	if q != 0 && (m.amount > math.MaxInt64/q || m.amount < math.MinInt64/q) {
		return Money{}, errors.New("money multiplication overflows")
	}
	return Money{amount: m.amount * q, currency: m.currency}, nil
}

// Equals reports whether two Money values are identical.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

// String renders the value as a decimal with two fraction digits.
func (m Money) String() string {
	sign := ""
	amount := m.amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, m.currency)
}
