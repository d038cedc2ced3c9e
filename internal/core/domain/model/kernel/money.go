package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Money is a non-negative currency amount in cents.
type Money struct {
	cents int64
}

// Zero is the empty amount charged for an unselected add-on.
var Zero = Money{}

// NewMoney builds an amount from cents.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents, 0, "unbounded")
	}
	return Money{cents: cents}, nil
}

// MustMoney is NewMoney for constants; it panics on a negative amount.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// PerWeight charges m per kilogram for quantity loads of weight w.
// Half a cent rounds up; the fixed catalog rates never produce a remainder.
func (m Money) PerWeight(w Weight, quantity int) Money {
	raw := m.cents * int64(w.Hundredths()) * int64(quantity)
	return Money{cents: (raw + 50) / 100}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimals, e.g. "1890.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
