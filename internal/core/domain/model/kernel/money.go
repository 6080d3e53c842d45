package kernel

import (
	"fmt"
	"math"
)

// Money is a euro amount. It is a plain value type rather than a guarded
// object because the zero amount is a legitimate price (a LocalAgent
// delivery has no fee); arithmetic results are normalized with Round2
// before they are stored or compared.
type Money float64

// Round2 rounds to two decimal places using standard rounding.
// All monetary values leaving the pricing engine go through this; money
// is never truncated silently.
func (m Money) Round2() Money {
	return Money(math.Round(float64(m)*100) / 100)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// MulFactor returns the amount scaled by the given factor.
func (m Money) MulFactor(factor float64) Money {
	return Money(float64(m) * factor)
}

// Float64 returns the raw amount.
func (m Money) Float64() float64 {
	return float64(m)
}

// String formats the amount with two decimals, e.g. "29.99".
func (m Money) String() string {
	return fmt.Sprintf("%.2f", float64(m))
}
