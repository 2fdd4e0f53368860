package kernel

import "fmt"

// Money is an amount of Vietnamese dong. VND has no sub-units in circulation,
// so amounts are whole numbers.
type Money int64

// DiscountStep is the granularity discounts are rounded down to.
const DiscountStep Money = 1_000

func NewMoney(amount int64) Money {
	return Money(amount)
}

func (m Money) Int64() int64 {
	return int64(m)
}

func (m Money) IsPositive() bool {
	return m > 0
}

func (m Money) IsNegative() bool {
	return m < 0
}

// FloorTo rounds m down to a multiple of step. Negative amounts become 0.
func (m Money) FloorTo(step Money) Money {
	if m <= 0 {
		return 0
	}
	if step <= 0 {
		return m
	}
	return m - m%step
}

func (m Money) Min(other Money) Money {
	if other < m {
		return other
	}
	return m
}

// Sub subtracts other and clamps the result at zero.
func (m Money) Sub(other Money) Money {
	if other >= m {
		return 0
	}
	return m - other
}

func (m Money) String() string {
	return fmt.Sprintf("%d VND", int64(m))
}

// MoneyPtr converts a nullable column into a domain pointer.
func MoneyPtr(v *int64) *Money {
	if v == nil {
		return nil
	}
	m := Money(*v)
	return &m
}

// Int64Ptr is the inverse of MoneyPtr.
func Int64Ptr(m *Money) *int64 {
	if m == nil {
		return nil
	}
	v := int64(*m)
	return &v
}
