// Package quantity provides a minimal unit-carrying numeric payload for
// computation traces: a float64 magnitude tagged with a single base unit
// raised to an integer exponent, such as "m^1" or "m^2". Multiplication
// and division combine exponents; addition and subtraction require equal
// units. It implements the capability set the cherry package expects from
// unit-aware payloads (Magnitude and Unit for serialization).
package quantity

import (
	"fmt"
	"math"
)

// Quantity is a magnitude with a unit.
type Quantity struct {
	value float64
	base  string
	exp   int
}

// New returns a quantity of the given base unit with exponent 1, such as
// 2 meters: New(2, "m").
func New(value float64, base string) Quantity {
	return Quantity{value: value, base: base, exp: 1}
}

// Dimensionless returns a bare number.
func Dimensionless(value float64) Quantity {
	return Quantity{value: value}
}

// Magnitude returns the numeric magnitude.
func (q Quantity) Magnitude() float64 { return q.value }

// Unit returns the unit symbol, "m^2" style, or "dimensionless" for bare
// numbers.
func (q Quantity) Unit() string {
	if q.exp == 0 || q.base == "" {
		return "dimensionless"
	}
	return fmt.Sprintf("%s^%d", q.base, q.exp)
}

func (q Quantity) String() string {
	if q.exp == 0 || q.base == "" {
		return fmt.Sprintf("%v", q.value)
	}
	return fmt.Sprintf("%v %s", q.value, q.Unit())
}

// Add returns q + o. The units must match.
func (q Quantity) Add(o Quantity) Quantity {
	mustMatch("add", q, o)
	q.value += o.value
	return q
}

// Sub returns q - o. The units must match.
func (q Quantity) Sub(o Quantity) Quantity {
	mustMatch("sub", q, o)
	q.value -= o.value
	return q
}

// Mul returns q * o, adding unit exponents: m^1 * m^1 = m^2.
func (q Quantity) Mul(o Quantity) Quantity {
	return combine(q, o, q.value*o.value, q.exp+o.exp)
}

// Div returns q / o, subtracting unit exponents: m^2 / m^1 = m^1.
// Division by a zero magnitude follows float64 semantics (Inf or NaN).
func (q Quantity) Div(o Quantity) Quantity {
	return combine(q, o, q.value/o.value, q.exp-o.exp)
}

// Floor returns the quantity with its magnitude rounded down.
func (q Quantity) Floor() Quantity {
	q.value = math.Floor(q.value)
	return q
}

// Equal reports whether two quantities have the same magnitude and unit.
func (q Quantity) Equal(o Quantity) bool {
	return q.value == o.value && q.Unit() == o.Unit()
}

// Less reports whether q is smaller than o. The units must match.
func (q Quantity) Less(o Quantity) bool {
	mustMatch("compare", q, o)
	return q.value < o.value
}

func mustMatch(op string, a, b Quantity) {
	if a.Unit() != b.Unit() {
		panic(fmt.Sprintf("quantity: cannot %s %s and %s", op, a.Unit(), b.Unit()))
	}
}

func combine(a, b Quantity, value float64, exp int) Quantity {
	base := a.base
	if base == "" {
		base = b.base
	} else if b.base != "" && b.base != a.base {
		panic(fmt.Sprintf("quantity: mixed base units %s and %s", a.base, b.base))
	}
	if exp == 0 {
		base = ""
	}
	return Quantity{value: value, base: base, exp: exp}
}
