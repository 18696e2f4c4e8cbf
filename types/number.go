// Package types provides the exact-decimal scalar types that every other
// package in this module builds on: a saturating fixed-scale Number and the
// Money/Vat/Kwh/Kw/Ampere/duration newtypes derived from it.
package types

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// DisplayScale is the number of decimal places Number and its derived types
// normalize to on deserialization and display.
const DisplayScale = 4

// maxNumber/minNumber bound saturating arithmetic. They mirror the
// practical range of rust_decimal's 96-bit mantissa used by the reference
// implementation; values never legitimately approach them in a tariff
// calculation, so the bound only matters as a panic-free overflow backstop.
var (
	maxNumber = decimal.RequireFromString("79228162514264337593543950335")
	minNumber = maxNumber.Neg()
)

// Number is an exact signed decimal with saturating addition, subtraction
// and multiplication. Division is not saturating: every divisor used
// internally by this module is a proven-nonzero constant (1000, 3_600_000,
// a step_size already checked against zero), so a saturating division would
// only mask a bug.
type Number struct {
	d decimal.Decimal
}

// NumberFromInt builds a Number from an integer value.
func NumberFromInt(v int64) Number {
	return Number{d: decimal.NewFromInt(v)}
}

// NumberFromFloat builds a Number from a float64, for use with literal
// constants in code and tests. Not used for parsing untrusted input.
func NumberFromFloat(v float64) Number {
	return Number{d: decimal.NewFromFloat(v)}
}

// Zero is the additive identity.
func Zero() Number {
	return Number{}
}

// Ceil rounds up to the nearest integer.
func (n Number) Ceil() Number {
	return Number{d: n.d.Ceil()}
}

// WithScale rescales to DisplayScale decimal places, as OCPI display and
// round-trip comparisons expect.
func (n Number) WithScale() Number {
	return Number{d: n.d.Round(DisplayScale)}
}

// Decimal exposes the underlying decimal.Decimal for callers in this module
// that need shopspring/decimal operations not wrapped here (e.g. Div).
func (n Number) Decimal() decimal.Decimal {
	return n.d
}

// IsZero reports whether the number is exactly zero.
func (n Number) IsZero() bool {
	return n.d.IsZero()
}

// Sign returns -1, 0 or 1.
func (n Number) Sign() int {
	return n.d.Sign()
}

// Cmp compares n to rhs, returning -1, 0 or 1.
func (n Number) Cmp(rhs Number) int {
	return n.d.Cmp(rhs.d)
}

func clamp(d decimal.Decimal) decimal.Decimal {
	if d.GreaterThan(maxNumber) {
		return maxNumber
	}
	if d.LessThan(minNumber) {
		return minNumber
	}
	return d
}

// Add saturates at the representable bounds instead of overflowing.
func (n Number) Add(rhs Number) Number {
	return Number{d: clamp(n.d.Add(rhs.d))}
}

// Sub saturates at the representable bounds instead of overflowing.
func (n Number) Sub(rhs Number) Number {
	return Number{d: clamp(n.d.Sub(rhs.d))}
}

// Mul saturates at the representable bounds instead of overflowing.
func (n Number) Mul(rhs Number) Number {
	return Number{d: clamp(n.d.Mul(rhs.d))}
}

// Div is plain decimal division; see the saturation note on Number.
func (n Number) Div(rhs Number) Number {
	return Number{d: n.d.DivRound(rhs.d, 16)}
}

var (
	maxInt64Dec = decimal.NewFromInt(math.MaxInt64)
	minInt64Dec = decimal.NewFromInt(math.MinInt64)
)

// Int64 converts to an int64, reporting ok=false on overflow.
func (n Number) Int64() (v int64, ok bool) {
	bi := n.d.Round(0)
	if bi.GreaterThan(maxInt64Dec) || bi.LessThan(minInt64Dec) {
		return 0, false
	}
	return bi.IntPart(), true
}

func (n Number) String() string {
	return n.d.StringFixed(DisplayScale)
}

// MarshalJSON renders the number rescaled to DisplayScale places, matching
// the reference implementation's deserialize-then-rescale behavior applied
// symmetrically on the way out.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.d.StringFixed(DisplayScale)), nil
}

// UnmarshalJSON parses a JSON number or numeric string and immediately
// rescales to DisplayScale, mirroring Number's custom Deserialize impl in
// the original implementation.
func (n *Number) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	n.d = d.Round(DisplayScale)
	return nil
}
