package types

import "encoding/json"

// Money is a Number interpreted as a currency-units amount. The currency
// itself is tracked alongside the tariff/CDR it came from, not on the value.
type Money struct {
	n Number
}

// ZeroMoney is the additive identity.
func ZeroMoney() Money {
	return Money{}
}

// MoneyFromFloat builds a Money value from a float64 literal, for tests and
// call sites constructing fixtures rather than parsing untrusted input.
func MoneyFromFloat(v float64) Money {
	return Money{n: NumberFromFloat(v)}
}

// WithScale rescales to DisplayScale decimal places.
func (m Money) WithScale() Money {
	return Money{n: m.n.WithScale()}
}

// Number exposes the underlying Number.
func (m Money) Number() Number {
	return m.n
}

// Add saturates, see Number.Add.
func (m Money) Add(rhs Money) Money {
	return Money{n: m.n.Add(rhs.n)}
}

// MulNumber multiplies by a dimensionless Number (used for the flat
// dimension, which has no natural unit of its own).
func (m Money) MulNumber(rhs Number) Money {
	return Money{n: m.n.Mul(rhs)}
}

// MulKwh prices a Kwh volume.
func (m Money) MulKwh(rhs Kwh) Money {
	return Money{n: m.n.Mul(rhs.n)}
}

// MulHours prices an HoursDecimal volume, matching the reference
// implementation's direct millisecond-to-hour conversion rather than
// routing through AsHoursDecimal (avoids an intermediate rounding step).
func (m Money) MulHours(rhs HoursDecimal) Money {
	hours := NumberFromInt(rhs.millis).Div(NumberFromInt(3_600_000))
	return Money{n: m.n.Mul(hours)}
}

// MulVat applies a VAT percentage: result = money * (1 + vat/100).
func (m Money) MulVat(v Vat) Money {
	fraction := v.n.Div(NumberFromInt(100)).Add(NumberFromInt(1))
	return Money{n: m.n.Mul(fraction)}
}

func (m Money) Equal(rhs Money) bool {
	return m.n.Cmp(rhs.n) == 0
}

func (m Money) String() string {
	return m.n.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.n.MarshalJSON()
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.n.UnmarshalJSON(data)
}

// Vat is a Number interpreted as a percentage.
type Vat struct {
	n Number
}

// VatFromFloat builds a Vat percentage from a float64 literal.
func VatFromFloat(v float64) Vat {
	return Vat{n: NumberFromFloat(v)}
}

func (v Vat) String() string {
	return v.n.String()
}

func (v Vat) MarshalJSON() ([]byte, error) {
	return v.n.MarshalJSON()
}

func (v *Vat) UnmarshalJSON(data []byte) error {
	return v.n.UnmarshalJSON(data)
}

// CompatibilityVat models the three VAT states a price component can carry:
// unknown (the component came from a 2.1.1 tariff with no VAT concept at
// all), none (VAT explicitly does not apply), or a concrete percentage.
// It deliberately cannot be constructed as Unknown from ordinary OCPI 2.2.1
// JSON — only the 2.1.1 compatibility adapter produces that state.
type CompatibilityVat struct {
	unknown bool
	vat     *Vat
}

// VatUnknown marks VAT as unrecoverable (2.1.1 provenance).
func VatUnknown() CompatibilityVat {
	return CompatibilityVat{unknown: true}
}

// VatNone marks VAT as explicitly not applicable.
func VatNone() CompatibilityVat {
	return CompatibilityVat{}
}

// VatOf marks a concrete VAT percentage.
func VatOf(v Vat) CompatibilityVat {
	return CompatibilityVat{vat: &v}
}

// IsUnknown reports whether VAT could not be determined.
func (c CompatibilityVat) IsUnknown() bool {
	return c.unknown
}

// Value returns the concrete VAT percentage and true, or false if VAT is
// unknown or explicitly absent.
func (c CompatibilityVat) Value() (Vat, bool) {
	if c.unknown || c.vat == nil {
		return Vat{}, false
	}
	return *c.vat, true
}

func (c CompatibilityVat) MarshalJSON() ([]byte, error) {
	if c.unknown {
		return []byte("null"), nil
	}
	if c.vat == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*c.vat)
}

// UnmarshalJSON always produces a concrete Vat-or-None state: ordinary OCPI
// JSON has no way to spell "Unknown", matching the reference
// implementation's custom Deserialize for CompatibilityVat.
func (c *CompatibilityVat) UnmarshalJSON(data []byte) error {
	var raw *Vat
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*c = VatNone()
		return nil
	}
	*c = VatOf(*raw)
	return nil
}

// Price is a value including VAT, and a value excluding VAT.
type Price struct {
	// ExclVat is the price excluding VAT.
	ExclVat Money
	// InclVat is the price including VAT. It is nil iff VAT is Unknown; it
	// equals ExclVat when VAT is explicitly absent.
	InclVat *Money
}

// ZeroPrice is the additive identity, with InclVat present (VAT known-none).
func ZeroPrice() Price {
	zero := ZeroMoney()
	return Price{ExclVat: ZeroMoney(), InclVat: &zero}
}

// WithScale rescales both components to DisplayScale decimal places.
func (p Price) WithScale() Price {
	out := Price{ExclVat: p.ExclVat.WithScale()}
	if p.InclVat != nil {
		incl := p.InclVat.WithScale()
		out.InclVat = &incl
	}
	return out
}

// Add combines two prices; InclVat is nil if either side's is nil.
func (p Price) Add(rhs Price) Price {
	out := Price{ExclVat: p.ExclVat.Add(rhs.ExclVat)}
	if p.InclVat != nil && rhs.InclVat != nil {
		incl := p.InclVat.Add(*rhs.InclVat)
		out.InclVat = &incl
	}
	return out
}

type priceJSON struct {
	ExclVat Money  `json:"excl_vat"`
	InclVat *Money `json:"incl_vat,omitempty"`
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(priceJSON{ExclVat: p.ExclVat, InclVat: p.InclVat})
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var raw priceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.ExclVat = raw.ExclVat
	p.InclVat = raw.InclVat
	return nil
}
