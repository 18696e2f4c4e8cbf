package types

// Kwh is energy consumed, in kilowatt-hours.
type Kwh struct {
	n Number
}

// ZeroKwh is the additive identity.
func ZeroKwh() Kwh {
	return Kwh{}
}

// KwhFromFloat builds a Kwh value from a float64 literal.
func KwhFromFloat(v float64) Kwh {
	return Kwh{n: NumberFromFloat(v)}
}

// WattHours converts to Wh (kWh * 1000), the unit step_size is expressed in
// for the energy dimension.
func (k Kwh) WattHours() Number {
	return k.n.Mul(NumberFromInt(1000))
}

// KwhFromWattHours is the inverse of WattHours.
func KwhFromWattHours(wh Number) Kwh {
	return Kwh{n: wh.Div(NumberFromInt(1000))}
}

// Number exposes the underlying Number.
func (k Kwh) Number() Number {
	return k.n
}

func (k Kwh) WithScale() Kwh {
	return Kwh{n: k.n.WithScale()}
}

func (k Kwh) Add(rhs Kwh) Kwh {
	return Kwh{n: k.n.Add(rhs.n)}
}

func (k Kwh) Sub(rhs Kwh) Kwh {
	return Kwh{n: k.n.Sub(rhs.n)}
}

func (k Kwh) Cmp(rhs Kwh) int {
	return k.n.Cmp(rhs.n)
}

func (k Kwh) String() string {
	return k.n.String()
}

func (k Kwh) MarshalJSON() ([]byte, error) {
	return k.n.MarshalJSON()
}

func (k *Kwh) UnmarshalJSON(data []byte) error {
	return k.n.UnmarshalJSON(data)
}

// Kw is power, in kilowatts.
type Kw struct {
	n Number
}

func KwFromFloat(v float64) Kw {
	return Kw{n: NumberFromFloat(v)}
}

func (k Kw) Number() Number {
	return k.n
}

func (k Kw) Cmp(rhs Kw) int {
	return k.n.Cmp(rhs.n)
}

func (k Kw) String() string {
	return k.n.String()
}

func (k Kw) MarshalJSON() ([]byte, error) {
	return k.n.MarshalJSON()
}

func (k *Kw) UnmarshalJSON(data []byte) error {
	return k.n.UnmarshalJSON(data)
}

// Ampere is electrical current.
type Ampere struct {
	n Number
}

func AmpereFromFloat(v float64) Ampere {
	return Ampere{n: NumberFromFloat(v)}
}

func (a Ampere) Number() Number {
	return a.n
}

func (a Ampere) Cmp(rhs Ampere) int {
	return a.n.Cmp(rhs.n)
}

func (a Ampere) String() string {
	return a.n.String()
}

func (a Ampere) MarshalJSON() ([]byte, error) {
	return a.n.MarshalJSON()
}

func (a *Ampere) UnmarshalJSON(data []byte) error {
	return a.n.UnmarshalJSON(data)
}
