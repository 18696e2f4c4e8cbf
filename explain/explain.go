// Package explain renders a tariff's elements and restrictions as
// human-readable strings, for diagnostics and documentation rather than
// pricing.
package explain

import (
	"fmt"

	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// Explain is the human-readable rendering of a whole tariff.
type Explain struct {
	Elements []Element
}

// Element is one tariff element's restrictions and priced dimensions.
type Element struct {
	Restrictions []string
	Components   Components
}

// Components holds the rescaled price of each dimension present in an
// element; a nil field means that dimension is absent.
type Components struct {
	Energy      *types.Money
	Flat        *types.Money
	Time        *types.Money
	ParkingTime *types.Money
}

// Tariff renders every element of t.
func Tariff(t ocpi.Tariff) Explain {
	elements := make([]Element, 0, len(t.Elements))

	for _, element := range t.Elements {
		var components Components

		for _, c := range element.PriceComponents {
			price := c.Price.WithScale()
			switch c.Type {
			case ocpi.DimensionFlat:
				components.Flat = &price
			case ocpi.DimensionTime:
				components.Time = &price
			case ocpi.DimensionEnergy:
				components.Energy = &price
			case ocpi.DimensionParkingTime:
				components.ParkingTime = &price
			}
		}

		var restrictions []string
		if element.Restrictions != nil {
			restrictions = Restrictions(element.Restrictions)
		}

		elements = append(elements, Element{Restrictions: restrictions, Components: components})
	}

	return Explain{Elements: elements}
}

// Restrictions renders r's constraints as a list of human-readable
// clauses, one per constrained axis among energy, time of day, session
// duration and date. Current, power, day-of-week and reservation
// restrictions are not rendered.
func Restrictions(r *ocpi.TariffRestriction) []string {
	var out []string

	switch {
	case r.MinKwh != nil && r.MaxKwh != nil:
		out = append(out, fmt.Sprintf("total energy is between %s and %s kWh", r.MinKwh, r.MaxKwh))
	case r.MinKwh != nil:
		out = append(out, fmt.Sprintf("total energy exceeds %s kWh", r.MinKwh))
	case r.MaxKwh != nil:
		out = append(out, fmt.Sprintf("total energy is less than %s kWh", r.MaxKwh))
	}

	switch {
	case r.StartTime != nil && r.EndTime != nil:
		out = append(out, fmt.Sprintf("between %s and %s", r.StartTime, r.EndTime))
	case r.StartTime != nil:
		out = append(out, fmt.Sprintf("after %s", r.StartTime))
	case r.EndTime != nil:
		out = append(out, fmt.Sprintf("before %s", r.EndTime))
	}

	switch {
	case r.MinDuration != nil && r.MaxDuration != nil:
		out = append(out, fmt.Sprintf("session duration is between %s and %s hours", hours(r.MinDuration), hours(r.MaxDuration)))
	case r.MinDuration != nil:
		out = append(out, fmt.Sprintf("session duration exceeds %s hours", hours(r.MinDuration)))
	case r.MaxDuration != nil:
		out = append(out, fmt.Sprintf("session duration is less than %s hours", hours(r.MaxDuration)))
	}

	switch {
	case r.StartDate != nil && r.EndDate != nil:
		out = append(out, fmt.Sprintf("between %s and %s", r.StartDate, r.EndDate))
	case r.StartDate != nil:
		out = append(out, fmt.Sprintf("after %s", r.StartDate))
	case r.EndDate != nil:
		out = append(out, fmt.Sprintf("before %s", r.EndDate))
	}

	return out
}

func hours(d *types.SecondsRound) string {
	return types.HoursFromDuration(d.Duration()).AsHoursDecimal().WithScale().String()
}
