// Package tariff holds the pricing engine's internal tariff
// representation: a flattened, restriction-evaluable form of an ocpi.Tariff
// distinct from the wire shape, so selection logic never has to re-walk
// JSON-shaped optionals.
package tariff

import (
	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/restriction"
	"github.com/tandemdrive/ocpi-tariffs/session"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// Tariff is the pricing engine's view of one tariff: its validity window
// and its ordered elements.
type Tariff struct {
	ID            string
	elements      []element
	startDateTime *types.DateTime
	endDateTime   *types.DateTime
}

// New builds a Tariff from its wire representation.
func New(t ocpi.Tariff) Tariff {
	elements := make([]element, len(t.Elements))
	for i, e := range t.Elements {
		elements[i] = newElement(e, i)
	}

	return Tariff{
		ID:            t.ID,
		elements:      elements,
		startDateTime: t.StartDateTime,
		endDateTime:   t.EndDateTime,
	}
}

// IsActive reports whether this tariff's validity window contains
// startTime. An absent bound is unbounded on that side.
func (t Tariff) IsActive(startTime types.DateTime) bool {
	isAfterStart := t.startDateTime == nil || !startTime.Before(*t.startDateTime)
	isBeforeEnd := t.endDateTime == nil || startTime.Before(*t.endDateTime)
	return isAfterStart && isBeforeEnd
}

// ActiveComponents walks this tariff's elements in order and, for each of
// the four dimensions independently, returns the first element's
// component that is active at period's start instant. It stops scanning
// once all four dimensions are filled.
func (t Tariff) ActiveComponents(period session.ChargePeriod) PriceComponents {
	var components PriceComponents

	for _, el := range t.elements {
		if !el.isActive(period) {
			continue
		}

		if components.Time == nil {
			components.Time = el.components.Time
		}
		if components.Parking == nil {
			components.Parking = el.components.Parking
		}
		if components.Energy == nil {
			components.Energy = el.components.Energy
		}
		if components.Flat == nil {
			components.Flat = el.components.Flat
		}

		if components.HasAll() {
			break
		}
	}

	return components
}

// element bundles the restrictions and price components of one tariff
// element, unexported because nothing outside this package needs to
// address an element directly — only Tariff.ActiveComponents walks them.
type element struct {
	restrictions []restriction.Restriction
	components   PriceComponents
}

func newElement(e ocpi.TariffElement, elementIndex int) element {
	var restrictions []restriction.Restriction
	if e.Restrictions != nil {
		restrictions = restriction.Collect(e.Restrictions)
	}

	var components PriceComponents
	for _, c := range e.PriceComponents {
		pc := newPriceComponent(c, elementIndex)
		switch c.Type {
		case ocpi.DimensionFlat:
			if components.Flat == nil {
				components.Flat = &pc
			}
		case ocpi.DimensionTime:
			if components.Time == nil {
				components.Time = &pc
			}
		case ocpi.DimensionParkingTime:
			if components.Parking == nil {
				components.Parking = &pc
			}
		case ocpi.DimensionEnergy:
			if components.Energy == nil {
				components.Energy = &pc
			}
		}
	}

	return element{restrictions: restrictions, components: components}
}

// isActive reports whether e applies at period's start instant: every
// restriction must hold in exclusive-at-start instant mode, and every
// period restriction must hold against the period's constant data.
func (e element) isActive(period session.ChargePeriod) bool {
	for _, r := range e.restrictions {
		if !r.InstantValidityExclusive(period.StartInstant) {
			return false
		}
		if !r.PeriodValidity(period.PeriodData) {
			return false
		}
	}
	return true
}

// PriceComponents holds at most one active component per dimension.
type PriceComponents struct {
	Flat    *PriceComponent
	Energy  *PriceComponent
	Parking *PriceComponent
	Time    *PriceComponent
}

// HasAll reports whether every dimension has a component, letting
// Tariff.ActiveComponents stop scanning early.
func (c PriceComponents) HasAll() bool {
	return c.Flat != nil && c.Energy != nil && c.Parking != nil && c.Time != nil
}

// PriceComponent is the engine-internal view of an ocpi.PriceComponent,
// additionally tagging which tariff element (by index) it came from.
type PriceComponent struct {
	TariffElementIndex int
	Price              types.Money
	Vat                types.CompatibilityVat
	StepSize           uint64
}

func newPriceComponent(c ocpi.PriceComponent, tariffElementIndex int) PriceComponent {
	return PriceComponent{
		TariffElementIndex: tariffElementIndex,
		Price:              c.Price,
		Vat:                c.Vat,
		StepSize:           c.StepSize,
	}
}
