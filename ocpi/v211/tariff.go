// Package v211 adapts OCPI 2.1.1 Tariff/CDR documents to the 2.2.1 shapes
// the pricing engine consumes. This is the one piece of "external
// collaborator" territory (spec.md §1 scopes the 2.1.1->2.2.1 translator
// out of the algorithmic core) that ships as a concrete, tested package
// here, because spec.md §6.3 pins its exact field-level behavior and
// spec.md §8's round-trip testable property depends on it existing.
package v211

import (
	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// Tariff is a 2.1.1 tariff: the same shape as 2.2.1's, minus min/max price
// and minus VAT on each price component (2.1.1 has no VAT concept).
type Tariff struct {
	ID            string          `json:"id"`
	Currency      string          `json:"currency"`
	Elements      []TariffElement `json:"elements"`
	StartDateTime *types.DateTime `json:"start_date_time,omitempty"`
	EndDateTime   *types.DateTime `json:"end_date_time,omitempty"`
}

// PriceComponent is a 2.1.1 price component: no vat field.
type PriceComponent struct {
	Type     ocpi.TariffDimensionType `json:"type"`
	Price    types.Money              `json:"price"`
	StepSize uint64                   `json:"step_size"`
}

// TariffElement is a 2.1.1 tariff element.
type TariffElement struct {
	PriceComponents []PriceComponent        `json:"price_components"`
	Restrictions    *ocpi.TariffRestriction  `json:"restrictions,omitempty"`
}

// ToV221 upgrades a 2.1.1 tariff to 2.2.1, tagging every price component's
// VAT as Unknown per spec.md §6.3 — 2.1.1 carries no VAT information at
// all, so "unknown" (rather than "none") is the only honest translation.
func (t Tariff) ToV221() ocpi.Tariff {
	elements := make([]ocpi.TariffElement, len(t.Elements))
	for i, e := range t.Elements {
		elements[i] = e.toV221()
	}
	return ocpi.Tariff{
		ID:            t.ID,
		Currency:      t.Currency,
		Elements:      elements,
		StartDateTime: t.StartDateTime,
		EndDateTime:   t.EndDateTime,
	}
}

func (e TariffElement) toV221() ocpi.TariffElement {
	components := make([]ocpi.PriceComponent, len(e.PriceComponents))
	for i, c := range e.PriceComponents {
		components[i] = ocpi.PriceComponent{
			Type:     c.Type,
			Price:    c.Price,
			StepSize: c.StepSize,
			Vat:      types.VatUnknown(),
		}
	}
	return ocpi.TariffElement{
		PriceComponents: components,
		Restrictions:    e.Restrictions,
	}
}
