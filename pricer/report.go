package pricer

import (
	"github.com/google/uuid"

	"github.com/tandemdrive/ocpi-tariffs/tariff"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// Report is a charge session priced against the tariff selected by
// BuildReport. Fields prefixed Total correspond to the CDR fields of the
// same name.
type Report struct {
	// ID identifies this report for correlation in logs and downstream
	// systems; it is generated fresh by BuildReport and has no relation to
	// any OCPI identifier.
	ID uuid.UUID
	// Periods holds the session details per period.
	Periods []PeriodReport
	// TariffIndex is the index into the supplied tariff list of the tariff
	// that was found active.
	TariffIndex int

	TotalCost Price

	TotalTime            types.HoursDecimal
	TotalChargingTime     types.HoursDecimal
	BilledChargingTime    types.HoursDecimal
	TotalTimeCost        Price

	TotalParkingTime     types.HoursDecimal
	BilledParkingTime    types.HoursDecimal
	TotalParkingCost     Price

	TotalEnergy   types.Kwh
	BilledEnergy  types.Kwh
	TotalEnergyCost Price

	TotalFixedCost       Price
	TotalReservationCost Price
}

// Price is a local alias kept for symmetry with the rest of this package's
// naming; it is the same shape as types.Price.
type Price = types.Price

// PeriodReport is the priced detail of a single charging period.
type PeriodReport struct {
	StartDateTime types.DateTime
	EndDateTime   types.DateTime
	Dimensions    Dimensions
}

// Cost sums the cost of all four dimensions in this period.
func (p PeriodReport) Cost() Price {
	return p.Dimensions.Time.Cost().
		Add(p.Dimensions.Parking.Cost()).
		Add(p.Dimensions.Flat.Cost()).
		Add(p.Dimensions.Energy.Cost())
}

// Dimensions bundles the four billing dimensions for one period.
type Dimensions struct {
	Flat    FlatDimension
	Energy  EnergyDimension
	Time    TimeDimension
	Parking ParkingDimension
}

func newDimensions(components tariff.PriceComponents, data PeriodVolumes) Dimensions {
	return Dimensions{
		Flat:    FlatDimension{Price: components.Flat, Present: true},
		Energy:  EnergyDimension{Price: components.Energy, Volume: data.Energy, BilledVolume: data.Energy},
		Time:    TimeDimension{Price: components.Time, Volume: data.Time, BilledVolume: data.Time},
		Parking: ParkingDimension{Price: components.Parking, Volume: data.Parking, BilledVolume: data.Parking},
	}
}

// PeriodVolumes is the raw, unbilled per-dimension volume read off a
// period's constant data.
type PeriodVolumes struct {
	Energy  *types.Kwh
	Time    *types.HoursDecimal
	Parking *types.HoursDecimal
}

// costOfVolume computes a Price from an excl-VAT money amount and the
// component's VAT state.
func costOfVolume(exclVat types.Money, vat types.CompatibilityVat) Price {
	if vat.IsUnknown() {
		return Price{ExclVat: exclVat}
	}
	if p, ok := vat.Value(); ok {
		incl := exclVat.MulVat(p)
		return Price{ExclVat: exclVat, InclVat: &incl}
	}
	return Price{ExclVat: exclVat, InclVat: &exclVat}
}

// FlatDimension is the one-time flat fee. It carries no volume: its cost
// is simply the component's price, charged at most once per session (see
// Pricer.BuildReport's flat-fee dedup).
type FlatDimension struct {
	Price *tariff.PriceComponent
	// Present is false once flat-fee dedup has dropped this period's flat
	// component because an earlier period already charged it.
	Present bool
}

func (d FlatDimension) Cost() Price {
	if d.Price == nil || !d.Present {
		return types.ZeroPrice()
	}
	return costOfVolume(d.Price.Price, d.Price.Vat)
}

// EnergyDimension is the kWh dimension.
type EnergyDimension struct {
	Price        *tariff.PriceComponent
	Volume       *types.Kwh
	BilledVolume *types.Kwh
}

func (d EnergyDimension) Cost() Price {
	if d.Price == nil || d.BilledVolume == nil {
		return types.ZeroPrice()
	}
	return costOfVolume(d.Price.Price.MulKwh(*d.BilledVolume), d.Price.Vat)
}

// TimeDimension is the charging-time dimension.
type TimeDimension struct {
	Price        *tariff.PriceComponent
	Volume       *types.HoursDecimal
	BilledVolume *types.HoursDecimal
}

func (d TimeDimension) Cost() Price {
	if d.Price == nil || d.BilledVolume == nil {
		return types.ZeroPrice()
	}
	return costOfVolume(d.Price.Price.MulHours(*d.BilledVolume), d.Price.Vat)
}

// ParkingDimension is the parking-time dimension.
type ParkingDimension struct {
	Price        *tariff.PriceComponent
	Volume       *types.HoursDecimal
	BilledVolume *types.HoursDecimal
}

func (d ParkingDimension) Cost() Price {
	if d.Price == nil || d.BilledVolume == nil {
		return types.ZeroPrice()
	}
	return costOfVolume(d.Price.Price.MulHours(*d.BilledVolume), d.Price.Vat)
}
