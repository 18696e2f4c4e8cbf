// Package pricer drives period-by-period tariff-element selection,
// volume aggregation, step-size rounding, and cost computation, producing
// a Report for one charge session.
package pricer

import (
	"time"

	"github.com/google/uuid"

	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/session"
	"github.com/tandemdrive/ocpi-tariffs/tariff"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// Pricer prices one CDR. Construct with New, optionally refine with
// WithTariffs/WithTimeZone/DetectTimeZone/WithCountryZoneResolver, then
// call BuildReport.
type Pricer struct {
	cdr        ocpi.Cdr
	tariffs    []ocpi.Tariff
	zone       *time.Location
	detectZone bool
	resolver   CountryZoneResolver
}

// New builds a Pricer that prices cdr against its own embedded tariffs.
func New(cdr ocpi.Cdr) Pricer {
	return Pricer{cdr: cdr, tariffs: cdr.Tariffs, resolver: DefaultCountryZoneResolver()}
}

// WithTariffs overrides the tariff candidates used for selection; when
// both this and the CDR's embedded tariffs are empty, BuildReport fails
// with ErrNoValidTariff.
func (p Pricer) WithTariffs(tariffs []ocpi.Tariff) Pricer {
	p.tariffs = tariffs
	return p
}

// WithTimeZone forces the zone used for local wall-clock restriction
// evaluation, overriding both the CDR's location zone and
// DetectTimeZone's fallback table.
func (p Pricer) WithTimeZone(zone *time.Location) Pricer {
	p.zone = zone
	return p
}

// DetectTimeZone enables falling back to a CountryZoneResolver (the
// built-in table by default, or one set via WithCountryZoneResolver) when
// the CDR carries no zone and none was forced via WithTimeZone.
func (p Pricer) DetectTimeZone(enabled bool) Pricer {
	p.detectZone = enabled
	return p
}

// WithCountryZoneResolver overrides the resolver consulted by
// DetectTimeZone(true); the default is DefaultCountryZoneResolver.
func (p Pricer) WithCountryZoneResolver(resolver CountryZoneResolver) Pricer {
	p.resolver = resolver
	return p
}

// resolveZone picks the time zone BuildReport evaluates restrictions in,
// committing to exactly one zone for the whole session before any
// computation begins.
func (p Pricer) resolveZone() (*time.Location, error) {
	if p.zone != nil {
		return p.zone, nil
	}

	if p.cdr.CdrLocation.TimeZone != nil {
		loc, err := time.LoadLocation(*p.cdr.CdrLocation.TimeZone)
		if err != nil {
			return nil, ocpierrWrapInvalid(err)
		}
		return loc, nil
	}

	if p.detectZone {
		if loc, ok := p.resolver.Zone(p.cdr.CdrLocation.Country); ok {
			return loc, nil
		}
	}

	return nil, ErrTimeZoneMissing
}

// BuildReport runs the pricing calculation: selects the active tariff,
// walks the session period by period accumulating per-dimension volume,
// applies step-size rounding, then computes costs. It is all-or-nothing —
// there is no partial report on error.
func (p Pricer) BuildReport() (Report, error) {
	zone, err := p.resolveZone()
	if err != nil {
		return Report{}, err
	}

	chargeSession := session.NewChargeSession(p.cdr, zone)
	tariffs := tariff.NewTariffs(p.tariffs)

	tariffIndex, activeTariff, ok := tariffs.ActiveTariff(chargeSession.StartDateTime)
	if !ok {
		return Report{}, ErrNoValidTariff
	}

	periods := make([]PeriodReport, 0, len(chargeSession.Periods))
	var step stepSize
	hasFlatFee := false

	totalEnergy := types.ZeroKwh()
	totalChargingTime := types.ZeroHours()
	totalParkingTime := types.ZeroHours()

	for index, period := range chargeSession.Periods {
		components := activeTariff.ActiveComponents(period)

		step.update(index, components, period)

		volumes := PeriodVolumes{
			Energy:  period.PeriodData.Energy,
			Time:    period.PeriodData.ChargingDuration,
			Parking: period.PeriodData.ParkingDuration,
		}

		dims := newDimensions(components, volumes)
		if dims.Flat.Price != nil {
			if hasFlatFee {
				dims.Flat.Present = false
			} else {
				hasFlatFee = true
			}
		}

		if volumes.Energy != nil {
			totalEnergy = totalEnergy.Add(*volumes.Energy)
		}
		if volumes.Time != nil {
			totalChargingTime = totalChargingTime.Add(*volumes.Time)
		}
		if volumes.Parking != nil {
			totalParkingTime = totalParkingTime.Add(*volumes.Parking)
		}

		periods = append(periods, PeriodReport{
			StartDateTime: period.StartInstant.DateTime,
			EndDateTime:   period.EndInstant.DateTime,
			Dimensions:    dims,
		})
	}

	billedEnergy := step.applyEnergy(periods, totalEnergy)
	billedParkingTime := step.applyParkingTime(periods, totalParkingTime)
	billedChargingTime := step.applyTime(periods, totalChargingTime)

	var totalEnergyCost, totalTimeCost, totalParkingCost, totalFixedCost Price
	totalEnergyCost = types.ZeroPrice()
	totalTimeCost = types.ZeroPrice()
	totalParkingCost = types.ZeroPrice()
	totalFixedCost = types.ZeroPrice()

	for _, period := range periods {
		totalEnergyCost = totalEnergyCost.Add(period.Dimensions.Energy.Cost())
		totalTimeCost = totalTimeCost.Add(period.Dimensions.Time.Cost())
		totalParkingCost = totalParkingCost.Add(period.Dimensions.Parking.Cost())
		totalFixedCost = totalFixedCost.Add(period.Dimensions.Flat.Cost())
	}

	totalTime := types.ZeroHours()
	if len(periods) > 0 {
		first := periods[0]
		last := periods[len(periods)-1]
		totalTime = types.HoursFromDuration(last.EndDateTime.Sub(first.StartDateTime))
	}

	totalCost := totalTimeCost.Add(totalParkingCost).Add(totalFixedCost).Add(totalEnergyCost)

	return Report{
		ID:          uuid.New(),
		Periods:     periods,
		TariffIndex: tariffIndex,

		TotalCost: totalCost,

		TotalTime:         totalTime,
		TotalChargingTime:  totalChargingTime,
		BilledChargingTime: billedChargingTime,
		TotalTimeCost:     totalTimeCost,

		TotalParkingTime:  totalParkingTime,
		BilledParkingTime: billedParkingTime,
		TotalParkingCost:  totalParkingCost,

		TotalEnergy:     totalEnergy,
		BilledEnergy:    billedEnergy,
		TotalEnergyCost: totalEnergyCost,

		TotalFixedCost:       totalFixedCost,
		TotalReservationCost: types.ZeroPrice(),
	}, nil
}
