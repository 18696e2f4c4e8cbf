package pricer

import (
	"github.com/tandemdrive/ocpi-tariffs/session"
	"github.com/tandemdrive/ocpi-tariffs/tariff"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// stepSize tracks, per dimension, the step-size anchor: the latest period
// that both carried a non-absent volume for the dimension and had an
// active price component for it. Only the anchor period's billed volume
// absorbs the session-wide step-size rounding difference.
type stepSize struct {
	time        *stepSizeAnchor
	parkingTime *stepSizeAnchor
	energy      *stepSizeAnchor
}

type stepSizeAnchor struct {
	index     int
	component tariff.PriceComponent
}

// update records index as the new anchor for any dimension that has both
// a volume and an active component in this period.
func (s *stepSize) update(index int, components tariff.PriceComponents, period session.ChargePeriod) {
	if period.PeriodData.Energy != nil && components.Energy != nil {
		s.energy = &stepSizeAnchor{index: index, component: *components.Energy}
	}
	if period.PeriodData.ChargingDuration != nil && components.Time != nil {
		s.time = &stepSizeAnchor{index: index, component: *components.Time}
	}
	if period.PeriodData.ParkingDuration != nil && components.Parking != nil {
		s.parkingTime = &stepSizeAnchor{index: index, component: *components.Parking}
	}
}

// applyEnergy rounds total up to the anchor's step size (in Wh) and
// credits the difference to the anchor period's billed energy. Returns
// total unchanged if there is no energy anchor.
func (s stepSize) applyEnergy(periods []PeriodReport, total types.Kwh) types.Kwh {
	if s.energy == nil {
		return total
	}

	billed := roundUpToStep(total.WattHours(), s.energy.component.StepSize)
	billedKwh := types.KwhFromWattHours(billed)
	diff := billedKwh.Sub(total)

	dim := &periods[s.energy.index].Dimensions.Energy
	updated := dim.BilledVolume.Add(diff)
	dim.BilledVolume = &updated

	return billedKwh
}

// applyParkingTime rounds total up to the anchor's step size (in seconds)
// and credits the difference to the anchor period's billed parking
// duration. Returns total unchanged if there is no parking-time anchor.
func (s stepSize) applyParkingTime(periods []PeriodReport, total types.HoursDecimal) types.HoursDecimal {
	if s.parkingTime == nil {
		return total
	}

	billed := roundUpDuration(total, s.parkingTime.component.StepSize)
	diff := billed.Sub(total)

	dim := &periods[s.parkingTime.index].Dimensions.Parking
	updated := dim.BilledVolume.Add(diff)
	dim.BilledVolume = &updated

	return billed
}

// applyTime rounds total up to the anchor's step size (in seconds) and
// credits the difference to the anchor period's billed charging duration.
// Per spec.md §4.4, time step-size is suppressed entirely whenever a
// parking-time anchor exists (the parking step-size governs end rounding
// in that case) — only when no parking anchor exists is the time
// step-size applied.
func (s stepSize) applyTime(periods []PeriodReport, total types.HoursDecimal) types.HoursDecimal {
	if s.time == nil || s.parkingTime != nil {
		return total
	}

	billed := roundUpDuration(total, s.time.component.StepSize)
	diff := billed.Sub(total)

	dim := &periods[s.time.index].Dimensions.Time
	updated := dim.BilledVolume.Add(diff)
	dim.BilledVolume = &updated

	return billed
}

// roundUpToStep computes ceil(value/step) * step as a Number, treating a
// zero step size as "no rounding".
func roundUpToStep(value types.Number, step uint64) types.Number {
	if step == 0 {
		return value
	}
	stepNumber := types.NumberFromInt(int64(step))
	return value.Div(stepNumber).Ceil().Mul(stepNumber)
}

// roundUpDuration rounds a duration up to the nearest step-size number of
// seconds.
func roundUpDuration(total types.HoursDecimal, step uint64) types.HoursDecimal {
	if step == 0 {
		return total
	}
	billedSeconds := roundUpToStep(total.AsSecondsDecimal(), step)
	billed, err := types.SecondsFromDecimal(billedSeconds)
	if err != nil {
		// Overflow here means the rounded duration no longer fits an int64
		// millisecond count; return the unrounded total rather than
		// propagate the error.
		return total
	}
	return billed
}
