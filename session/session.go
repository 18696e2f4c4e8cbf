// Package session turns a CDR's flat list of charging periods into a chain
// of ChargePeriods, each carrying both the properties that hold throughout
// the period (PeriodData) and the running totals at its start and end
// instants (InstantData). Restriction evaluation and the pricer both walk
// this chain rather than the raw CDR.
package session

import (
	"time"

	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// ChargeSession is a CDR's charging periods resolved into a chain of
// ChargePeriods, each aware of the local time zone it is evaluated in.
type ChargeSession struct {
	StartDateTime types.DateTime
	Periods       []ChargePeriod
}

// NewChargeSession builds a ChargeSession from a CDR's charging periods.
// Each period's end is the next period's start, or the CDR's end time for
// the last period.
func NewChargeSession(cdr ocpi.Cdr, localZone *time.Location) ChargeSession {
	periods := make([]ChargePeriod, 0, len(cdr.ChargingPeriods))

	for i, period := range cdr.ChargingPeriods {
		var endDateTime types.DateTime
		if i+1 < len(cdr.ChargingPeriods) {
			endDateTime = cdr.ChargingPeriods[i+1].StartDateTime
		} else {
			endDateTime = cdr.EndDateTime
		}

		var next ChargePeriod
		if len(periods) > 0 {
			next = periods[len(periods)-1].next(period, endDateTime)
		} else {
			next = newChargePeriod(localZone, period, endDateTime)
		}

		periods = append(periods, next)
	}

	return ChargeSession{StartDateTime: cdr.StartDateTime, Periods: periods}
}

// ChargePeriod describes one charging period: the properties that hold
// for its whole duration (PeriodData), and the running totals at the
// instants that bound it (StartInstant, EndInstant).
type ChargePeriod struct {
	PeriodData   PeriodData
	StartInstant InstantData
	EndInstant   InstantData
}

func newChargePeriod(localZone *time.Location, period ocpi.ChargingPeriod, endDateTime types.DateTime) ChargePeriod {
	data := newPeriodData(period)
	start := zeroInstant(period.StartDateTime, localZone)
	end := start.next(data, endDateTime)

	return ChargePeriod{PeriodData: data, StartInstant: start, EndInstant: end}
}

func (p ChargePeriod) next(period ocpi.ChargingPeriod, endDateTime types.DateTime) ChargePeriod {
	data := newPeriodData(period)
	start := p.EndInstant
	end := start.next(data, endDateTime)

	return ChargePeriod{PeriodData: data, StartInstant: start, EndInstant: end}
}

// PeriodData holds the dimension volumes that are constant for one
// charging period: the instantaneous current/power bounds, and the
// durations/energy accrued during the period.
type PeriodData struct {
	MaxCurrent *types.Ampere
	MinCurrent *types.Ampere
	MaxPower   *types.Kw
	MinPower   *types.Kw

	ChargingDuration    *types.HoursDecimal
	ParkingDuration     *types.HoursDecimal
	ReservationDuration *types.HoursDecimal

	Energy *types.Kwh
}

func newPeriodData(period ocpi.ChargingPeriod) PeriodData {
	var data PeriodData

	for _, dim := range period.Dimensions {
		switch dim.Type {
		case ocpi.CdrDimensionMinCurrent:
			data.MinCurrent = dim.MinCurrent
		case ocpi.CdrDimensionMaxCurrent:
			data.MaxCurrent = dim.MaxCurrent
		case ocpi.CdrDimensionMaxPower:
			data.MaxPower = dim.MaxPower
		case ocpi.CdrDimensionMinPower:
			data.MinPower = dim.MinPower
		case ocpi.CdrDimensionEnergy:
			data.Energy = dim.Energy
		case ocpi.CdrDimensionTime:
			data.ChargingDuration = dim.Time
		case ocpi.CdrDimensionParkingTime:
			data.ParkingDuration = dim.ParkingTime
		case ocpi.CdrDimensionReservationTime:
			data.ReservationDuration = dim.ReservationTime
		}
	}

	return data
}

// InstantData holds the running totals of a charge session at one
// instant, plus enough to derive local wall-clock properties from it.
type InstantData struct {
	localZone *time.Location

	DateTime types.DateTime

	TotalChargingDuration types.HoursDecimal
	TotalDuration         types.HoursDecimal
	TotalEnergy           types.Kwh
}

func zeroInstant(dateTime types.DateTime, localZone *time.Location) InstantData {
	return InstantData{
		localZone:             localZone,
		DateTime:              dateTime,
		TotalChargingDuration: types.ZeroHours(),
		TotalDuration:         types.ZeroHours(),
		TotalEnergy:           types.ZeroKwh(),
	}
}

func (i InstantData) next(data PeriodData, dateTime types.DateTime) InstantData {
	next := i

	elapsed := types.HoursFromDuration(dateTime.Sub(next.DateTime))
	next.TotalDuration = next.TotalDuration.Add(elapsed)
	next.DateTime = dateTime

	if data.ChargingDuration != nil {
		next.TotalChargingDuration = next.TotalChargingDuration.Add(*data.ChargingDuration)
	}

	if data.Energy != nil {
		next.TotalEnergy = next.TotalEnergy.Add(*data.Energy)
	}

	return next
}

// LocalTime returns the wall-clock time of this instant in the session's
// local time zone.
func (i InstantData) LocalTime() types.LocalTime {
	local := i.DateTime.In(i.localZone)
	return types.LocalTime{Hour: local.Hour(), Minute: local.Minute()}
}

// LocalDate returns the wall-clock date of this instant in the session's
// local time zone.
func (i InstantData) LocalDate() types.LocalDate {
	local := i.DateTime.In(i.localZone)
	y, m, d := local.Date()
	return types.LocalDate{Year: y, Month: m, Day: d}
}

// LocalDayOfWeek returns the weekday of this instant in the session's
// local time zone.
func (i InstantData) LocalDayOfWeek() types.DayOfWeek {
	local := i.DateTime.In(i.localZone)
	return types.DayOfWeekFromTime(local.Weekday())
}
