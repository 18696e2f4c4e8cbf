package v211

import (
	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// Cdr is a 2.1.1 CDR. Notable shape differences from 2.2.1: StopDateTime
// instead of EndDateTime, a bare Money TotalCost instead of a Price, no
// per-dimension cost totals, and a Location with an inline time zone
// instead of a CdrLocation.
type Cdr struct {
	StartDateTime types.DateTime `json:"start_date_time"`
	StopDateTime  types.DateTime `json:"stop_date_time"`
	Currency      string         `json:"currency"`

	Tariffs  []Tariff `json:"tariffs,omitempty"`
	Location Location `json:"location"`

	ChargingPeriods []ChargingPeriod `json:"charging_periods"`

	TotalCost        types.Money         `json:"total_cost"`
	TotalEnergy      types.Kwh           `json:"total_energy"`
	TotalTime        types.HoursDecimal  `json:"total_time"`
	TotalParkingTime *types.HoursDecimal `json:"total_parking_time,omitempty"`

	LastUpdated types.DateTime `json:"last_updated"`
}

// Location is a 2.1.1 CDR location: just a country and an optional IANA
// zone, both inline (2.1.1 has no separate CdrLocation type).
type Location struct {
	Country  string  `json:"country"`
	TimeZone *string `json:"time_zone,omitempty"`
}

// ChargingPeriod is a 2.1.1 charging period.
type ChargingPeriod struct {
	StartDateTime types.DateTime `json:"start_date_time"`
	Dimensions    []CdrDimension `json:"dimensions"`
}

// ToV221 upgrades a 2.1.1 CDR to 2.2.1 per spec.md §6.3: StopDateTime
// becomes EndDateTime, TotalCost becomes a Price with InclVat unset (VAT is
// unknowable from 2.1.1), every Flat CDR dimension is dropped (the flat
// charge is derivable purely from the tariff and period timestamps, so
// carrying it forward would be redundant), and the location's time zone is
// preserved into the 2.2.1 CdrLocation even though that field does not
// exist in the real 2.2.1 schema.
func (c Cdr) ToV221() ocpi.Cdr {
	tariffs := make([]ocpi.Tariff, len(c.Tariffs))
	for i, t := range c.Tariffs {
		tariffs[i] = t.ToV221()
	}

	periods := make([]ocpi.ChargingPeriod, len(c.ChargingPeriods))
	for i, p := range c.ChargingPeriods {
		periods[i] = p.toV221()
	}

	return ocpi.Cdr{
		StartDateTime: c.StartDateTime,
		EndDateTime:   c.StopDateTime,
		Currency:      c.Currency,
		Tariffs:       tariffs,
		CdrLocation: ocpi.CdrLocation{
			Country:  c.Location.Country,
			TimeZone: c.Location.TimeZone,
		},
		ChargingPeriods:      periods,
		TotalCost:            types.Price{ExclVat: c.TotalCost},
		TotalFixedCost:       nil,
		TotalEnergy:          c.TotalEnergy,
		TotalEnergyCost:      nil,
		TotalTime:            c.TotalTime,
		TotalTimeCost:        nil,
		TotalParkingTime:     c.TotalParkingTime,
		TotalParkingCost:     nil,
		TotalReservationCost: nil,
		LastUpdated:          c.LastUpdated,
	}
}

func (p ChargingPeriod) toV221() ocpi.ChargingPeriod {
	dims := make([]ocpi.CdrDimension, 0, len(p.Dimensions))
	for _, d := range p.Dimensions {
		if v, ok := d.toV221(); ok {
			dims = append(dims, v)
		}
	}
	return ocpi.ChargingPeriod{StartDateTime: p.StartDateTime, Dimensions: dims}
}
