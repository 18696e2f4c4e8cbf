package ocpi

import "github.com/tandemdrive/ocpi-tariffs/types"

// Cdr describes a charging session and its costs: how those costs are
// built up, which periods make up the session, and which tariffs were
// candidates for pricing it.
type Cdr struct {
	StartDateTime types.DateTime `json:"start_date_time"`
	EndDateTime   types.DateTime `json:"end_date_time"`
	Currency      string         `json:"currency"`

	// Tariffs lists the candidate tariffs for this session. Pricer.WithTariffs
	// overrides this list; when both are empty, pricing fails.
	Tariffs []Tariff `json:"tariffs,omitempty"`

	CdrLocation CdrLocation `json:"cdr_location"`

	ChargingPeriods []ChargingPeriod `json:"charging_periods"`

	TotalCost            types.Price  `json:"total_cost"`
	TotalFixedCost       *types.Price `json:"total_fixed_cost,omitempty"`
	TotalEnergy          types.Kwh    `json:"total_energy"`
	TotalEnergyCost      *types.Price `json:"total_energy_cost,omitempty"`
	TotalTime            types.HoursDecimal `json:"total_time"`
	TotalTimeCost        *types.Price `json:"total_time_cost,omitempty"`
	TotalParkingTime     *types.HoursDecimal `json:"total_parking_time,omitempty"`
	TotalParkingCost     *types.Price `json:"total_parking_cost,omitempty"`
	TotalReservationCost *types.Price `json:"total_reservation_cost,omitempty"`

	LastUpdated types.DateTime `json:"last_updated"`
}

// CdrLocation describes where a charge session took place.
type CdrLocation struct {
	Country string `json:"country"`

	// TimeZone is not part of the real OCPI 2.2.1 CdrLocation schema; it is
	// carried here purely so a 2.1.1 CDR's location zone survives the
	// upgrade to 2.2.1 without being lost. It is never serialized back out.
	TimeZone *string `json:"-"`
}

// CdrDimension is a tagged {type, volume} pair: the volume consumed for
// one dimension during a charging period.
type CdrDimension struct {
	Type   CdrDimensionType
	Energy *types.Kwh
	// MaxCurrent/MinCurrent/MaxPower/MinPower/ParkingTime/ReservationTime/Time
	// share the same "one of" shape as Energy; see cdrDimensionJSON.
	MaxCurrent      *types.Ampere
	MinCurrent      *types.Ampere
	MaxPower        *types.Kw
	MinPower        *types.Kw
	ParkingTime     *types.HoursDecimal
	ReservationTime *types.HoursDecimal
	Time            *types.HoursDecimal
}

// CdrDimensionType tags which field of CdrDimension is populated.
type CdrDimensionType int

const (
	CdrDimensionEnergy CdrDimensionType = iota
	CdrDimensionMaxCurrent
	CdrDimensionMinCurrent
	CdrDimensionMaxPower
	CdrDimensionMinPower
	CdrDimensionParkingTime
	CdrDimensionReservationTime
	CdrDimensionTime
)

var cdrDimensionNames = [...]string{
	"ENERGY", "MAX_CURRENT", "MIN_CURRENT", "MAX_POWER", "MIN_POWER",
	"PARKING_TIME", "RESERVATION_TIME", "TIME",
}

// ChargingPeriod is a single charging period: a start timestamp and a
// non-empty list of charge dimensions. It ends when the next period
// starts, or at the session end for the last period.
type ChargingPeriod struct {
	StartDateTime types.DateTime `json:"start_date_time"`
	Dimensions    []CdrDimension `json:"dimensions"`
}
