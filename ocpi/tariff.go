// Package ocpi holds the OCPI 2.2.1 wire types consumed by the pricing
// engine: Tariff and CDR documents as they appear in JSON, plus the
// TariffElement/Restriction/PriceComponent shapes nested inside a Tariff.
//
// Parsing OCPI documents end to end (auth, pagination, the rest of the
// OCPI module surface) is out of scope here; only the fields the engine
// actually consumes are modeled, matching spec.md §6.2.
package ocpi

import "github.com/tandemdrive/ocpi-tariffs/types"

// Tariff describes a tariff and its properties, as consumed from OCPI
// 2.2.1 JSON.
type Tariff struct {
	ID            string         `json:"id"`
	Currency      string         `json:"currency"`
	MinPrice      *types.Price   `json:"min_price,omitempty"`
	MaxPrice      *types.Price   `json:"max_price,omitempty"`
	Elements      []TariffElement `json:"elements"`
	StartDateTime *types.DateTime `json:"start_date_time,omitempty"`
	EndDateTime   *types.DateTime `json:"end_date_time,omitempty"`
}

// TariffDimensionType is the kind of thing a PriceComponent prices.
type TariffDimensionType int

const (
	// DimensionEnergy is defined in kWh; step_size multiplier is 1 Wh.
	DimensionEnergy TariffDimensionType = iota
	// DimensionFlat is a flat fee; step_size has no unit.
	DimensionFlat
	// DimensionParkingTime is time not charging, defined in hours;
	// step_size multiplier is 1 second.
	DimensionParkingTime
	// DimensionTime is time charging, defined in hours; step_size
	// multiplier is 1 second.
	DimensionTime
)

var dimensionNames = [...]string{"ENERGY", "FLAT", "PARKING_TIME", "TIME"}

func (d TariffDimensionType) String() string {
	if int(d) < 0 || int(d) >= len(dimensionNames) {
		return "UNKNOWN"
	}
	return dimensionNames[d]
}

func (d TariffDimensionType) MarshalJSON() ([]byte, error) {
	return marshalEnumString(dimensionNames[:], int(d))
}

func (d *TariffDimensionType) UnmarshalJSON(data []byte) error {
	idx, err := unmarshalEnumString(data, dimensionNames[:])
	if err != nil {
		return err
	}
	*d = TariffDimensionType(idx)
	return nil
}

// PriceComponent is one priced dimension of a tariff element.
//
// StepSize is the minimum billable amount: this unit is billed in
// StepSize-sized blocks. For example, if Type is Time and StepSize is 300,
// time is billed in 5-minute blocks, so 6 minutes used bills as 10 minutes.
type PriceComponent struct {
	Type     TariffDimensionType    `json:"type"`
	Price    types.Money            `json:"price"`
	Vat      types.CompatibilityVat `json:"vat,omitempty"`
	StepSize uint64                 `json:"step_size"`
}

// TariffElement bundles the price components active under one set of
// restrictions.
type TariffElement struct {
	PriceComponents []PriceComponent      `json:"price_components"`
	Restrictions    *TariffRestriction    `json:"restrictions,omitempty"`
}

// ReservationRestrictionType distinguishes an active reservation from an
// expiring one.
type ReservationRestrictionType int

const (
	Reservation ReservationRestrictionType = iota
	ReservationExpires
)

var reservationNames = [...]string{"RESERVATION", "RESERVATION_EXPIRES"}

func (r ReservationRestrictionType) MarshalJSON() ([]byte, error) {
	return marshalEnumString(reservationNames[:], int(r))
}

func (r *ReservationRestrictionType) UnmarshalJSON(data []byte) error {
	idx, err := unmarshalEnumString(data, reservationNames[:])
	if err != nil {
		return err
	}
	*r = ReservationRestrictionType(idx)
	return nil
}

// TariffRestriction indicates when a tariff element applies. All fields
// are optional; an absent field imposes no constraint on that axis.
type TariffRestriction struct {
	StartTime    *types.LocalTime            `json:"start_time,omitempty"`
	EndTime      *types.LocalTime            `json:"end_time,omitempty"`
	StartDate    *types.LocalDate            `json:"start_date,omitempty"`
	EndDate      *types.LocalDate            `json:"end_date,omitempty"`
	MinKwh       *types.Kwh                  `json:"min_kwh,omitempty"`
	MaxKwh       *types.Kwh                  `json:"max_kwh,omitempty"`
	MinCurrent   *types.Ampere               `json:"min_current,omitempty"`
	MaxCurrent   *types.Ampere               `json:"max_current,omitempty"`
	MinPower     *types.Kw                   `json:"min_power,omitempty"`
	MaxPower     *types.Kw                   `json:"max_power,omitempty"`
	MinDuration  *types.SecondsRound          `json:"min_duration,omitempty"`
	MaxDuration  *types.SecondsRound          `json:"max_duration,omitempty"`
	DayOfWeek    []types.DayOfWeek            `json:"day_of_week,omitempty"`
	Reservation  *ReservationRestrictionType  `json:"reservation,omitempty"`
}
