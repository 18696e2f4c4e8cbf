package v211

import (
	"encoding/json"
	"fmt"

	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// CdrDimensionType is the set of dimensions 2.1.1 charging periods carry.
// Flat exists here but not in 2.2.1 (the flat charge is derived from the
// tariff there); MaxPower/MinPower/ReservationTime do not exist yet in
// 2.1.1 and are 2.2.1-only additions.
type CdrDimensionType int

const (
	CdrDimensionEnergy CdrDimensionType = iota
	CdrDimensionFlat
	CdrDimensionMaxCurrent
	CdrDimensionMinCurrent
	CdrDimensionParkingTime
	CdrDimensionTime
)

var cdrDimensionNames = [...]string{
	"ENERGY", "FLAT", "MAX_CURRENT", "MIN_CURRENT", "PARKING_TIME", "TIME",
}

// CdrDimension is a 2.1.1 tagged {type, volume} dimension value.
type CdrDimension struct {
	Type        CdrDimensionType
	Energy      *types.Kwh
	MaxCurrent  *types.Ampere
	MinCurrent  *types.Ampere
	ParkingTime *types.HoursDecimal
	Time        *types.HoursDecimal
}

type cdrDimensionJSON struct {
	Type   string          `json:"type"`
	Volume json.RawMessage `json:"volume"`
}

func (d CdrDimension) MarshalJSON() ([]byte, error) {
	var volume interface{}
	switch d.Type {
	case CdrDimensionEnergy:
		volume = d.Energy
	case CdrDimensionFlat:
		volume = struct{}{}
	case CdrDimensionMaxCurrent:
		volume = d.MaxCurrent
	case CdrDimensionMinCurrent:
		volume = d.MinCurrent
	case CdrDimensionParkingTime:
		volume = d.ParkingTime
	case CdrDimensionTime:
		volume = d.Time
	default:
		return nil, fmt.Errorf("v211: unknown charging dimension type %d", d.Type)
	}
	raw, err := json.Marshal(volume)
	if err != nil {
		return nil, err
	}
	return json.Marshal(cdrDimensionJSON{Type: cdrDimensionNames[d.Type], Volume: raw})
}

func (d *CdrDimension) UnmarshalJSON(data []byte) error {
	var raw cdrDimensionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	idx := -1
	for i, name := range cdrDimensionNames {
		if name == raw.Type {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("v211: unknown charging dimension type %q", raw.Type)
	}
	d.Type = CdrDimensionType(idx)

	switch d.Type {
	case CdrDimensionEnergy:
		return json.Unmarshal(raw.Volume, &d.Energy)
	case CdrDimensionFlat:
		return nil
	case CdrDimensionMaxCurrent:
		return json.Unmarshal(raw.Volume, &d.MaxCurrent)
	case CdrDimensionMinCurrent:
		return json.Unmarshal(raw.Volume, &d.MinCurrent)
	case CdrDimensionParkingTime:
		return json.Unmarshal(raw.Volume, &d.ParkingTime)
	case CdrDimensionTime:
		return json.Unmarshal(raw.Volume, &d.Time)
	}
	return nil
}

// toV221 drops the Flat dimension (ok=false): the flat charge is derivable
// from the tariff and period timestamps alone, so carrying it forward
// would double-count it against the tariff-driven flat component.
func (d CdrDimension) toV221() (ocpi.CdrDimension, bool) {
	switch d.Type {
	case CdrDimensionEnergy:
		return ocpi.CdrDimension{Type: ocpi.CdrDimensionEnergy, Energy: d.Energy}, true
	case CdrDimensionFlat:
		return ocpi.CdrDimension{}, false
	case CdrDimensionMaxCurrent:
		return ocpi.CdrDimension{Type: ocpi.CdrDimensionMaxCurrent, MaxCurrent: d.MaxCurrent}, true
	case CdrDimensionMinCurrent:
		return ocpi.CdrDimension{Type: ocpi.CdrDimensionMinCurrent, MinCurrent: d.MinCurrent}, true
	case CdrDimensionParkingTime:
		return ocpi.CdrDimension{Type: ocpi.CdrDimensionParkingTime, ParkingTime: d.ParkingTime}, true
	case CdrDimensionTime:
		return ocpi.CdrDimension{Type: ocpi.CdrDimensionTime, Time: d.Time}, true
	default:
		return ocpi.CdrDimension{}, false
	}
}
