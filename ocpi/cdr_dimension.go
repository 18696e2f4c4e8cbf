package ocpi

import (
	"encoding/json"
	"fmt"
)

func (t CdrDimensionType) String() string {
	if int(t) < 0 || int(t) >= len(cdrDimensionNames) {
		return "UNKNOWN"
	}
	return cdrDimensionNames[t]
}

type cdrDimensionJSON struct {
	Type   string          `json:"type"`
	Volume json.RawMessage `json:"volume"`
}

// MarshalJSON renders CdrDimension as OCPI's tagged {"type", "volume"}
// shape.
func (d CdrDimension) MarshalJSON() ([]byte, error) {
	var volume interface{}
	switch d.Type {
	case CdrDimensionEnergy:
		volume = d.Energy
	case CdrDimensionMaxCurrent:
		volume = d.MaxCurrent
	case CdrDimensionMinCurrent:
		volume = d.MinCurrent
	case CdrDimensionMaxPower:
		volume = d.MaxPower
	case CdrDimensionMinPower:
		volume = d.MinPower
	case CdrDimensionParkingTime:
		volume = d.ParkingTime
	case CdrDimensionReservationTime:
		volume = d.ReservationTime
	case CdrDimensionTime:
		volume = d.Time
	default:
		return nil, fmt.Errorf("ocpi: unknown charging dimension type %d", d.Type)
	}

	raw, err := json.Marshal(volume)
	if err != nil {
		return nil, err
	}
	return json.Marshal(cdrDimensionJSON{Type: d.Type.String(), Volume: raw})
}

// UnmarshalJSON parses OCPI's tagged {"type", "volume"} shape.
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
		return fmt.Errorf("ocpi: unknown charging dimension type %q", raw.Type)
	}
	d.Type = CdrDimensionType(idx)

	switch d.Type {
	case CdrDimensionEnergy:
		return json.Unmarshal(raw.Volume, &d.Energy)
	case CdrDimensionMaxCurrent:
		return json.Unmarshal(raw.Volume, &d.MaxCurrent)
	case CdrDimensionMinCurrent:
		return json.Unmarshal(raw.Volume, &d.MinCurrent)
	case CdrDimensionMaxPower:
		return json.Unmarshal(raw.Volume, &d.MaxPower)
	case CdrDimensionMinPower:
		return json.Unmarshal(raw.Volume, &d.MinPower)
	case CdrDimensionParkingTime:
		return json.Unmarshal(raw.Volume, &d.ParkingTime)
	case CdrDimensionReservationTime:
		return json.Unmarshal(raw.Volume, &d.ReservationTime)
	case CdrDimensionTime:
		return json.Unmarshal(raw.Volume, &d.Time)
	}
	return nil
}
