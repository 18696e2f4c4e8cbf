package tariff

import (
	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

// Tariffs is an ordered candidate list, in the order tariff selection
// should consider them.
type Tariffs struct {
	tariffs []Tariff
}

// NewTariffs builds Tariffs from their wire representation, preserving
// order.
func NewTariffs(tariffs []ocpi.Tariff) Tariffs {
	built := make([]Tariff, len(tariffs))
	for i, t := range tariffs {
		built[i] = New(t)
	}
	return Tariffs{tariffs: built}
}

// ActiveTariff returns the first tariff in order whose validity window
// contains startTime, and its index, or ok=false if none applies.
func (t Tariffs) ActiveTariff(startTime types.DateTime) (index int, tariff Tariff, ok bool) {
	for i, tf := range t.tariffs {
		if tf.IsActive(startTime) {
			return i, tf, true
		}
	}
	return 0, Tariff{}, false
}
