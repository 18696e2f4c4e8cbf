// Package lint analyzes an OCPI tariff in isolation and flags redundant
// price components/elements and non-exhaustive dimensions, using a
// pattern-matrix usefulness algorithm (Maranget, "Warnings for Pattern
// Matching", 2007) adapted to numeric ranges.
package lint

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tandemdrive/ocpi-tariffs/ocpi"
)

// Kind tags which case of Warning is populated.
type Kind int

const (
	KindDimensionNotExhaustive Kind = iota
	KindComponentIsRedundant
	KindElementIsRedundant
	KindUsesDateRestrictions
)

// Warning is one finding from Lint.
type Warning struct {
	Kind Kind

	// Dimension is set for KindDimensionNotExhaustive.
	Dimension ocpi.TariffDimensionType

	// ElementIndex is set for every kind except KindDimensionNotExhaustive.
	ElementIndex int

	// ComponentIndex is set for KindComponentIsRedundant.
	ComponentIndex int
}

func (w Warning) String() string {
	switch w.Kind {
	case KindUsesDateRestrictions:
		return fmt.Sprintf(
			"Element at `$.elements[%d]` uses `restrictions.start_date` or `restrictions.end_date`, consider using the top level `start_date` and `end_date`.",
			w.ElementIndex,
		)
	case KindComponentIsRedundant:
		return fmt.Sprintf(
			"Component at `$.elements[%d].price_components[%d]` is redundant, consider removing it.",
			w.ElementIndex, w.ComponentIndex,
		)
	case KindElementIsRedundant:
		return fmt.Sprintf("Element at `$.elements[%d]` is redundant, consider removing it.", w.ElementIndex)
	case KindDimensionNotExhaustive:
		return fmt.Sprintf("Dimension %s is not exhaustive, consider adding a fallback case.", w.Dimension)
	default:
		return "unknown lint warning"
	}
}

// Lint analyzes tariff and returns every warning found. logger may be nil;
// when supplied, the final warning count is logged at debug level.
func Lint(t ocpi.Tariff, logger *zerolog.Logger) []Warning {
	var warnings []Warning

	var energyElements, flatElements, timeElements, parkingTimeElements []unaryElement

	for elementIndex, element := range t.Elements {
		if len(element.PriceComponents) == 0 {
			warnings = append(warnings, Warning{Kind: KindElementIsRedundant, ElementIndex: elementIndex})
		}

		var hasEnergy, hasFlat, hasTime, hasParkingTime bool

		for componentIndex, component := range element.PriceComponents {
			switch {
			case component.Type == ocpi.DimensionFlat && !hasFlat:
				flatElements = append(flatElements, unaryElement{elementIndex, componentIndex, element.Restrictions})
				hasFlat = true
			case component.Type == ocpi.DimensionTime && !hasTime:
				timeElements = append(timeElements, unaryElement{elementIndex, componentIndex, element.Restrictions})
				hasTime = true
			case component.Type == ocpi.DimensionEnergy && !hasEnergy:
				energyElements = append(energyElements, unaryElement{elementIndex, componentIndex, element.Restrictions})
				hasEnergy = true
			case component.Type == ocpi.DimensionParkingTime && !hasParkingTime:
				parkingTimeElements = append(parkingTimeElements, unaryElement{elementIndex, componentIndex, element.Restrictions})
				hasParkingTime = true
			default:
				warnings = append(warnings, Warning{Kind: KindComponentIsRedundant, ElementIndex: elementIndex, ComponentIndex: componentIndex})
			}
		}
	}

	lintRestrictions(energyElements, ocpi.DimensionEnergy, &warnings)
	lintRestrictions(flatElements, ocpi.DimensionFlat, &warnings)
	lintRestrictions(timeElements, ocpi.DimensionTime, &warnings)
	lintRestrictions(parkingTimeElements, ocpi.DimensionParkingTime, &warnings)

	remaining := make(map[int]int)
	for _, w := range warnings {
		if w.Kind != KindComponentIsRedundant {
			continue
		}
		if _, ok := remaining[w.ElementIndex]; !ok {
			remaining[w.ElementIndex] = len(t.Elements[w.ElementIndex].PriceComponents)
		}
		remaining[w.ElementIndex]--
	}

	for elementIndex, count := range remaining {
		if count != 0 {
			continue
		}

		kept := warnings[:0]
		for _, w := range warnings {
			if w.Kind == KindComponentIsRedundant && w.ElementIndex == elementIndex {
				continue
			}
			kept = append(kept, w)
		}
		warnings = append(kept, Warning{Kind: KindElementIsRedundant, ElementIndex: elementIndex})
	}

	if logger != nil {
		logger.Debug().Int("warnings", len(warnings)).Str("tariff_id", t.ID).Msg("tariff lint complete")
	}

	return warnings
}

// unaryElement is one tariff element reduced to a single dimension's
// component, ready to feed into the pattern matrix for that dimension.
type unaryElement struct {
	elementIndex   int
	componentIndex int
	restrictions   *ocpi.TariffRestriction
}

// Sentinel upper bound for the date column: an illustrative "far future"
// date rather than a value tied to any specific calendar epoch — only its
// relative ordering against real restriction dates matters.
var maxDateBound = decimal.NewFromInt(2_932_897) // days since the Unix epoch, ~year 9999

var daySeconds = decimal.NewFromInt(86_400)

func lintRestrictions(elements []unaryElement, dimension ocpi.TariffDimensionType, warnings *[]Warning) {
	if len(elements) == 0 {
		return
	}

	bounds := []Range{
		newRange(decimalPtr(decimal.Zero), nil),                     // energy (kWh)
		newRange(decimalPtr(decimal.Zero), decimalPtr(daySeconds)),   // seconds from midnight
		newRange(decimalPtr(decimal.Zero), decimalPtr(maxDateBound)), // days since epoch
		newRange(decimalPtr(decimal.Zero), nil),                     // duration in milliseconds
	}

	matrix := newMatrix(bounds)

	for i := range elements {
		elementIndex, componentIndex := elements[i].elementIndex, elements[i].componentIndex

		if elements[i].restrictions == nil {
			matrix.addPattern(pattern{
				columns:        [4]Range{wildcard(), wildcard(), wildcard(), wildcard()},
				elementIndex:   &elementIndex,
				componentIndex: &componentIndex,
			})
			continue
		}

		r := elements[i].restrictions
		matrix.addPattern(pattern{
			columns: [4]Range{
				newRange(kwhPtr(r.MinKwh), kwhPtr(r.MaxKwh)),
				newRange(secondsPtr(r.StartTime), secondsPtr(r.EndTime)),
				newRange(daysPtr(r.StartDate), daysPtr(r.EndDate)),
				newRange(millisPtr(r.MinDuration), millisPtr(r.MaxDuration)),
			},
			elementIndex:   &elementIndex,
			componentIndex: &componentIndex,
		})

		if r.StartDate != nil || r.EndDate != nil {
			*warnings = append(*warnings, Warning{Kind: KindUsesDateRestrictions, ElementIndex: elementIndex})
		}
	}

	matrix.addPattern(pattern{columns: [4]Range{wildcard(), wildcard(), wildcard(), wildcard()}})

	matrix.usefulness()

	for _, p := range matrix.patterns[:len(matrix.patterns)-1] {
		if !p.isUseful {
			*warnings = append(*warnings, Warning{
				Kind:           KindComponentIsRedundant,
				ElementIndex:   *p.elementIndex,
				ComponentIndex: *p.componentIndex,
			})
		}
	}

	if last := matrix.patterns[len(matrix.patterns)-1]; last.isUseful {
		*warnings = append(*warnings, Warning{Kind: KindDimensionNotExhaustive, Dimension: dimension})
	}
}
