// Package normalize strips the redundant tariff elements and price
// components that lint.Lint flags, so downstream tooling (the linter
// itself, the pricer, explain output) always works against the same
// minimal tariff shape.
package normalize

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/tandemdrive/ocpi-tariffs/lint"
	"github.com/tandemdrive/ocpi-tariffs/ocpi"
)

// Normalize returns a copy of t with every redundant component and
// element lint.Lint flags removed, and any element left with no
// components dropped entirely. logger is forwarded to lint.Lint and may
// be nil.
func Normalize(t ocpi.Tariff, logger *zerolog.Logger) ocpi.Tariff {
	warnings := lint.Lint(t, logger)

	type componentKey struct{ element, component int }

	var removeElements []int
	removeComponents := make(map[componentKey]struct{})

	for _, w := range warnings {
		switch w.Kind {
		case lint.KindElementIsRedundant:
			removeElements = append(removeElements, w.ElementIndex)
		case lint.KindComponentIsRedundant:
			removeComponents[componentKey{w.ElementIndex, w.ComponentIndex}] = struct{}{}
		}
	}

	sort.Ints(removeElements)

	elements := make([]ocpi.TariffElement, len(t.Elements))
	copy(elements, t.Elements)

	// Remove flagged components first, per element, by filtering against
	// the original component indices the warnings refer to.
	for elementIndex := range elements {
		components := elements[elementIndex].PriceComponents
		kept := make([]ocpi.PriceComponent, 0, len(components))
		for componentIndex, c := range components {
			if _, drop := removeComponents[componentKey{elementIndex, componentIndex}]; drop {
				continue
			}
			kept = append(kept, c)
		}
		elements[elementIndex].PriceComponents = kept
	}

	// Remove flagged elements in reverse order, then drop any element
	// whose component list became empty along the way.
	for i := len(removeElements) - 1; i >= 0; i-- {
		idx := removeElements[i]
		elements = append(elements[:idx], elements[idx+1:]...)
	}

	nonEmpty := make([]ocpi.TariffElement, 0, len(elements))
	for _, e := range elements {
		if len(e.PriceComponents) == 0 {
			continue
		}
		nonEmpty = append(nonEmpty, e)
	}

	t.Elements = nonEmpty
	return t
}
