package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandemdrive/ocpi-tariffs/lint"
	"github.com/tandemdrive/ocpi-tariffs/normalize"
	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/pricer"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

func energyElement(minKwh *float64) ocpi.TariffElement {
	el := ocpi.TariffElement{
		PriceComponents: []ocpi.PriceComponent{
			{Type: ocpi.DimensionEnergy, Price: types.MoneyFromFloat(0.25), Vat: types.VatNone()},
		},
	}
	if minKwh != nil {
		k := types.KwhFromFloat(*minKwh)
		el.Restrictions = &ocpi.TariffRestriction{MinKwh: &k}
	}
	return el
}

func floatPtr(v float64) *float64 { return &v }

func TestNormalizeDropsShadowedElement(t *testing.T) {
	tariff := ocpi.Tariff{
		ID: "t1",
		Elements: []ocpi.TariffElement{
			energyElement(floatPtr(5)),
			energyElement(floatPtr(10)),
			energyElement(nil),
		},
	}

	normalized := normalize.Normalize(tariff, nil)

	require.Len(t, normalized.Elements, 2)
	assert.Empty(t, lint.Lint(normalized, nil))
}

func TestNormalizeDropsEmptyElement(t *testing.T) {
	tariff := ocpi.Tariff{
		ID: "t1",
		Elements: []ocpi.TariffElement{
			{PriceComponents: nil},
			energyElement(nil),
		},
	}

	normalized := normalize.Normalize(tariff, nil)

	require.Len(t, normalized.Elements, 1)
	assert.Len(t, normalized.Elements[0].PriceComponents, 1)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	tariff := ocpi.Tariff{
		ID: "t1",
		Elements: []ocpi.TariffElement{
			{PriceComponents: []ocpi.PriceComponent{
				{Type: ocpi.DimensionEnergy, Price: types.MoneyFromFloat(0.25)},
				{Type: ocpi.DimensionEnergy, Price: types.MoneyFromFloat(0.30)},
			}},
			energyElement(nil),
		},
	}

	once := normalize.Normalize(tariff, nil)
	twice := normalize.Normalize(once, nil)

	assert.Equal(t, once, twice)
}

// TestNormalizePricesTheSameAsTheOriginalTariff checks spec.md §8's
// round-trip property: stripping redundant elements/components can only
// remove coverage that was never reachable, so pricing any session
// against the normalized tariff must match pricing it against the
// original.
func TestNormalizePricesTheSameAsTheOriginalTariff(t *testing.T) {
	tariff := ocpi.Tariff{
		ID: "t1", Currency: "EUR",
		Elements: []ocpi.TariffElement{
			energyElement(floatPtr(5)),
			energyElement(floatPtr(10)),
			energyElement(nil),
		},
	}

	start := time.Date(2022, 1, 11, 14, 0, 0, 0, time.UTC)
	energy := types.KwhFromFloat(12.0)
	cdr := ocpi.Cdr{
		StartDateTime: start,
		EndDateTime:   start.Add(30 * time.Minute),
		Currency:      "EUR",
		Tariffs:       []ocpi.Tariff{tariff},
		CdrLocation:   ocpi.CdrLocation{Country: "NLD"},
		ChargingPeriods: []ocpi.ChargingPeriod{
			{StartDateTime: start, Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: &energy},
			}},
		},
	}

	normalized := normalize.Normalize(tariff, nil)

	originalReport, err := pricer.New(cdr).WithTariffs([]ocpi.Tariff{tariff}).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)
	normalizedReport, err := pricer.New(cdr).WithTariffs([]ocpi.Tariff{normalized}).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)

	assert.Equal(t, originalReport.TotalCost, normalizedReport.TotalCost)
	assert.Equal(t, originalReport.TotalEnergy, normalizedReport.TotalEnergy)
}
