package v211_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/ocpi/v211"
	"github.com/tandemdrive/ocpi-tariffs/pricer"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

func TestTariffUpgradeTagsEveryComponentVatUnknown(t *testing.T) {
	legacy := v211.Tariff{
		ID: "t1",
		Elements: []v211.TariffElement{
			{PriceComponents: []v211.PriceComponent{
				{Type: ocpi.DimensionEnergy, Price: types.MoneyFromFloat(0.25), StepSize: 1000},
			}},
		},
	}

	upgraded := legacy.ToV221()

	require.Len(t, upgraded.Elements, 1)
	require.Len(t, upgraded.Elements[0].PriceComponents, 1)
	assert.True(t, upgraded.Elements[0].PriceComponents[0].Vat.IsUnknown())
}

func TestCdrUpgradeDropsFlatDimension(t *testing.T) {
	start := time.Date(2022, 1, 11, 10, 0, 0, 0, time.UTC)
	energy := types.KwhFromFloat(1)

	legacy := v211.Cdr{
		StartDateTime: start,
		StopDateTime:  start.Add(time.Hour),
		Currency:      "EUR",
		Location:      v211.Location{Country: "NLD"},
		ChargingPeriods: []v211.ChargingPeriod{
			{StartDateTime: start, Dimensions: []v211.CdrDimension{
				{Type: v211.CdrDimensionFlat},
				{Type: v211.CdrDimensionEnergy, Energy: &energy},
			}},
		},
		TotalCost:   types.MoneyFromFloat(1.5),
		TotalEnergy: energy,
	}

	upgraded := legacy.ToV221()

	require.Len(t, upgraded.ChargingPeriods, 1)
	dims := upgraded.ChargingPeriods[0].Dimensions
	require.Len(t, dims, 1)
	assert.Equal(t, ocpi.CdrDimensionEnergy, dims[0].Type)
}

func TestCdrUpgradeHasNoInclVat(t *testing.T) {
	start := time.Date(2022, 1, 11, 10, 0, 0, 0, time.UTC)

	legacy := v211.Cdr{
		StartDateTime: start,
		StopDateTime:  start.Add(time.Hour),
		TotalCost:     types.MoneyFromFloat(1.5),
	}

	upgraded := legacy.ToV221()

	assert.Nil(t, upgraded.TotalCost.InclVat)
	assert.Equal(t, "1.5000", upgraded.TotalCost.ExclVat.WithScale().String())
}

// TestUpgradedCdrPricesTheSameAsItsNativeV221Equivalent checks
// spec.md §8's round-trip property: a 2.1.1 CDR upgraded via ToV221
// must price identically to the 2.2.1 CDR it is semantically
// equivalent to, since the adapter only changes field shape, never
// billable volumes or prices.
func TestUpgradedCdrPricesTheSameAsItsNativeV221Equivalent(t *testing.T) {
	start := time.Date(2022, 1, 11, 14, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	energy := types.KwhFromFloat(12.0)

	legacyTariff := v211.Tariff{
		ID: "t1", Currency: "EUR",
		Elements: []v211.TariffElement{
			{PriceComponents: []v211.PriceComponent{
				{Type: ocpi.DimensionEnergy, Price: types.MoneyFromFloat(0.25)},
			}},
		},
	}

	legacy := v211.Cdr{
		StartDateTime: start,
		StopDateTime:  end,
		Currency:      "EUR",
		Tariffs:       []v211.Tariff{legacyTariff},
		Location:      v211.Location{Country: "NLD"},
		ChargingPeriods: []v211.ChargingPeriod{
			{StartDateTime: start, Dimensions: []v211.CdrDimension{
				{Type: v211.CdrDimensionEnergy, Energy: &energy},
			}},
		},
		TotalCost:   types.MoneyFromFloat(3.0),
		TotalEnergy: energy,
	}

	native := ocpi.Cdr{
		StartDateTime: start,
		EndDateTime:   end,
		Currency:      "EUR",
		Tariffs: []ocpi.Tariff{{
			ID: "t1", Currency: "EUR",
			Elements: []ocpi.TariffElement{
				{PriceComponents: []ocpi.PriceComponent{
					{Type: ocpi.DimensionEnergy, Price: types.MoneyFromFloat(0.25), Vat: types.VatUnknown()},
				}},
			},
		}},
		CdrLocation: ocpi.CdrLocation{Country: "NLD"},
		ChargingPeriods: []ocpi.ChargingPeriod{
			{StartDateTime: start, Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: &energy},
			}},
		},
		TotalCost:   types.Price{ExclVat: types.MoneyFromFloat(3.0)},
		TotalEnergy: energy,
	}

	upgradedReport, err := pricer.New(legacy.ToV221()).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)
	nativeReport, err := pricer.New(native).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)

	assert.Equal(t, nativeReport.TotalCost.ExclVat, upgradedReport.TotalCost.ExclVat)
	assert.Equal(t, nativeReport.TotalEnergy, upgradedReport.TotalEnergy)
	assert.Nil(t, upgradedReport.TotalCost.InclVat)
}
