package pricer_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/pricer"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

func utc(s string) types.DateTime {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func kwh(v float64) *types.Kwh {
	k := types.KwhFromFloat(v)
	return &k
}

func hours(v float64) *types.HoursDecimal {
	h, err := types.HoursFromDecimal(types.NumberFromFloat(v))
	if err != nil {
		panic(err)
	}
	return &h
}

func energyComponent(price float64, vat types.CompatibilityVat, stepSize uint64) ocpi.TariffElement {
	return ocpi.TariffElement{
		PriceComponents: []ocpi.PriceComponent{
			{Type: ocpi.DimensionEnergy, Price: types.MoneyFromFloat(price), Vat: vat, StepSize: stepSize},
		},
	}
}

func baseCdr(start, end types.DateTime, periods []ocpi.ChargingPeriod, elements []ocpi.TariffElement) ocpi.Cdr {
	return ocpi.Cdr{
		StartDateTime: start,
		EndDateTime:   end,
		Currency:      "EUR",
		Tariffs: []ocpi.Tariff{
			{ID: "t1", Currency: "EUR", Elements: elements},
		},
		CdrLocation:     ocpi.CdrLocation{Country: "NLD"},
		ChargingPeriods: periods,
	}
}

func TestSingleEnergyElementNoStepSize(t *testing.T) {
	cdr := baseCdr(
		utc("2022-01-11T14:00:00Z"), utc("2022-01-11T14:30:00Z"),
		[]ocpi.ChargingPeriod{
			{StartDateTime: utc("2022-01-11T14:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(12.0)},
			}},
		},
		[]ocpi.TariffElement{energyComponent(0.25, types.VatNone(), 0)},
	)

	report, err := pricer.New(cdr).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)

	assert.Equal(t, "12.0000", report.TotalEnergy.WithScale().String())
	assert.Equal(t, "3.0000", report.TotalEnergyCost.ExclVat.WithScale().String())
	require.NotNil(t, report.TotalEnergyCost.InclVat)
	assert.Equal(t, "3.0000", report.TotalEnergyCost.InclVat.WithScale().String())
	assert.Equal(t, "3.0000", report.TotalCost.ExclVat.WithScale().String())
	assert.Equal(t, "3.0000", report.TotalCost.InclVat.WithScale().String())
}

func TestBuildReportAssignsUniqueID(t *testing.T) {
	cdr := baseCdr(
		utc("2022-01-11T14:00:00Z"), utc("2022-01-11T14:30:00Z"),
		[]ocpi.ChargingPeriod{
			{StartDateTime: utc("2022-01-11T14:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(12.0)},
			}},
		},
		[]ocpi.TariffElement{energyComponent(0.25, types.VatNone(), 0)},
	)

	first, err := pricer.New(cdr).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)
	second, err := pricer.New(cdr).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestEnergyStepSizeRoundsUp(t *testing.T) {
	cdr := baseCdr(
		utc("2022-01-11T14:00:00Z"), utc("2022-01-11T14:30:00Z"),
		[]ocpi.ChargingPeriod{
			{StartDateTime: utc("2022-01-11T14:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(12.3)},
			}},
		},
		[]ocpi.TariffElement{energyComponent(0.25, types.VatNone(), 1000)},
	)

	report, err := pricer.New(cdr).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)

	assert.Equal(t, "13.0000", report.BilledEnergy.WithScale().String())
	assert.Equal(t, "3.2500", report.TotalEnergyCost.ExclVat.WithScale().String())
	require.Len(t, report.Periods, 1)
	require.NotNil(t, report.Periods[0].Dimensions.Energy.BilledVolume)
	assert.Equal(t, "13.0000", report.Periods[0].Dimensions.Energy.BilledVolume.WithScale().String())
}

func TestTimeAndParkingSuppressesTimeStepSize(t *testing.T) {
	element := ocpi.TariffElement{
		PriceComponents: []ocpi.PriceComponent{
			{Type: ocpi.DimensionTime, Price: types.MoneyFromFloat(2.0), Vat: types.VatNone(), StepSize: 3600},
			{Type: ocpi.DimensionParkingTime, Price: types.MoneyFromFloat(1.0), Vat: types.VatNone(), StepSize: 1800},
		},
	}

	cdr := baseCdr(
		utc("2022-01-11T10:00:00Z"), utc("2022-01-11T12:00:00Z"),
		[]ocpi.ChargingPeriod{
			{StartDateTime: utc("2022-01-11T10:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionTime, Time: hours(1.0)},
			}},
			{StartDateTime: utc("2022-01-11T11:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionParkingTime, ParkingTime: hours(1.0)},
			}},
		},
		[]ocpi.TariffElement{element},
	)

	report, err := pricer.New(cdr).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)

	assert.Equal(t, "2.0000", report.TotalTimeCost.ExclVat.WithScale().String())
	assert.Equal(t, "1.0000", report.TotalParkingCost.ExclVat.WithScale().String())
	assert.Equal(t, "01:00:00", report.BilledChargingTime.String())
}

func TestVatUnknownPropagatesToEveryTotal(t *testing.T) {
	cdr := baseCdr(
		utc("2022-01-11T14:00:00Z"), utc("2022-01-11T14:30:00Z"),
		[]ocpi.ChargingPeriod{
			{StartDateTime: utc("2022-01-11T14:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(12.0)},
			}},
		},
		[]ocpi.TariffElement{energyComponent(0.25, types.VatUnknown(), 0)},
	)

	report, err := pricer.New(cdr).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)

	assert.Nil(t, report.TotalEnergyCost.InclVat)
	assert.Nil(t, report.TotalCost.InclVat)
}

func TestFlatFeeChargedAtMostOnce(t *testing.T) {
	element := ocpi.TariffElement{
		PriceComponents: []ocpi.PriceComponent{
			{Type: ocpi.DimensionFlat, Price: types.MoneyFromFloat(1.5), Vat: types.VatNone(), StepSize: 0},
		},
	}

	cdr := baseCdr(
		utc("2022-01-11T10:00:00Z"), utc("2022-01-11T12:00:00Z"),
		[]ocpi.ChargingPeriod{
			{StartDateTime: utc("2022-01-11T10:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(1.0)},
			}},
			{StartDateTime: utc("2022-01-11T11:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(1.0)},
			}},
		},
		[]ocpi.TariffElement{element},
	)

	report, err := pricer.New(cdr).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)

	assert.Equal(t, "1.5000", report.TotalFixedCost.ExclVat.WithScale().String())
	require.Len(t, report.Periods, 2)
	assert.True(t, report.Periods[0].Dimensions.Flat.Present)
	assert.False(t, report.Periods[1].Dimensions.Flat.Present)
}

func TestTotalTimeEqualsLastEndMinusFirstStart(t *testing.T) {
	cdr := baseCdr(
		utc("2022-01-11T10:00:00Z"), utc("2022-01-11T12:30:00Z"),
		[]ocpi.ChargingPeriod{
			{StartDateTime: utc("2022-01-11T10:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(1.0)},
			}},
			{StartDateTime: utc("2022-01-11T11:15:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(1.0)},
			}},
		},
		[]ocpi.TariffElement{energyComponent(0.1, types.VatNone(), 0)},
	)

	report, err := pricer.New(cdr).WithTimeZone(time.UTC).BuildReport()
	require.NoError(t, err)

	assert.Equal(t, "02:30:00", report.TotalTime.String())
}

func TestNoActiveTariffReturnsErrNoValidTariff(t *testing.T) {
	start := utc("2023-01-01T00:00:00Z")
	windowStart := utc("2024-01-01T00:00:00Z")

	cdr := baseCdr(
		start, utc("2023-01-01T01:00:00Z"),
		[]ocpi.ChargingPeriod{
			{StartDateTime: start, Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(1.0)},
			}},
		},
		nil,
	)
	cdr.Tariffs[0].StartDateTime = &windowStart

	_, err := pricer.New(cdr).WithTimeZone(time.UTC).BuildReport()
	require.ErrorIs(t, err, pricer.ErrNoValidTariff)
}

func TestResolveZoneMissingWithoutDetection(t *testing.T) {
	cdr := baseCdr(
		utc("2022-01-11T10:00:00Z"), utc("2022-01-11T11:00:00Z"),
		[]ocpi.ChargingPeriod{
			{StartDateTime: utc("2022-01-11T10:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(1.0)},
			}},
		},
		[]ocpi.TariffElement{energyComponent(0.1, types.VatNone(), 0)},
	)

	_, err := pricer.New(cdr).BuildReport()
	require.ErrorIs(t, err, pricer.ErrTimeZoneMissing)
}

func TestDetectTimeZoneFallsBackToCountryResolver(t *testing.T) {
	cdr := baseCdr(
		utc("2022-01-11T10:00:00Z"), utc("2022-01-11T11:00:00Z"),
		[]ocpi.ChargingPeriod{
			{StartDateTime: utc("2022-01-11T10:00:00Z"), Dimensions: []ocpi.CdrDimension{
				{Type: ocpi.CdrDimensionEnergy, Energy: kwh(1.0)},
			}},
		},
		[]ocpi.TariffElement{energyComponent(0.1, types.VatNone(), 0)},
	)

	_, err := pricer.New(cdr).DetectTimeZone(true).BuildReport()
	require.NoError(t, err)
}
