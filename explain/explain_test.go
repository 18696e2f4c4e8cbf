package explain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandemdrive/ocpi-tariffs/explain"
	"github.com/tandemdrive/ocpi-tariffs/ocpi"
	"github.com/tandemdrive/ocpi-tariffs/types"
)

func TestTariffRendersComponentPrices(t *testing.T) {
	tariff := ocpi.Tariff{
		Elements: []ocpi.TariffElement{
			{PriceComponents: []ocpi.PriceComponent{
				{Type: ocpi.DimensionEnergy, Price: types.MoneyFromFloat(0.25)},
				{Type: ocpi.DimensionFlat, Price: types.MoneyFromFloat(1.5)},
			}},
		},
	}

	rendered := explain.Tariff(tariff)

	require.Len(t, rendered.Elements, 1)
	require.NotNil(t, rendered.Elements[0].Components.Energy)
	assert.Equal(t, "0.2500", rendered.Elements[0].Components.Energy.String())
	require.NotNil(t, rendered.Elements[0].Components.Flat)
	assert.Equal(t, "1.5000", rendered.Elements[0].Components.Flat.String())
	assert.Nil(t, rendered.Elements[0].Components.Time)
}

func TestRestrictionsRendersTimeWindow(t *testing.T) {
	startTime := types.LocalTime{Hour: 22, Minute: 0}
	endTime := types.LocalTime{Hour: 6, Minute: 0}

	clauses := explain.Restrictions(&ocpi.TariffRestriction{StartTime: &startTime, EndTime: &endTime})

	require.Len(t, clauses, 1)
	assert.Equal(t, "between 22:00 and 06:00", clauses[0])
}

func TestRestrictionsRendersKwhBounds(t *testing.T) {
	minKwh := types.KwhFromFloat(5)

	clauses := explain.Restrictions(&ocpi.TariffRestriction{MinKwh: &minKwh})

	require.Len(t, clauses, 1)
	assert.Equal(t, "total energy exceeds 5.0000 kWh", clauses[0])
}
