package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandemdrive/ocpi-tariffs/types"
)

func TestHoursDecimalFromMinutes(t *testing.T) {
	cases := []struct {
		name     string
		minutes  time.Duration
		expected types.Number
	}{
		{"zero minutes is zero hours", 0, types.NumberFromFloat(0)},
		{"thirty minutes is half an hour", 30 * time.Minute, types.NumberFromFloat(0.5)},
		{"sixty minutes is one hour", 60 * time.Minute, types.NumberFromFloat(1)},
		{"ninety minutes is one and a half hours", 90 * time.Minute, types.NumberFromFloat(1.5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hours := types.HoursFromDuration(tc.minutes)
			assert.Equal(t, 0, hours.AsHoursDecimal().Cmp(tc.expected))
		})
	}
}

func TestHoursFromDecimalOverflow(t *testing.T) {
	huge := types.NumberFromInt(1).Mul(types.NumberFromInt(1))
	for i := 0; i < 40; i++ {
		huge = huge.Mul(types.NumberFromInt(1_000_000_000))
	}

	_, err := types.HoursFromDecimal(huge)
	require.Error(t, err)
}

func TestSecondsRoundRejectsNegative(t *testing.T) {
	_, err := types.SecondsRoundFromInt(-1)
	require.Error(t, err)

	s, err := types.SecondsRoundFromInt(30)
	require.NoError(t, err)
	assert.Equal(t, int64(30), s.Seconds())
}

func TestHoursDecimalDisplay(t *testing.T) {
	hours, err := types.HoursFromDecimal(types.NumberFromFloat(1.5))
	require.NoError(t, err)
	assert.Equal(t, "01:30:00", hours.String())
}

func TestHoursDecimalSaturatingAdd(t *testing.T) {
	// Two durations each close to the int64-millisecond ceiling; their true
	// sum would overflow, so Add must saturate rather than wrap negative.
	large, err := types.HoursFromDecimal(types.NumberFromFloat(2.5e12))
	require.NoError(t, err)

	sum := large.Add(large)
	assert.True(t, sum.Cmp(large) >= 0, "saturating add must not wrap below either operand")
}

func TestLocalTimeOrdering(t *testing.T) {
	morning := types.LocalTime{Hour: 6, Minute: 0}
	evening := types.LocalTime{Hour: 22, Minute: 0}

	assert.True(t, morning.Before(evening))
	assert.False(t, evening.Before(morning))
	assert.True(t, morning.BeforeOrEqual(morning))
}

func TestDayOfWeekRoundTrip(t *testing.T) {
	data, err := types.Monday.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"MONDAY"`, string(data))

	var d types.DayOfWeek
	require.NoError(t, d.UnmarshalJSON(data))
	assert.Equal(t, types.Monday, d)
}
