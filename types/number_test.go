package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandemdrive/ocpi-tariffs/types"
)

func TestNumberSaturatingAdd(t *testing.T) {
	huge := types.NumberFromFloat(7e28)
	sum := huge.Add(huge)

	// Must not wrap around to a negative value.
	assert.Equal(t, 1, sum.Sign())
}

func TestNumberSaturatingSub(t *testing.T) {
	huge := types.NumberFromFloat(-7e28)
	diff := huge.Sub(types.NumberFromFloat(7e28))

	assert.Equal(t, -1, diff.Sign())
}

func TestNumberWithScaleRounds(t *testing.T) {
	n := types.NumberFromFloat(1.23456)
	assert.Equal(t, "1.2346", n.WithScale().String())
}

func TestNumberJSONRoundTrip(t *testing.T) {
	var n types.Number
	require.NoError(t, n.UnmarshalJSON([]byte("12.30000")))
	assert.Equal(t, "12.3000", n.String())

	data, err := n.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "12.3000", string(data))
}

func TestNumberInt64Overflow(t *testing.T) {
	huge := types.NumberFromFloat(1e20)
	_, ok := huge.Int64()
	assert.False(t, ok)

	small := types.NumberFromInt(42)
	v, ok := small.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(42), v)
}
