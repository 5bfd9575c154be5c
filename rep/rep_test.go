package rep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRep_Predicates(t *testing.T) {
	assert.True(t, Int32.IsIntegral())
	assert.True(t, Uint8.IsIntegral())
	assert.False(t, Float64.IsIntegral())

	assert.True(t, Float32.IsFloat())
	assert.False(t, Int64.IsFloat())

	assert.True(t, Int16.IsSigned())
	assert.True(t, Float64.IsSigned())
	assert.False(t, Uint64.IsSigned())

	assert.True(t, Int8.IsBounded())
	assert.False(t, Opaque().IsBounded())
}

func TestRep_Limits(t *testing.T) {
	assert.Equal(t, int64(-128), Int8.Lowest().Int())
	assert.Equal(t, int64(127), Int8.Highest().Int())
	assert.Equal(t, int64(math.MinInt64), Int64.Lowest().Int())
	assert.Equal(t, int64(math.MaxInt64), Int64.Highest().Int())

	assert.Equal(t, uint64(0), Uint16.Lowest().Uint())
	assert.Equal(t, uint64(65535), Uint16.Highest().Uint())
	assert.Equal(t, uint64(math.MaxUint64), Uint64.Highest().Uint())

	assert.Equal(t, float64(math.MaxFloat32), Float32.Highest().Float())
	assert.Equal(t, -math.MaxFloat64, Float64.Lowest().Float())
}

func TestRep_String(t *testing.T) {
	assert.Equal(t, "int32", Int32.String())
	assert.Equal(t, "uint8", Uint8.String())
	assert.Equal(t, "float64", Float64.String())
	assert.Equal(t, "opaque", Opaque().String())
}

func TestParse_RoundTrip(t *testing.T) {
	for _, r := range []Rep{Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Float32, Float64} {
		got, err := Parse(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := Parse("int128")
	assert.Error(t, err)
}

func TestRepOf(t *testing.T) {
	assert.Equal(t, Int8, RepOf[int8]())
	assert.Equal(t, Int64, RepOf[int64]())
	assert.Equal(t, Uint32, RepOf[uint32]())
	assert.Equal(t, Float32, RepOf[float32]())
	assert.Equal(t, Float64, RepOf[float64]())
}
