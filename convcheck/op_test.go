package convcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitsafe/mag"
	"github.com/unitsafe/mag/rep"
)

func TestDivideByInteger_RejectsNonInteger(t *testing.T) {
	_, err := DivideByInteger(rep.Int32, mag.Inverse(mag.MustFromInt(2)))
	require.Error(t, err)
	assert.True(t, mag.IsBadInput(err))

	_, err = DivideByInteger(rep.Int32, mag.Pi)
	require.Error(t, err)
	assert.True(t, mag.IsBadInput(err))
}

func TestDivideByInteger_AcceptsNegativeInteger(t *testing.T) {
	_, err := DivideByInteger(rep.Int32, mag.MustFromInt(-4))
	assert.NoError(t, err)
}

func TestSequence_RequiresChainedReps(t *testing.T) {
	_, err := Sequence(
		Cast(rep.Int32, rep.Int64),
		MultiplyBy(rep.Int32, mag.MustFromInt(2)),
	)
	require.Error(t, err)
	assert.True(t, mag.IsBadInput(err))
}

func TestSequence_Empty(t *testing.T) {
	_, err := Sequence()
	require.Error(t, err)
	assert.True(t, mag.IsBadInput(err))
}

func TestSequence_FlattensNested(t *testing.T) {
	inner, err := Sequence(
		Cast(rep.Int32, rep.Int64),
		MultiplyBy(rep.Int64, mag.MustFromInt(2)),
	)
	require.NoError(t, err)

	outer, err := Sequence(inner, Cast(rep.Int64, rep.Float64))
	require.NoError(t, err)

	assert.Equal(t, rep.Int32, outer.InputRep())
	assert.Equal(t, rep.Float64, outer.OutputRep())
}

func TestOp_Reps(t *testing.T) {
	c := Cast(rep.Int8, rep.Float32)
	assert.Equal(t, rep.Int8, c.InputRep())
	assert.Equal(t, rep.Float32, c.OutputRep())

	m := MultiplyBy(rep.Uint64, mag.MustFromInt(7))
	assert.Equal(t, rep.Uint64, m.InputRep())
	assert.Equal(t, rep.Uint64, m.OutputRep())
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "cast[int8 -> float32]", Cast(rep.Int8, rep.Float32).String())
	assert.Equal(t, "multiply[int32 by 2 * 5]", MultiplyBy(rep.Int32, mag.MustFromInt(10)).String())
}
