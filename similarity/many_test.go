package similarity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bloomscore/bitarray"
	"github.com/hupe1980/bloomscore/testutil"
)

func TestPopcountMany(t *testing.T) {
	arrays := []bitarray.BitArray{bits1111011, bits1000011, bitarray.Zeros(7)}
	out := make([]int, len(arrays))

	require.NoError(t, PopcountMany(arrays, out))
	assert.Equal(t, []int{6, 3, 0}, out)

	err := PopcountMany(arrays, make([]int, 2))
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, PopcountMany(nil, nil))
}

func TestDiceOneAgainstMany(t *testing.T) {
	rng := testutil.NewRNG(4711)
	query := rng.BitArray(1024)
	many := rng.BitArrays(64, 1024)
	many = append(many, query, query.Complement(), bitarray.Zeros(1024))

	counts := make([]int, len(many))
	require.NoError(t, PopcountMany(many, counts))

	withCounts := make([]float64, len(many))
	require.NoError(t, DiceOneAgainstMany(query, many, counts, withCounts))

	computed := make([]float64, len(many))
	require.NoError(t, DiceOneAgainstMany(query, many, nil, computed))

	for i, c := range many {
		want, err := DiceReference(query, c)
		require.NoError(t, err)
		assert.Equal(t, want, withCounts[i], "candidate %d", i)
		assert.Equal(t, want, computed[i], "candidate %d", i)
	}

	n := len(many)
	assert.Equal(t, 1.0, computed[n-3])
	assert.Equal(t, 0.0, computed[n-2])
}

func TestDiceOneAgainstManyAllZero(t *testing.T) {
	zero := bitarray.Zeros(128)
	out := []float64{-1, -1}
	require.NoError(t, DiceOneAgainstMany(zero, []bitarray.BitArray{zero, zero}, nil, out))
	assert.Equal(t, []float64{0, 0}, out)
}

func TestDiceOneAgainstManyErrors(t *testing.T) {
	query := bitarray.Zeros(8)
	many := []bitarray.BitArray{bitarray.Zeros(8), bitarray.Zeros(9)}

	err := DiceOneAgainstMany(query, many, nil, make([]float64, 2))
	require.Error(t, err)
	var lm *ErrLengthMismatch
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, 1, lm.Index)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = DiceOneAgainstMany(query, many[:1], nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = DiceOneAgainstMany(query, many[:1], []int{}, make([]float64, 1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func BenchmarkDiceOneAgainstMany(b *testing.B) {
	rng := testutil.NewRNG(1)
	query := rng.BitArray(1024)
	many := rng.BitArrays(1000, 1024)
	counts := make([]int, len(many))
	_ = PopcountMany(many, counts)
	out := make([]float64, len(many))

	b.Run("Precounted", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = DiceOneAgainstMany(query, many, counts, out)
		}
	})
	b.Run("Computed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = DiceOneAgainstMany(query, many, nil, out)
		}
	})
}
