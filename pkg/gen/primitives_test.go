package gen

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/casegen/pkg/errors"
)

func TestIntSeeded(t *testing.T) {
	g := New(WithSeed(12345))

	a, err := g.Int(1, 100)
	require.NoError(t, err)
	b, err := g.Int(1, 100)
	require.NoError(t, err)

	assert.Equal(t, 3, a)
	assert.Equal(t, 2, b)
}

func TestIntSequence(t *testing.T) {
	g := New(WithSeed(7))
	var got []int
	for range 5 {
		v, err := g.Int(0, 9)
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 9, 6, 9, 0}, got)
}

func TestIntDegenerateRange(t *testing.T) {
	g := New(WithSeed(1))
	for range 20 {
		v, err := g.Int(5, 5)
		require.NoError(t, err)
		assert.Equal(t, 5, v)
	}
}

func TestIntInvalidRange(t *testing.T) {
	g := New(WithSeed(1))
	_, err := g.Int(10, 1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange))
}

func TestIntLargeRanges(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		want     []int
		code     errors.Code
	}{
		{"beyond int32", 0, 10_000_000_000, []int{2387808398, 9134932647, 6124916664}, ""},
		{"widest span", -(1 << 52), 1<<52 - 1, []int{-2352853024768000, 3724416225640448}, ""},
		{"span too wide", 0, 1 << 53, nil, errors.ErrCodeInvalidRange},
		{"full int range", math.MinInt, math.MaxInt, nil, errors.ErrCodeInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(WithSeed(7))
			if tt.code != "" {
				_, err := g.Int(tt.min, tt.max)
				assert.Equal(t, tt.code, errors.GetCode(err))
				return
			}
			for _, want := range tt.want {
				got, err := g.Int(tt.min, tt.max)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	g := New(WithSeed(12345))

	a, err := g.Float(0, 10, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, a, 1e-12)

	b, err := g.Float(-5, 5, 3)
	require.NoError(t, err)
	assert.InDelta(t, -4.835, b, 1e-12)
}

func TestFloatErrors(t *testing.T) {
	g := New(WithSeed(1))

	_, err := g.Float(2, 1, 2)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange))

	_, err = g.Float(0, 1, -1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidRange))
}

func TestFloatZeroDecimals(t *testing.T) {
	g := New(WithSeed(3))
	for range 50 {
		v, err := g.Float(-10, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, float64(int(v)), v)
	}
}

func TestString(t *testing.T) {
	g := New(WithSeed(12345))

	s, err := g.String(8, "")
	require.NoError(t, err)
	assert.Equal(t, "bbHN4gEH", s)

	s, err = g.String(5, "ab")
	require.NoError(t, err)
	assert.Equal(t, "bbabb", s)
}

func TestStringEdgeCases(t *testing.T) {
	g := New(WithSeed(9))

	s, err := g.String(0, "")
	require.NoError(t, err)
	assert.Empty(t, s)

	s, err = g.String(6, "αβγ")
	require.NoError(t, err)
	assert.Equal(t, 6, utf8.RuneCountInString(s))
	for _, r := range s {
		assert.Contains(t, "αβγ", string(r))
	}

	_, err = g.String(-1, "")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidSize))
}

func TestBool(t *testing.T) {
	g := New(WithSeed(1))
	for range 100 {
		assert.False(t, g.Bool(0))
		assert.True(t, g.Bool(1))
	}

	g = New(WithSeed(2024))
	_, err := g.Choice([]any{"x"})
	require.NoError(t, err)
	assert.False(t, g.Bool(0.5))
	assert.True(t, g.Bool(0.9))
}

func TestChoice(t *testing.T) {
	g := New(WithSeed(2024))
	v, err := g.Choice([]any{"x", "y", "z"})
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = g.Choice(nil)
	assert.True(t, errors.Is(err, errors.ErrCodeEmptyInput))
	_, err = g.Choice([]any{})
	assert.True(t, errors.Is(err, errors.ErrCodeEmptyInput))
}

func TestSubset(t *testing.T) {
	items := []any{"a", "b", "c", "d", "e"}
	g := New(WithSeed(11))

	got, err := g.Subset(items, 3)
	require.NoError(t, err)
	assert.Equal(t, []any{"c", "a", "d"}, got)
	assert.Equal(t, []any{"a", "b", "c", "d", "e"}, items, "input must not be modified")
}

func TestSubsetBounds(t *testing.T) {
	g := New(WithSeed(1))
	items := []any{1, 2, 3}

	all, err := g.Subset(items, 3)
	require.NoError(t, err)
	assert.ElementsMatch(t, items, all)

	none, err := g.Subset(items, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.NotNil(t, none)

	_, err = g.Subset(items, 4)
	assert.True(t, errors.Is(err, errors.ErrCodeSizeExceedsInput))

	_, err = g.Subset(items, -1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidSize))
}

func TestSetSeedResets(t *testing.T) {
	g := New()
	assert.False(t, g.Seeded())

	g.SetSeed(12345)
	assert.True(t, g.Seeded())
	first, _ := g.Int(1, 100)
	_, _ = g.Int(1, 100)

	g.SetSeed(12345)
	again, _ := g.Int(1, 100)
	assert.Equal(t, first, again)
}
