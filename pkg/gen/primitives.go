package gen

import (
	"math"

	"github.com/matzehuels/casegen/pkg/errors"
)

// DefaultCharset is used by String when no charset is given.
const DefaultCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MaxSpan is the number of values in the widest integer range a single draw
// can cover. Larger ranges would be drawn with float64 precision loss.
const MaxSpan = 1 << 53

// Int returns a uniform integer in [min, max]. It consumes one draw.
func (g *Generator) Int(min, max int) (int, error) {
	if err := checkRange("min", "max", min, max); err != nil {
		return 0, err
	}
	return g.intn(min, max), nil
}

// checkRange reports INVALID_RANGE when lo > hi or when [lo, hi] holds more
// than MaxSpan values.
func checkRange(loName, hiName string, lo, hi int) error {
	if lo > hi {
		return errors.New(errors.ErrCodeInvalidRange, "%s %d cannot be greater than %s %d", loName, lo, hiName, hi)
	}
	if spanOf(lo, hi) > MaxSpan {
		return errors.New(errors.ErrCodeInvalidRange, "range [%d, %d] holds more than %d values", lo, hi, uint64(MaxSpan))
	}
	return nil
}

// spanOf returns the number of integers in [lo, hi], saturating at
// math.MaxUint64. lo must not exceed hi.
func spanOf(lo, hi int) uint64 {
	d := uint64(hi) - uint64(lo)
	if d == math.MaxUint64 {
		return d
	}
	return d + 1
}

// intn is Int without the range check. The span is exact in float64 for
// ranges up to MaxSpan.
func (g *Generator) intn(min, max int) int {
	span := float64(spanOf(min, max))
	return int(math.Floor(g.src.Next()*span)) + min
}

// Float returns a value in [min, max] rounded to decimals fractional digits,
// halves away from zero. It consumes one draw.
func (g *Generator) Float(min, max float64, decimals int) (float64, error) {
	if min > max {
		return 0, errors.New(errors.ErrCodeInvalidRange, "min %v cannot be greater than max %v", min, max)
	}
	if decimals < 0 {
		return 0, errors.New(errors.ErrCodeInvalidRange, "decimals must be non-negative, got %d", decimals)
	}
	v := g.src.Next()*(max-min) + min
	return round(v, decimals), nil
}

func round(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	r := math.Round(v*scale) / scale
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}

// String returns length characters drawn independently from charset.
// An empty charset selects DefaultCharset. Characters are runes, so
// multi-byte charsets are supported. It consumes length draws.
func (g *Generator) String(length int, charset string) (string, error) {
	if length < 0 {
		return "", errors.New(errors.ErrCodeInvalidSize, "length must be non-negative, got %d", length)
	}
	if charset == "" {
		charset = DefaultCharset
	}
	runes := []rune(charset)
	out := make([]rune, length)
	for i := range out {
		out[i] = runes[g.intn(0, len(runes)-1)]
	}
	return string(out), nil
}

// Bool returns true with the given probability. It consumes one draw.
// Probabilities at or below 0 always yield false; at or above 1, true.
func (g *Generator) Bool(probability float64) bool {
	return g.src.Next() < probability
}

// Choice returns one element of items, chosen uniformly. It consumes one draw.
func (g *Generator) Choice(items []any) (any, error) {
	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "cannot choose from an empty list")
	}
	return items[g.intn(0, len(items)-1)], nil
}

// Subset returns size distinct elements of items in random order. The input
// is not modified. A Fisher-Yates pass over a copy consumes len(items)-1
// draws regardless of size.
func (g *Generator) Subset(items []any, size int) ([]any, error) {
	if size < 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "subset size must be non-negative, got %d", size)
	}
	if size > len(items) {
		return nil, errors.New(errors.ErrCodeSizeExceedsInput, "subset size %d cannot be larger than input length %d", size, len(items))
	}
	shuffled := make([]any, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := g.intn(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:size], nil
}
