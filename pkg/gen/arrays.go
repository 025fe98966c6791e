package gen

import "github.com/matzehuels/casegen/pkg/errors"

// IntArray returns an array whose length is drawn from [minLength, maxLength]
// and whose values lie in [min, max].
//
// The length is drawn first. With unique set, values are redrawn until unseen,
// so the array holds distinct values in draw order; RANGE_TOO_SMALL is
// returned, after the length draw and before any value draw, when the range
// holds fewer values than the drawn length.
func (g *Generator) IntArray(minLength, maxLength, min, max int, unique bool) ([]int, error) {
	if minLength > maxLength {
		return nil, errors.New(errors.ErrCodeInvalidRange, "minLength %d cannot be greater than maxLength %d", minLength, maxLength)
	}
	if minLength < 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "minLength must be non-negative, got %d", minLength)
	}
	if err := checkRange("minLength", "maxLength", minLength, maxLength); err != nil {
		return nil, err
	}
	if err := checkRange("min", "max", min, max); err != nil {
		return nil, err
	}

	n := g.intn(minLength, maxLength)
	if unique && spanOf(min, max) < uint64(n) {
		return nil, errors.New(errors.ErrCodeRangeTooSmall, "cannot draw %d unique values from [%d, %d]", n, min, max)
	}
	return g.ints(n, min, max, unique), nil
}

// ints draws n values in [min, max]. Callers have checked feasibility.
func (g *Generator) ints(n, min, max int, unique bool) []int {
	out := make([]int, 0, n)
	if !unique {
		for range n {
			out = append(out, g.intn(min, max))
		}
		return out
	}

	used := make(map[int]struct{}, n)
	for len(out) < n {
		v := g.intn(min, max)
		if _, seen := used[v]; seen {
			continue
		}
		used[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Matrix returns rows rows of cols values each, drawn independently from
// [min, max] in row-major order.
func (g *Generator) Matrix(rows, cols, min, max int) ([][]int, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "matrix dimensions must be non-negative, got %dx%d", rows, cols)
	}
	if err := checkRange("min", "max", min, max); err != nil {
		return nil, err
	}

	m := make([][]int, rows)
	for i := range m {
		m[i] = g.ints(cols, min, max, false)
	}
	return m, nil
}
