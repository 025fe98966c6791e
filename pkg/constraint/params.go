package constraint

import (
	"math"

	"github.com/matzehuels/casegen/pkg/errors"
)

// MaxInt is the largest magnitude an integer parameter may have: the largest
// integer n such that every integer in [-n, n] is exactly representable as a
// float64.
const MaxInt = 1<<53 - 1

// Float returns the value of a required numeric parameter.
func Float(param string, v *float64) (float64, error) {
	if v == nil {
		return 0, errors.New(errors.ErrCodeMissingParameter, "missing required parameter %q", param)
	}
	if math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, errors.New(errors.ErrCodeInvalidParameter, "parameter %q must be finite", param)
	}
	return *v, nil
}

// FloatOr returns the value of an optional numeric parameter, or def when it
// is absent.
func FloatOr(param string, v *float64, def float64) (float64, error) {
	if v == nil {
		return def, nil
	}
	return Float(param, v)
}

// Int returns the value of a required integer parameter.
func Int(param string, v *float64) (int, error) {
	f, err := Float(param, v)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, errors.New(errors.ErrCodeInvalidParameter, "parameter %q must be an integer, got %v", param, f)
	}
	if math.Abs(f) > MaxInt {
		return 0, errors.New(errors.ErrCodeInvalidParameter, "parameter %q out of range: %v", param, f)
	}
	return int(f), nil
}

// IntOr returns the value of an optional integer parameter, or def when it is
// absent.
func IntOr(param string, v *float64, def int) (int, error) {
	if v == nil {
		return def, nil
	}
	return Int(param, v)
}

// IntRange returns the required min and max parameters as integers.
func (c Constraint) IntRange() (lo, hi int, err error) {
	if lo, err = Int("min", c.Min); err != nil {
		return 0, 0, err
	}
	if hi, err = Int("max", c.Max); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// Lengths returns the array length bounds of an intArray constraint.
// Either both minLength and maxLength are given, or size fixes the length.
func (c Constraint) Lengths() (lo, hi int, err error) {
	if c.MinLength == nil && c.MaxLength == nil && c.Size != nil {
		n, err := Int("size", c.Size)
		if err != nil {
			return 0, 0, err
		}
		return n, n, nil
	}
	if lo, err = Int("minLength", c.MinLength); err != nil {
		return 0, 0, err
	}
	if hi, err = Int("maxLength", c.MaxLength); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}
