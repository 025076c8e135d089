/*
Package safemath provides checked arithmetic over unsigned 64 bit integers.

Each operation returns an error instead of silently wrapping around. Overflow
and underflow are reported as errors.ErrOverflow, a zero divisor as
errors.ErrInput. Division truncates toward zero.
*/
package safemath

import (
	"github.com/iov-one/weave/errors"
)

// Add returns a + b or an error if the result does not fit in uint64.
func Add(a, b uint64) (uint64, error) {
	c := a + b
	if c < a {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d + %d", a, b)
	}
	return c, nil
}

// Sub returns a - b or an error if b is greater than a.
func Sub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d - %d", a, b)
	}
	return a - b, nil
}

// Mul returns a * b or an error if the result does not fit in uint64.
func Mul(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/a != b {
		return 0, errors.Wrapf(errors.ErrOverflow, "%d * %d", a, b)
	}
	return c, nil
}

// Div returns a / b truncated toward zero. Dividing by zero is an error.
func Div(a, b uint64) (uint64, error) {
	if b == 0 {
		return 0, errors.Wrap(errors.ErrInput, "division by zero")
	}
	return a / b, nil
}

// MulAdd returns a * b + c.
func MulAdd(a, b, c uint64) (uint64, error) {
	ab, err := Mul(a, b)
	if err != nil {
		return 0, err
	}
	return Add(ab, c)
}
