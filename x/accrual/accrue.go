package accrual

import (
	"github.com/iov-one/accrued/safemath"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Scale is the divisor applied to the cubed elapsed time.
const Scale = 1000

// ComputeNext returns the amount stored for an account that already holds
// prevAmount since prevTimestamp, after depositing another deposit amount at
// now.
func ComputeNext(prevAmount uint64, prevTimestamp, now weave.UnixTime, deposit uint64) (uint64, error) {
	if prevTimestamp < 0 || now < 0 {
		return 0, errors.Wrapf(ErrInvalidTimestamp, "negative time: %d, %d", prevTimestamp, now)
	}
	elapsed, err := safemath.Sub(uint64(now), uint64(prevTimestamp))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidTimestamp, "clock moved backward from %d to %d", prevTimestamp, now)
	}
	coeff, err := Coefficient(elapsed)
	if err != nil {
		return 0, err
	}
	next, err := safemath.MulAdd(prevAmount, coeff, deposit)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAmount, "%d * %d + %d: %s", prevAmount, coeff, deposit, err)
	}
	return next, nil
}

// Coefficient returns elapsed^3 / Scale.
func Coefficient(elapsed uint64) (uint64, error) {
	square, err := safemath.Mul(elapsed, elapsed)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidTimestamp, "elapsed %d: %s", elapsed, err)
	}
	cube, err := safemath.Mul(square, elapsed)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidTimestamp, "elapsed %d: %s", elapsed, err)
	}
	coeff, err := safemath.Div(cube, Scale)
	if err != nil {
		return 0, errors.Wrap(err, "scale")
	}
	return coeff, nil
}
