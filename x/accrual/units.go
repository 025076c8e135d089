package accrual

import (
	"github.com/iov-one/accrued/safemath"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

const fracUnit = uint64(coin.FracUnit)

// toUnits returns the value of a non negative coin expressed in the smallest
// currency unit.
func toUnits(c coin.Coin) (uint64, error) {
	if c.Whole < 0 || c.Fractional < 0 {
		return 0, errors.Wrapf(ErrInvalidAmount, "negative value %s", c)
	}
	units, err := safemath.MulAdd(uint64(c.Whole), fracUnit, uint64(c.Fractional))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidAmount, "%s: %s", c, err)
	}
	return units, nil
}

// fromUnits is the reverse of toUnits.
func fromUnits(units uint64, ticker string) coin.Coin {
	return coin.NewCoin(int64(units/fracUnit), int64(units%fracUnit), ticker)
}
