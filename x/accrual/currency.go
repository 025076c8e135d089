package accrual

import (
	"github.com/iov-one/accrued/safemath"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// ExistenceRequirement tells a Currency whether a withdrawal may drain the
// source balance completely.
type ExistenceRequirement int

const (
	// KeepAlive rejects a withdrawal that would leave the source without
	// funds.
	KeepAlive ExistenceRequirement = iota
	// AllowDeath permits draining the source balance.
	AllowDeath
)

// WithdrawReason describes why funds are taken from a custodial balance.
type WithdrawReason string

const (
	TransactionPayment WithdrawReason = "transaction payment"
)

// Currency is the custodial ledger that holds the actual funds. All amounts
// are expressed in the smallest currency unit.
type Currency interface {
	// Withdraw takes amount from the custodial balance of src.
	Withdraw(db weave.KVStore, src weave.Address, amount uint64, reason WithdrawReason, existence ExistenceRequirement) error
	// DepositCreating credits amount to dest, creating its custodial
	// balance if needed.
	DepositCreating(db weave.KVStore, dest weave.Address, amount uint64) error
}

// CashController is the subset of the cash extension controller required by
// CashCurrency.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
	CoinMint(weave.KVStore, weave.Address, coin.Coin) error
}

// ReserveAddress is the wallet holding all deposited funds.
var ReserveAddress = weave.NewCondition("accrual", "reserve", nil).Address()

// CashCurrency is a Currency implementation backed by cash wallets. The
// currency ticker is taken from the accrual configuration.
type CashCurrency struct {
	ctrl CashController
}

var _ Currency = (*CashCurrency)(nil)

func NewCashCurrency(ctrl CashController) *CashCurrency {
	return &CashCurrency{ctrl: ctrl}
}

// Withdraw moves amount from src into the reserve wallet. Withdrawing
// nothing always succeeds.
func (c *CashCurrency) Withdraw(db weave.KVStore, src weave.Address, amount uint64, reason WithdrawReason, existence ExistenceRequirement) error {
	if amount == 0 {
		return nil
	}
	conf, err := loadConf(db)
	if err != nil {
		return errors.Wrap(err, "currency")
	}
	available, err := c.balance(db, src, conf.Ticker)
	if err != nil {
		return err
	}
	left, err := safemath.Sub(available, amount)
	if err != nil {
		return errors.Wrapf(ErrCurrencyTransfer, "%s: insufficient funds, %d available", reason, available)
	}
	if existence == KeepAlive && left == 0 {
		return errors.Wrapf(ErrCurrencyTransfer, "%s: source wallet would be left empty", reason)
	}
	if err := c.ctrl.MoveCoins(db, src, ReserveAddress, fromUnits(amount, conf.Ticker)); err != nil {
		return errors.Wrapf(ErrCurrencyTransfer, "%s: %s", reason, err)
	}
	return nil
}

// DepositCreating pays amount to dest from the reserve wallet. The part that
// the reserve cannot cover is minted.
func (c *CashCurrency) DepositCreating(db weave.KVStore, dest weave.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	conf, err := loadConf(db)
	if err != nil {
		return errors.Wrap(err, "currency")
	}
	reserve, err := c.balance(db, ReserveAddress, conf.Ticker)
	if err != nil {
		return err
	}
	paid := amount
	if reserve < paid {
		paid = reserve
	}
	if paid > 0 {
		if err := c.ctrl.MoveCoins(db, ReserveAddress, dest, fromUnits(paid, conf.Ticker)); err != nil {
			return errors.Wrapf(ErrCurrencyTransfer, "pay from reserve: %s", err)
		}
	}
	if minted := amount - paid; minted > 0 {
		if err := c.ctrl.CoinMint(db, dest, fromUnits(minted, conf.Ticker)); err != nil {
			return errors.Wrapf(ErrCurrencyTransfer, "mint: %s", err)
		}
	}
	return nil
}

// balance returns the amount of ticker coins owned by given wallet. A
// missing wallet has no funds.
func (c *CashCurrency) balance(db weave.KVStore, addr weave.Address, ticker string) (uint64, error) {
	coins, err := c.ctrl.Balance(db, addr)
	switch {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err), errors.ErrEmpty.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrapf(ErrCurrencyTransfer, "balance of %s: %s", addr, err)
	}
	for _, have := range coins {
		if have.Ticker != ticker {
			continue
		}
		units, err := toUnits(*have)
		if err != nil {
			return 0, errors.Wrapf(ErrCurrencyTransfer, "balance of %s: %s", addr, err)
		}
		return units, nil
	}
	return 0, nil
}
