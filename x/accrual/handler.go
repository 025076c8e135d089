package accrual

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewLedger().Register("accounts", qr)
}

// RegisterRoutes registers handlers for accrual message processing. Every
// successfully delivered transition is passed to the sink.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, currency Currency, sink EventSink) {
	r = migration.SchemaMigratingRegistry(packageName, r)

	ops := NewOperations(NewLedger(), currency, sink)

	r.Handle(&DepositMsg{}, &depositHandler{auth: auth, ops: ops})
	r.Handle(&WithdrawMsg{}, &withdrawHandler{auth: auth, ops: ops})
	r.Handle(&UpdateConfigurationMsg{},
		gconf.NewUpdateConfigurationHandler(packageName, &Configuration{}, auth, migration.CurrentAdmin))
}

type depositHandler struct {
	auth x.Authenticator
	ops  *Operations
}

func (h *depositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	id, amount, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ops.planDeposit(ctx, db, id, amount); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *depositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	id, amount, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	e, err := h.ops.Deposit(ctx, db, id, amount)
	if err != nil {
		return nil, errors.Wrap(err, "deposit")
	}
	return &weave.DeliverResult{Data: id, Tags: e.Tags()}, nil
}

func (h *depositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (weave.Address, uint64, error) {
	var msg DepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, 0, errors.Wrap(err, "load msg")
	}
	return resolve(ctx, db, h.auth, msg.Source, msg.Amount)
}

type withdrawHandler struct {
	auth x.Authenticator
	ops  *Operations
}

func (h *withdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	id, amount, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ops.planWithdraw(db, id, amount); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *withdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	id, amount, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	e, err := h.ops.Withdraw(ctx, db, id, amount)
	if err != nil {
		return nil, errors.Wrap(err, "withdraw")
	}
	return &weave.DeliverResult{Data: id, Tags: e.Tags()}, nil
}

func (h *withdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (weave.Address, uint64, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, 0, errors.Wrap(err, "load msg")
	}
	return resolve(ctx, db, h.auth, msg.Source, msg.Amount)
}

// resolve returns the account a message operates on and the requested
// amount in the smallest currency unit.
func resolve(ctx weave.Context, db weave.KVStore, auth x.Authenticator, source weave.Address, amount coin.Coin) (weave.Address, uint64, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, 0, err
	}
	id, err := identity(ctx, auth, source)
	if err != nil {
		return nil, 0, err
	}
	if amount.Ticker != conf.Ticker {
		return nil, 0, errors.Wrapf(errors.ErrCurrency, "only %s is accepted, got %s", conf.Ticker, amount.Ticker)
	}
	units, err := toUnits(amount)
	if err != nil {
		return nil, 0, err
	}
	return id, units, nil
}

// identity returns the address of the account owner. When the source is not
// given, the main signer of the transaction is used.
func identity(ctx weave.Context, auth x.Authenticator, source weave.Address) (weave.Address, error) {
	if len(source) != 0 {
		if !auth.HasAddress(ctx, source) {
			return nil, errors.Wrapf(ErrOriginNotSigned, "%s did not sign", source)
		}
		return source, nil
	}
	signer := x.AnySigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(ErrOriginNotSigned, "no signature")
	}
	return signer.Address(), nil
}
