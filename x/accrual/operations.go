package accrual

import (
	"github.com/iov-one/accrued/safemath"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

// Operations implements the deposit and withdraw transitions of the accrual
// ledger.
//
// A failure after the currency side effect (an arithmetic error or a
// rejected ledger write) relies on the enclosing transaction being
// discarded.
type Operations struct {
	ledger   *Ledger
	currency Currency
	sink     EventSink
}

func NewOperations(ledger *Ledger, currency Currency, sink EventSink) *Operations {
	if sink == nil {
		sink = NopSink{}
	}
	return &Operations{
		ledger:   ledger,
		currency: currency,
		sink:     sink,
	}
}

// transition is the ledger state an operation is going to write.
type transition struct {
	amount    uint64
	timestamp weave.UnixTime
}

// Deposit takes amount from the custodial balance of id and adds it to the
// accrual account. The first deposit creates the account. Following deposits
// re-price the stored balance, see ComputeNext.
//
// Funds are pulled from the custodial balance first, so a transfer failure
// is reported even when the accrual arithmetic would fail as well.
func (o *Operations) Deposit(ctx weave.Context, db weave.KVStore, id weave.Address, amount uint64) (*Event, error) {
	if err := o.currency.Withdraw(db, id, amount, TransactionPayment, KeepAlive); err != nil {
		return nil, currencyErr(err, "withdraw")
	}
	t, err := o.planDeposit(ctx, db, id, amount)
	if err != nil {
		return nil, err
	}
	if err := o.ledger.Upsert(db, id, t.amount, t.timestamp); err != nil {
		return nil, err
	}
	e := Event{Kind: EventDeposit, Account: id, Amount: amount}
	o.sink.Emit(ctx, e)
	return &e, nil
}

func (o *Operations) planDeposit(ctx weave.Context, db weave.ReadOnlyKVStore, id weave.Address, amount uint64) (*transition, error) {
	blockTime, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}
	now := weave.AsUnixTime(blockTime)

	acc, err := o.ledger.Read(db, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return &transition{amount: amount, timestamp: now}, nil
	}
	next, err := ComputeNext(acc.Amount, acc.Timestamp, now, amount)
	if err != nil {
		return nil, err
	}
	// Only the first deposit sets the timestamp.
	return &transition{amount: next, timestamp: acc.Timestamp}, nil
}

// Withdraw subtracts amount from the accrual account and credits it to the
// custodial balance of id.
func (o *Operations) Withdraw(ctx weave.Context, db weave.KVStore, id weave.Address, amount uint64) (*Event, error) {
	t, err := o.planWithdraw(db, id, amount)
	if err != nil {
		return nil, err
	}
	if err := o.currency.DepositCreating(db, id, amount); err != nil {
		return nil, currencyErr(err, "deposit")
	}
	if err := o.ledger.Upsert(db, id, t.amount, t.timestamp); err != nil {
		return nil, err
	}
	e := Event{Kind: EventWithdraw, Account: id, Amount: amount}
	o.sink.Emit(ctx, e)
	return &e, nil
}

func (o *Operations) planWithdraw(db weave.ReadOnlyKVStore, id weave.Address, amount uint64) (*transition, error) {
	acc, err := o.ledger.Read(db, id)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, errors.Wrapf(ErrAccountNotFound, "account %s", id)
	}
	next, err := safemath.Sub(acc.Amount, amount)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidAmount, "balance %d is lower than %d", acc.Amount, amount)
	}
	return &transition{amount: next, timestamp: acc.Timestamp}, nil
}

// currencyErr ensures that any Currency failure is reported as
// ErrCurrencyTransfer.
func currencyErr(err error, op string) error {
	if ErrCurrencyTransfer.Is(err) {
		return errors.Wrap(err, op)
	}
	return errors.Wrapf(ErrCurrencyTransfer, "%s: %s", op, err)
}
