package accrual

import (
	"context"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

// failingCurrency rejects every transfer with the configured error.
type failingCurrency struct {
	err error
}

func (c *failingCurrency) Withdraw(weave.KVStore, weave.Address, uint64, WithdrawReason, ExistenceRequirement) error {
	return c.err
}

func (c *failingCurrency) DepositCreating(weave.KVStore, weave.Address, uint64) error {
	return c.err
}

func TestOperationsCurrencyFailure(t *testing.T) {
	const now = weave.UnixTime(1572247483)
	alice := weavetest.NewCondition().Address()

	cases := map[string]error{
		"currency transfer error": errors.Wrap(ErrCurrencyTransfer, "no funds"),
		"any other error":         errors.Wrap(errors.ErrState, "broken"),
	}

	for testName, currencyErr := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "accrual")

			ledger := NewLedger()
			assert.Nil(t, ledger.Upsert(db, alice, 100, now))

			sink := &recordingSink{}
			ops := NewOperations(ledger, &failingCurrency{err: currencyErr}, sink)
			ctx := weave.WithBlockTime(context.Background(), (now + 20).Time())

			if _, err := ops.Deposit(ctx, db, alice, 10); !ErrCurrencyTransfer.Is(err) {
				t.Fatalf("want currency transfer error, got %+v", err)
			}
			if _, err := ops.Withdraw(ctx, db, alice, 10); !ErrCurrencyTransfer.Is(err) {
				t.Fatalf("want currency transfer error, got %+v", err)
			}

			// Ledger state must not change.
			assertAccount(t, db, alice, &Account{Amount: 100, Timestamp: now})
			assertEvents(t, nil, sink.events)
		})
	}
}

func TestOperationsDepositPullsFundsFirst(t *testing.T) {
	const now = weave.UnixTime(1572247483)

	db := store.MemStore()
	migration.MustInitPkg(db, "accrual")

	alice := weavetest.NewCondition().Address()
	ledger := NewLedger()
	assert.Nil(t, ledger.Upsert(db, alice, 100, now))

	// Both the transfer and the accrual would fail. The transfer error
	// is reported.
	ops := NewOperations(ledger, &failingCurrency{err: errors.Wrap(ErrCurrencyTransfer, "no funds")}, nil)
	ctx := weave.WithBlockTime(context.Background(), (now - 1).Time())
	if _, err := ops.Deposit(ctx, db, alice, 10); !ErrCurrencyTransfer.Is(err) {
		t.Fatalf("want currency transfer error, got %+v", err)
	}

	// With a working currency the clock error is reported.
	ops = NewOperations(ledger, &failingCurrency{}, nil)
	if _, err := ops.Deposit(ctx, db, alice, 10); !ErrInvalidTimestamp.Is(err) {
		t.Fatalf("want invalid timestamp error, got %+v", err)
	}
	assertAccount(t, db, alice, &Account{Amount: 100, Timestamp: now})
}

func TestOperationsZeroAmount(t *testing.T) {
	const now = weave.UnixTime(1572247483)

	db := store.MemStore()
	migration.MustInitPkg(db, "accrual")

	alice := weavetest.NewCondition().Address()
	ledger := NewLedger()
	assert.Nil(t, ledger.Upsert(db, alice, 100, now))

	sink := &recordingSink{}
	ops := NewOperations(ledger, &failingCurrency{}, sink)
	ctx := weave.WithBlockTime(context.Background(), (now + 20).Time())

	if _, err := ops.Deposit(ctx, db, alice, 0); err != nil {
		t.Fatalf("cannot deposit nothing: %s", err)
	}
	assertAccount(t, db, alice, &Account{Amount: 800, Timestamp: now})

	if _, err := ops.Withdraw(ctx, db, alice, 0); err != nil {
		t.Fatalf("cannot withdraw nothing: %s", err)
	}
	assertAccount(t, db, alice, &Account{Amount: 800, Timestamp: now})
	assert.Equal(t, 2, len(sink.events))
}

func TestOperationsRequireBlockTime(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "accrual")

	alice := weavetest.NewCondition().Address()
	ops := NewOperations(NewLedger(), &failingCurrency{}, nil)
	if _, err := ops.Deposit(context.Background(), db, alice, 10); err == nil {
		t.Fatal("want block time error")
	}
	assertAccount(t, db, alice, nil)
}

func TestOperationsDepositAndWithdraw(t *testing.T) {
	const now = weave.UnixTime(1572247483)

	db := store.MemStore()
	migration.MustInitPkg(db, "accrual")

	alice := weavetest.NewCondition().Address()
	sink := &recordingSink{}
	ops := NewOperations(NewLedger(), &failingCurrency{}, sink)

	ctx := weave.WithBlockTime(context.Background(), now.Time())
	if _, err := ops.Deposit(ctx, db, alice, 100); err != nil {
		t.Fatalf("cannot deposit: %s", err)
	}
	ctx = weave.WithBlockTime(context.Background(), (now + 20).Time())
	if _, err := ops.Deposit(ctx, db, alice, 50); err != nil {
		t.Fatalf("cannot deposit: %s", err)
	}
	assertAccount(t, db, alice, &Account{Amount: 850, Timestamp: now})

	if _, err := ops.Withdraw(ctx, db, alice, 851); !ErrInvalidAmount.Is(err) {
		t.Fatalf("want invalid amount error, got %+v", err)
	}
	e, err := ops.Withdraw(ctx, db, alice, 800)
	if err != nil {
		t.Fatalf("cannot withdraw: %s", err)
	}
	assert.Equal(t, EventWithdraw, e.Kind)
	assert.Equal(t, uint64(800), e.Amount)
	assertAccount(t, db, alice, &Account{Amount: 50, Timestamp: now})
	assert.Equal(t, 3, len(sink.events))
}
