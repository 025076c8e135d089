package accrual

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Account{}, migration.NoModification)
}

var _ orm.Model = (*Account)(nil)

func (m *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Timestamp < 0 {
		errs = errors.AppendField(errs, "Timestamp", errors.Wrap(errors.ErrInput, "must not be negative"))
	}
	return errs
}

// Ledger keeps one Account record per address. Amount and timestamp of an
// account are always read and written together.
type Ledger struct {
	accounts orm.ModelBucket
}

// NewLedger returns a ledger backed by the "accrual" model bucket.
func NewLedger() *Ledger {
	b := orm.NewModelBucket("accrual", &Account{})
	return &Ledger{accounts: migration.NewModelBucket("accrual", b)}
}

// Register exposes the ledger content under given query path.
func (l *Ledger) Register(name string, r weave.QueryRouter) {
	l.accounts.Register(name, r)
}

// Exists returns true if an account record is present for given address.
func (l *Ledger) Exists(db weave.ReadOnlyKVStore, id weave.Address) (bool, error) {
	acc, err := l.Read(db, id)
	if err != nil {
		return false, err
	}
	return acc != nil, nil
}

// Read returns the account record of given address. A missing record is not
// an error and nil is returned. A record that cannot be loaded or does not
// validate results in ErrStorageInconsistency.
func (l *Ledger) Read(db weave.ReadOnlyKVStore, id weave.Address) (*Account, error) {
	var acc Account
	switch err := l.accounts.One(db, id, &acc); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrapf(ErrStorageInconsistency, "account %s: %s", id, err)
	}
	if err := acc.Validate(); err != nil {
		return nil, errors.Wrapf(ErrStorageInconsistency, "account %s: %s", id, err)
	}
	return &acc, nil
}

// Upsert writes both the amount and the timestamp of an account in a single
// store operation.
func (l *Ledger) Upsert(db weave.KVStore, id weave.Address, amount uint64, ts weave.UnixTime) error {
	acc := Account{
		Metadata:  &weave.Metadata{Schema: 1},
		Amount:    amount,
		Timestamp: ts,
	}
	if _, err := l.accounts.Put(db, id, &acc); err != nil {
		return errors.Wrap(err, "store account")
	}
	return nil
}
