package accrual

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse the configuration and the initial accounts from
// genesis and save them to the database
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, db weave.KVStore) error {
	var accounts []struct {
		Address   weave.Address  `json:"address"`
		Amount    uint64         `json:"amount"`
		Timestamp weave.UnixTime `json:"timestamp"`
	}
	if err := opts.ReadOptions("accrual", &accounts); err != nil {
		return err
	}

	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(db, opts, packageName, &conf); {
	default:
		// All good.
	case errors.ErrNotFound.Is(err):
		if len(accounts) != 0 {
			return errors.Wrap(errors.ErrState, "accounts require the accrual configuration")
		}
		return nil
	case err != nil:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	ledger := NewLedger()
	for i, a := range accounts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d address", i)
		}
		switch exists, err := ledger.Exists(db, a.Address); {
		case err != nil:
			return errors.Wrapf(err, "account %d", i)
		case exists:
			return errors.Wrapf(errors.ErrDuplicate, "account %d: %s", i, a.Address)
		}
		if err := ledger.Upsert(db, a.Address, a.Amount, a.Timestamp); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}
