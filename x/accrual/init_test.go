package accrual

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func TestGenesis(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	genesis := fmt.Sprintf(`
{
	"conf": {
		"accrual": {
			"owner": "%X",
			"ticker": "IOV"
		}
	},
	"accrual": [
		{"address": "%X", "amount": 1500, "timestamp": 1572247483},
		{"address": "%X", "amount": 0, "timestamp": "2019-10-28T07:24:43Z"}
	]
}
	`, owner, alice, bob)

	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "accrual")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	conf, err := loadConf(db)
	if err != nil {
		t.Fatalf("cannot load configuration: %s", err)
	}
	if conf.Ticker != "IOV" || !conf.Owner.Equals(owner) {
		t.Fatalf("unexpected configuration: %v", conf)
	}

	assertAccount(t, db, alice, &Account{Amount: 1500, Timestamp: 1572247483})
	assertAccount(t, db, bob, &Account{Amount: 0, Timestamp: 1572247483})
}

func TestGenesisWithoutConfiguration(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "accrual")
	var ini Initializer
	if err := ini.FromGenesis(weave.Options{}, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}
	if _, err := loadConf(db); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want not found error, got %+v", err)
	}
}

func TestGenesisAccountsWithoutConfiguration(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	genesis := fmt.Sprintf(`{"accrual": [{"address": "%X", "amount": 1, "timestamp": 1572247483}]}`, alice)

	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "accrual")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !errors.ErrState.Is(err) {
		t.Fatalf("want state error, got %+v", err)
	}
	assertAccount(t, db, alice, nil)
}

func TestGenesisWithInvalidAccounts(t *testing.T) {
	owner := weavetest.NewCondition().Address()
	alice := weavetest.NewCondition().Address()

	cases := map[string]struct {
		accounts string
		wantErr  *errors.Error
	}{
		"duplicated address": {
			accounts: fmt.Sprintf(`[{"address": "%X", "amount": 1}, {"address": "%X", "amount": 2}]`, alice, alice),
			wantErr:  errors.ErrDuplicate,
		},
		"missing address": {
			accounts: `[{"amount": 1}]`,
			wantErr:  errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			genesis := fmt.Sprintf(`{"conf": {"accrual": {"owner": "%X", "ticker": "IOV"}}, "accrual": %s}`, owner, tc.accounts)
			var opts weave.Options
			if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
				t.Fatalf("cannot unmarshal genesis: %s", err)
			}

			db := store.MemStore()
			migration.MustInitPkg(db, "accrual")
			var ini Initializer
			if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
		})
	}
}
