package accrual

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestLedgerReadWrite(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "accrual")

	alice := weavetest.NewCondition().Address()
	ledger := NewLedger()

	acc, err := ledger.Read(db, alice)
	assert.Nil(t, err)
	if acc != nil {
		t.Fatalf("want no account, got %v", acc)
	}
	ok, err := ledger.Exists(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	assert.Nil(t, ledger.Upsert(db, alice, 123, 1572247483))
	acc, err = ledger.Read(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(123), acc.Amount)
	assert.Equal(t, weave.UnixTime(1572247483), acc.Timestamp)

	ok, err = ledger.Exists(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	// Both values are always replaced.
	assert.Nil(t, ledger.Upsert(db, alice, 0, 1572247000))
	acc, err = ledger.Read(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), acc.Amount)
	assert.Equal(t, weave.UnixTime(1572247000), acc.Timestamp)
}

func TestLedgerStorageInconsistency(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	negative, err := (&Account{
		Metadata:  &weave.Metadata{Schema: 1},
		Amount:    10,
		Timestamp: -5,
	}).Marshal()
	if err != nil {
		t.Fatalf("cannot marshal account: %s", err)
	}

	cases := map[string][]byte{
		"not a protobuf message": []byte("definitely not an account"),
		"negative timestamp":     negative,
	}

	for testName, raw := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "accrual")

			key := append([]byte("accrual:"), alice...)
			if err := db.Set(key, raw); err != nil {
				t.Fatalf("cannot write raw value: %s", err)
			}

			ledger := NewLedger()
			if _, err := ledger.Read(db, alice); !ErrStorageInconsistency.Is(err) {
				t.Fatalf("want storage inconsistency error, got %+v", err)
			}
			if _, err := ledger.Exists(db, alice); !ErrStorageInconsistency.Is(err) {
				t.Fatalf("want storage inconsistency error, got %+v", err)
			}
		})
	}
}
