package accrual

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestValidateTransferMsgs(t *testing.T) {
	alice := weavetest.NewCondition().Address()

	cases := map[string]struct {
		source weave.Address
		amount coin.Coin
		meta   *weave.Metadata
		errs   map[string]*errors.Error
	}{
		"valid without source": {
			amount: coin.NewCoin(1, 0, "ACC"),
			meta:   &weave.Metadata{Schema: 1},
			errs: map[string]*errors.Error{
				"Metadata": nil,
				"Source":   nil,
				"Amount":   nil,
			},
		},
		"valid with source": {
			source: alice,
			amount: coin.NewCoin(0, 1, "ACC"),
			meta:   &weave.Metadata{Schema: 1},
			errs: map[string]*errors.Error{
				"Metadata": nil,
				"Source":   nil,
				"Amount":   nil,
			},
		},
		"missing metadata": {
			amount: coin.NewCoin(1, 0, "ACC"),
			errs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
			},
		},
		"invalid source": {
			source: weave.Address("short"),
			amount: coin.NewCoin(1, 0, "ACC"),
			meta:   &weave.Metadata{Schema: 1},
			errs: map[string]*errors.Error{
				"Source": errors.ErrInput,
			},
		},
		"zero amount": {
			amount: coin.NewCoin(0, 0, "ACC"),
			meta:   &weave.Metadata{Schema: 1},
			errs: map[string]*errors.Error{
				"Metadata": nil,
				"Amount":   nil,
			},
		},
		"negative amount": {
			amount: coin.NewCoin(-1, 0, "ACC"),
			meta:   &weave.Metadata{Schema: 1},
			errs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"invalid ticker": {
			amount: coin.NewCoin(1, 0, "not a ticker"),
			meta:   &weave.Metadata{Schema: 1},
			errs: map[string]*errors.Error{
				"Amount": errors.ErrCurrency,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msgs := []weave.Msg{
				&DepositMsg{Metadata: tc.meta, Source: tc.source, Amount: tc.amount},
				&WithdrawMsg{Metadata: tc.meta, Source: tc.source, Amount: tc.amount},
			}
			for _, msg := range msgs {
				err := msg.Validate()
				for field, wantErr := range tc.errs {
					assert.FieldError(t, err, field, wantErr)
				}
			}
		})
	}
}

func TestValidateUpdateConfigurationMsg(t *testing.T) {
	cases := map[string]struct {
		msg  UpdateConfigurationMsg
		errs map[string]*errors.Error
	}{
		"valid": {
			msg: UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &Configuration{
					Metadata: &weave.Metadata{Schema: 1},
					Owner:    weavetest.NewCondition().Address(),
					Ticker:   "ACC",
				},
			},
			errs: map[string]*errors.Error{
				"Metadata": nil,
				"Patch":    nil,
			},
		},
		"missing patch": {
			msg: UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			errs: map[string]*errors.Error{
				"Metadata": nil,
				"Patch":    errors.ErrEmpty,
			},
		},
		"invalid patch": {
			msg: UpdateConfigurationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Patch: &Configuration{
					Metadata: &weave.Metadata{Schema: 1},
					Owner:    weavetest.NewCondition().Address(),
					Ticker:   "x",
				},
			},
			errs: map[string]*errors.Error{
				"Patch": errors.ErrCurrency,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, wantErr := range tc.errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
