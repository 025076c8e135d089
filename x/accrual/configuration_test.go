package accrual

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		c    Configuration
		errs map[string]*errors.Error
	}{
		"all good": {
			c: Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    weavetest.NewCondition().Address(),
				Ticker:   "IOV",
			},
			errs: map[string]*errors.Error{
				"Metadata": nil,
				"Owner":    nil,
				"Ticker":   nil,
			},
		},
		"certain fields are required": {
			c: Configuration{},
			errs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
				"Owner":    errors.ErrEmpty,
				"Ticker":   errors.ErrCurrency,
			},
		},
		"lowercase ticker": {
			c: Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    weavetest.NewCondition().Address(),
				Ticker:   "iov",
			},
			errs: map[string]*errors.Error{
				"Ticker": errors.ErrCurrency,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.c.Validate()
			for field, wantErr := range tc.errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
