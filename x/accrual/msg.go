package accrual

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &DepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*DepositMsg)(nil)

func (DepositMsg) Path() string {
	return "accrual/deposit"
}

func (m *DepositMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Source", validateSource(m.Source))
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

var _ weave.Msg = (*WithdrawMsg)(nil)

func (WithdrawMsg) Path() string {
	return "accrual/withdraw"
}

func (m *WithdrawMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Source", validateSource(m.Source))
	errs = errors.AppendField(errs, "Amount", validateAmount(m.Amount))
	return errs
}

// Source is optional.
func validateSource(a weave.Address) error {
	if len(a) == 0 {
		return nil
	}
	return a.Validate()
}

func validateAmount(c coin.Coin) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "must not be negative")
	}
	return nil
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "accrual/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	} else {
		errs = errors.AppendField(errs, "Patch", m.Patch.Validate())
	}
	return errs
}
