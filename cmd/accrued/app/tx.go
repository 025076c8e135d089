package app

import (
	"github.com/iov-one/accrued/x/accrual"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (weave.Tx, error) {
	tx := new(Tx)
	err := tx.Unmarshal(bz)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ weave.Tx = (*Tx)(nil)
var _ cash.FeeTx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the message held by the sum type.
func (tx *Tx) GetMsg() (weave.Msg, error) {
	return weave.ExtractMsgFromSum(tx.GetSum())
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}

// SetMsg wraps given message into the sum type. Only messages handled by
// this application are accepted.
func (tx *Tx) SetMsg(msg weave.Msg) error {
	switch m := msg.(type) {
	case *cash.SendMsg:
		tx.Sum = &Tx_CashSendMsg{CashSendMsg: m}
	case *cash.UpdateConfigurationMsg:
		tx.Sum = &Tx_CashUpdateConfigurationMsg{CashUpdateConfigurationMsg: m}
	case *migration.UpgradeSchemaMsg:
		tx.Sum = &Tx_MigrationUpgradeSchemaMsg{MigrationUpgradeSchemaMsg: m}
	case *accrual.DepositMsg:
		tx.Sum = &Tx_AccrualDepositMsg{AccrualDepositMsg: m}
	case *accrual.WithdrawMsg:
		tx.Sum = &Tx_AccrualWithdrawMsg{AccrualWithdrawMsg: m}
	case *accrual.UpdateConfigurationMsg:
		tx.Sum = &Tx_AccrualUpdateConfigurationMsg{AccrualUpdateConfigurationMsg: m}
	default:
		return errors.Wrapf(errors.ErrType, "unsupported message %T", msg)
	}
	return nil
}
