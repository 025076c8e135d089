package main

import (
	"bytes"
	"testing"

	"github.com/iov-one/accrued/x/accrual"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestCmdDepositHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-src", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-amount", "5 ACC",
	}
	if err := cmdDeposit(nil, &output, args); err != nil {
		t.Fatalf("cannot create a deposit transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*accrual.DepositMsg)

	assert.Equal(t, fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"), []byte(msg.Source))
	assert.Equal(t, coin.NewCoin(5, 0, "ACC"), msg.Amount)
	assert.Nil(t, msg.Validate())
}

func TestCmdWithdrawHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-src", "b1ca7e78f74423ae01da3b51e676934d9105f282",
		"-amount", "0.5 ACC",
	}
	if err := cmdWithdraw(nil, &output, args); err != nil {
		t.Fatalf("cannot create a withdraw transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*accrual.WithdrawMsg)

	assert.Equal(t, fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"), []byte(msg.Source))
	assert.Equal(t, coin.NewCoin(0, 500000000, "ACC"), msg.Amount)
}

func TestCmdUpdateConfigurationHappyPath(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-owner", "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"-ticker", "XYZ",
	}
	if err := cmdUpdateConfiguration(nil, &output, args); err != nil {
		t.Fatalf("cannot create a configuration update transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*accrual.UpdateConfigurationMsg)

	assert.Equal(t, "XYZ", msg.Patch.Ticker)
	assert.Equal(t, fromHex(t, "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"), []byte(msg.Patch.Owner))
	assert.Nil(t, msg.Validate())
}

func TestCmdDepositZeroAmountWithoutSource(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-amount", "0 ACC",
	}
	if err := cmdDeposit(nil, &output, args); err != nil {
		t.Fatalf("cannot create a deposit transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*accrual.DepositMsg)

	assert.Equal(t, 0, len(msg.Source))
	assert.Equal(t, coin.NewCoin(0, 0, "ACC"), msg.Amount)
	assert.Nil(t, msg.Validate())
}

func TestCmdWithdrawWithoutSource(t *testing.T) {
	var output bytes.Buffer
	args := []string{
		"-amount", "3 ACC",
	}
	if err := cmdWithdraw(nil, &output, args); err != nil {
		t.Fatalf("cannot create a withdraw transaction: %s", err)
	}

	tx, _, err := readTx(&output)
	if err != nil {
		t.Fatalf("cannot unmarshal created transaction: %s", err)
	}
	txmsg, err := tx.GetMsg()
	if err != nil {
		t.Fatalf("cannot get transaction message: %s", err)
	}
	msg := txmsg.(*accrual.WithdrawMsg)

	assert.Equal(t, 0, len(msg.Source))
	assert.Equal(t, coin.NewCoin(3, 0, "ACC"), msg.Amount)
	assert.Nil(t, msg.Validate())
}
