package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/weave/x/cash"
)

func cmdWithFee(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Modify given transaction and attach a fee as specified to it. If a transaction
already has a fee set, overwrite it with a new value.
`)
		fl.PrintDefaults()
	}
	var (
		payerFl  = flAddress(fl, "payer", "Optional address of a payer. If not provided the main signer will be used.")
		amountFl = flAmount(fl, "amount", "Fee value that should be attached to the transaction.")
	)
	fl.Parse(args)

	if !amountGiven(amountFl) || amountFl.IsZero() {
		flagDie("fee value must be provided and greater than zero")
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	tx.Fees = &cash.FeeInfo{
		Payer: *payerFl,
		Fees:  amountFl,
	}

	_, err = writeTx(output, tx)
	return err
}
