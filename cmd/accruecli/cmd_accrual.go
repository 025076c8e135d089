package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/accrued/x/accrual"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

func cmdDeposit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for depositing funds from the source wallet into the
interest accruing account of the same address.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl    = flAddress(fl, "src", "Optional address of the account that the funds are deposited for. If not provided the main signer is used.")
		amountFl = flAmount(fl, "amount", "A non negative amount that is to be deposited. It must use the configured ticker. Zero only re-prices the account.")
	)
	fl.Parse(args)

	if !amountGiven(amountFl) {
		flagDie("amount must be provided")
	}

	return writeMsg(output, &accrual.DepositMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Source:   *srcFl,
		Amount:   *amountFl,
	})
}

func cmdWithdraw(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for withdrawing funds from the interest accruing account
back into the wallet of the same address.
`)
		fl.PrintDefaults()
	}
	var (
		srcFl    = flAddress(fl, "src", "Optional address of the account that the funds are withdrawn from. If not provided the main signer is used.")
		amountFl = flAmount(fl, "amount", "A non negative amount that is to be withdrawn. It must use the configured ticker.")
	)
	fl.Parse(args)

	if !amountGiven(amountFl) {
		flagDie("amount must be provided")
	}

	return writeMsg(output, &accrual.WithdrawMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Source:   *srcFl,
		Amount:   *amountFl,
	})
}

func cmdUpdateConfiguration(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for updating the accrual extension configuration. The
whole configuration must be provided. The transaction must be signed by the
current configuration owner.
`)
		fl.PrintDefaults()
	}
	var (
		ownerFl  = flAddress(fl, "owner", "Address of the new configuration owner.")
		tickerFl = fl.String("ticker", "", "Ticker of the currency that the accounts are kept in.")
	)
	fl.Parse(args)

	if len(*ownerFl) == 0 {
		flagDie("owner address must be provided")
	}
	if !coin.IsCC(*tickerFl) {
		flagDie("invalid ticker %q", *tickerFl)
	}

	return writeMsg(output, &accrual.UpdateConfigurationMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Patch: &accrual.Configuration{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    *ownerFl,
			Ticker:   *tickerFl,
		},
	})
}
