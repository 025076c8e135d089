package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

// addressFlag accepts any address representation understood by
// weave.ParseAddress: hex, "cond:" and "bech32:" prefixed forms.
type addressFlag struct {
	addr *weave.Address
}

func (f addressFlag) String() string {
	if f.addr == nil || len(*f.addr) == 0 {
		return ""
	}
	return f.addr.String()
}

func (f addressFlag) Set(raw string) error {
	a, err := weave.ParseAddress(raw)
	if err != nil {
		return err
	}
	*f.addr = a
	return nil
}

// flAddress registers an address flag. Unset flag leaves an empty address.
func flAddress(fl *flag.FlagSet, name, usage string) *weave.Address {
	var a weave.Address
	fl.Var(addressFlag{addr: &a}, name, usage)
	return &a
}

// amountFlag accepts a coin in the human format, for example "1.5 ACC".
// Negative values are rejected, zero is allowed.
type amountFlag struct {
	amount *coin.Coin
}

func (f amountFlag) String() string {
	if f.amount == nil || f.amount.Ticker == "" {
		return ""
	}
	return f.amount.String()
}

func (f amountFlag) Set(raw string) error {
	c, err := coin.ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	if !c.IsNonNegative() {
		return fmt.Errorf("negative amount %q", raw)
	}
	*f.amount = c
	return nil
}

// flAmount registers an amount flag. Unset flag leaves a coin without a
// ticker, use amountGiven to tell it apart from a zero value.
func flAmount(fl *flag.FlagSet, name, usage string) *coin.Coin {
	var c coin.Coin
	fl.Var(amountFlag{amount: &c}, name, usage)
	return &c
}

func amountGiven(c *coin.Coin) bool {
	return c.Ticker != ""
}

// flagDie terminates the program when a command line flag value is invalid.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, description, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}
