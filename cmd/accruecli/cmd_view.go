package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/x/cash"
)

func cmdTransactionView(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Decode and display a summary of each transaction read from the input: the
message route, the message itself, the attached fee and the number of
signatures. Check what operation you are authorizing before signing.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	for viewed := 0; ; viewed++ {
		tx, _, err := readTx(input)
		switch {
		case err == errNoInput && viewed > 0:
			return nil
		case err != nil:
			return fmt.Errorf("cannot read transaction: %s", err)
		}

		msg, err := tx.GetMsg()
		if err != nil {
			return fmt.Errorf("cannot get transaction message: %s", err)
		}
		view := txView{
			Path:       msg.Path(),
			Msg:        msg,
			Fees:       tx.Fees,
			Signatures: len(tx.Signatures),
		}
		pretty, err := json.MarshalIndent(view, "", "\t")
		if err != nil {
			return fmt.Errorf("cannot JSON serialize: %s", err)
		}
		if _, err := fmt.Fprintf(output, "%s\n", pretty); err != nil {
			return err
		}
	}
}

type txView struct {
	Path       string        `json:"path"`
	Msg        weave.Msg     `json:"msg"`
	Fees       *cash.FeeInfo `json:"fees,omitempty"`
	Signatures int           `json:"signatures"`
}
