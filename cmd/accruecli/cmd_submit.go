package main

import (
	"flag"
	"fmt"
	"io"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it.

When the transaction is committed, tags attached to the result are written
out, one per line.

Make sure to collect enough signatures before submitting the transaction.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", tmAddr(),
			"Tendermint node address. You can use ACCRUECLI_TM_ADDR environment variable to set it.")
	)
	fl.Parse(args)

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}

	res, err := broadcastTx(newNodeClient(*tmAddrFl), tx)
	if err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}
	for _, t := range res.DeliverTx.Tags {
		fmt.Fprintf(output, "%s=%s\n", t.Key, t.Value)
	}
	return nil
}
