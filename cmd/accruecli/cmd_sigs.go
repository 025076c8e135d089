package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/x/sigs"
	"golang.org/x/crypto/ed25519"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

The chain ID and the sequence value of the signer are fetched from the node.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", tmAddr(),
			"Tendermint node address. You can use ACCRUECLI_TM_ADDR environment variable to set it.")
		keyPathFl = fl.String("key", privKeyPath(),
			"Path to the private key file that transaction should be signed with. You can use ACCRUECLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, _, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	node := newNodeClient(*tmAddrFl)
	chain, err := chainID(node)
	if err != nil {
		return fmt.Errorf("cannot fetch genesis: %s", err)
	}
	seq, err := nextSequence(node, key.PublicKey().Address())
	if err != nil {
		return fmt.Errorf("cannot get the next sequence number: %s", err)
	}

	sig, err := sigs.SignTx(key, tx, chain, seq)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	_, err = writeTx(output, tx)
	return err
}

func decodePrivateKey(filepath string) (*crypto.PrivateKey, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q file: %s", filepath, err)
	}
	if len(data) != ed25519.PrivateKeySize {
		return nil, errors.New("invalid key length")
	}
	key := &crypto.PrivateKey{
		Priv: &crypto.PrivateKey_Ed25519{Ed25519: data},
	}
	return key, nil
}
