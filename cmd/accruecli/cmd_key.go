package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/crypto"
	"github.com/stellar/go/exp/crypto/derivation"
	bip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ed25519"
)

func cmdMnemonic(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate and print out a new mnemonic. Keep the result in a safe place. A
private key can be derived from a mnemonic using the keygen command.
`)
		fl.PrintDefaults()
	}
	var (
		sizeFl = fl.Int("size", 256, "Entropy size in bits. Must be a multiple of 32 between 128 and 256.")
	)
	fl.Parse(args)

	entropy, err := bip39.NewEntropy(*sizeFl)
	if err != nil {
		return fmt.Errorf("cannot create entropy: %s", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return fmt.Errorf("cannot create mnemonic: %s", err)
	}
	_, err = fmt.Fprintln(output, mnemonic)
	return err
}

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a mnemonic from the standard input and derive a private key from it.

When successful a new file with binary content containing private key is
created. This command fails if the private key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", privKeyPath(),
			"Path to the private key file that should be created. You can use ACCRUECLI_PRIV_KEY environment variable to set it.")
		pathFl = fl.String("path", "m/44'/234'/0'", "BIP-44 derivation path.")
	)
	fl.Parse(args)

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Do not allow to overwrite already existing private key. User
		// must manually delete it first.
		return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	mnemonic, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("cannot read mnemonic: %s", err)
	}
	priv, err := keygen(strings.TrimSuffix(mnemonic, "\n"), *pathFl)
	if err != nil {
		return fmt.Errorf("cannot generate key: %s", err)
	}

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := fd.Write(priv); err != nil {
		return fmt.Errorf("cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("cannot close private key file: %s", err)
	}
	return nil
}

// keygen returns a private key derived from given mnemonic using given
// BIP-44 path. Only a well formatted English mnemonic is accepted.
func keygen(mnemonic, path string) (ed25519.PrivateKey, error) {
	if mnemonic != strings.Join(strings.Fields(mnemonic), " ") {
		return nil, errors.New("mnemonic words must be separated by a single space")
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("invalid mnemonic")
	}

	// No passphrase is used.
	seed := bip39.NewSeed(mnemonic, "")

	key, err := derivation.DeriveForPath(path, seed)
	if err != nil {
		return nil, fmt.Errorf("cannot derive key: %s", err)
	}
	pub, err := key.PublicKey()
	if err != nil {
		return nil, fmt.Errorf("cannot derive public key: %s", err)
	}
	priv := make([]byte, 0, ed25519.PrivateKeySize)
	priv = append(priv, key.Key...)
	priv = append(priv, pub...)
	return ed25519.PrivateKey(priv), nil
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out an address associated with your private key. Both the bech32 and
the hex representation are printed.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", privKeyPath(),
			"Path to the private key file. You can use ACCRUECLI_PRIV_KEY environment variable to set it.")
		prefixFl = fl.String("bech32-prefix", "tiov", "Human readable part of the bech32 address.")
	)
	fl.Parse(args)

	raw, err := ioutil.ReadFile(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot read private key file: %s", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return fmt.Errorf("invalid private key length: %d", len(raw))
	}

	pub := ed25519.PrivateKey(raw).Public().(ed25519.PublicKey)
	bech, err := toBech32(*prefixFl, pub)
	if err != nil {
		return fmt.Errorf("cannot serialize to bech32: %s", err)
	}
	_, err = fmt.Fprintf(output, "bech32\t%s\nhex\t%s\n", bech, keyAddress(pub))
	return err
}

// keyAddress returns the weave address of given public key.
func keyAddress(pub ed25519.PublicKey) weave.Address {
	key := &crypto.PublicKey{
		Pub: &crypto.PublicKey_Ed25519{Ed25519: pub},
	}
	return key.Address()
}

// toBech32 returns the bech32 representation of the weave address of given
// public key.
func toBech32(prefix string, pub ed25519.PublicKey) ([]byte, error) {
	data, err := bech32.ConvertBits(keyAddress(pub), 8, 5, true)
	if err != nil {
		return nil, fmt.Errorf("cannot convert bits: %s", err)
	}
	enc, err := bech32.Encode(prefix, data)
	if err != nil {
		return nil, fmt.Errorf("cannot encode: %s", err)
	}
	return []byte(enc), nil
}
