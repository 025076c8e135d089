package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/iov-one/accrued/cmd/accrued/app"
	"github.com/iov-one/weave"
)

// Transactions are passed between commands as frames: a big endian uint32
// length header followed by the protobuf serialized transaction. Framing
// allows to stream several transactions through a single pipe:
// https://developers.google.com/protocol-buffers/docs/techniques#streaming
const (
	txHeaderSize = 4

	// maxTxSize limits the declared frame size, so that a corrupted header
	// does not allocate arbitrary memory. Tendermint mempool rejects bigger
	// transactions anyway.
	maxTxSize = 1 << 20
)

// writeTx writes a single transaction frame and returns the number of bytes
// written.
func writeTx(w io.Writer, tx *app.Tx) (int, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return 0, fmt.Errorf("cannot serialize transaction: %s", err)
	}
	if len(raw) > maxTxSize {
		return 0, fmt.Errorf("transaction of %d bytes is too big", len(raw))
	}
	frame := make([]byte, txHeaderSize+len(raw))
	binary.BigEndian.PutUint32(frame, uint32(len(raw)))
	copy(frame[txHeaderSize:], raw)
	return w.Write(frame)
}

// errNoInput is returned when the input ends before a frame starts.
var errNoInput = errors.New("no transaction on input")

// readTx reads a single transaction frame and returns the transaction
// together with the number of bytes consumed.
func readTx(r io.Reader) (*app.Tx, int, error) {
	var header [txHeaderSize]byte
	if n, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return nil, 0, errNoInput
		}
		return nil, n, fmt.Errorf("cannot read frame header: %s", err)
	}
	size := binary.BigEndian.Uint32(header[:])
	if size > maxTxSize {
		return nil, txHeaderSize, fmt.Errorf("declared transaction size %d exceeds %d bytes", size, maxTxSize)
	}

	raw := make([]byte, size)
	if n, err := io.ReadFull(r, raw); err != nil {
		return nil, txHeaderSize + n, fmt.Errorf("cannot read %d bytes of transaction: %s", size, err)
	}
	var tx app.Tx
	if err := tx.Unmarshal(raw); err != nil {
		return nil, txHeaderSize + int(size), fmt.Errorf("cannot deserialize transaction: %s", err)
	}
	return &tx, txHeaderSize + int(size), nil
}

// writeMsg wraps given message into a new transaction and writes it out.
func writeMsg(output io.Writer, msg weave.Msg) error {
	var tx app.Tx
	if err := tx.SetMsg(msg); err != nil {
		return fmt.Errorf("cannot create transaction: %s", err)
	}
	_, err := writeTx(output, &tx)
	return err
}
