package main

import (
	"fmt"

	"github.com/iov-one/weave"
	weaveapp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/x/sigs"
	cmn "github.com/tendermint/tendermint/libs/common"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

// nodeClient is the subset of the tendermint rpc client functionality that
// this program is using.
type nodeClient interface {
	ABCIQuery(path string, data cmn.HexBytes) (*ctypes.ResultABCIQuery, error)
	BroadcastTxCommit(tx tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error)
	Genesis() (*ctypes.ResultGenesis, error)
}

// newNodeClient returns a client connected to the tendermint node via HTTP.
// It is a variable so that tests can replace it.
var newNodeClient = func(remote string) nodeClient {
	return rpcclient.NewHTTP(remote, "/websocket")
}

// abciQuery executes a query and returns the list of models it resulted in.
// An empty result is not an error.
func abciQuery(c nodeClient, path string, data []byte) ([]weave.Model, error) {
	q, err := c.ABCIQuery(path, data)
	if err != nil {
		return nil, err
	}
	resp := q.Response
	if resp.IsErr() {
		return nil, fmt.Errorf("(%d): %s", resp.Code, resp.Log)
	}
	if len(resp.Key) == 0 {
		return nil, nil
	}

	var keys, vals weaveapp.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return nil, fmt.Errorf("cannot unmarshal keys: %s", err)
	}
	if err := vals.Unmarshal(resp.Value); err != nil {
		return nil, fmt.Errorf("cannot unmarshal values: %s", err)
	}
	return weaveapp.JoinResults(&keys, &vals)
}

// nextSequence returns the sequence value that the next signature of given
// address must use. An address that never signed starts with zero.
func nextSequence(c nodeClient, addr weave.Address) (int64, error) {
	models, err := abciQuery(c, "/auth", addr)
	if err != nil {
		return 0, err
	}
	if len(models) == 0 {
		return 0, nil
	}
	var user sigs.UserData
	if err := user.Unmarshal(models[0].Value); err != nil {
		return 0, fmt.Errorf("cannot unmarshal user data: %s", err)
	}
	return user.Sequence, nil
}

// chainID returns the chain ID as declared in the node genesis.
func chainID(c nodeClient) (string, error) {
	gen, err := c.Genesis()
	if err != nil {
		return "", err
	}
	return gen.Genesis.ChainID, nil
}

// broadcastTx submits a transaction and waits until it is committed.
// Transaction rejected by either of the check or deliver phase is an error.
func broadcastTx(c nodeClient, tx weave.Tx) (*ctypes.ResultBroadcastTxCommit, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return nil, fmt.Errorf("cannot serialize transaction: %s", err)
	}
	res, err := c.BroadcastTxCommit(raw)
	if err != nil {
		return nil, err
	}
	if res.CheckTx.IsErr() {
		return res, fmt.Errorf("CheckTx error: (%d) %s", res.CheckTx.Code, res.CheckTx.Log)
	}
	if res.DeliverTx.IsErr() {
		return res, fmt.Errorf("DeliverTx error: (%d) %s", res.DeliverTx.Code, res.DeliverTx.Log)
	}
	return res, nil
}
