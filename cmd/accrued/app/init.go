package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/accrued/x/accrual"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/prometheus/client_golang/prometheus"
	abci "github.com/tendermint/tendermint/abci/types"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode
//
// You can set the ticker of the accrued currency and the address of the
// account owning all initial funds. The same address administrates all
// configurations.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, fmt.Errorf("Invalid ticker %s", ticker)
		}
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out a recovery phrase
		bz, phrase, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = hex.EncodeToString(bz)
		fmt.Println(phrase)
	}

	opts := fmt.Sprintf(`
          {
            "cash": [
              {
                "address": "%[1]s",
                "coins": [
                  {"whole": 123456789, "ticker": "%[2]s"}
                ]
              }
            ],
            "conf": {
              "cash": {
                "collector_address": "%[1]s",
                "minimal_fee": {"whole": 0, "ticker": "%[2]s"}
              },
              "migration": {
                "admin": "%[1]s"
              },
              "accrual": {
                "owner": "%[1]s",
                "ticker": "%[2]s"
              }
            },
            "initialize_schema": [
              {"pkg": "accrual", "ver": 1},
              {"pkg": "cash", "ver": 1},
              {"pkg": "migration", "ver": 1},
              {"pkg": "sigs", "ver": 1}
            ],
            "accrual": []
          }
	`, addr, ticker)
	return []byte(opts), nil
}

// Initializers returns all genesis readers used by the application.
func Initializers() weave.Initializer {
	return app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&accrual.Initializer{},
	)
}

// EventSink returns the sink that receives all accrual ledger events. Events
// are logged and counted by collectors registered with reg.
func EventSink(reg prometheus.Registerer) (accrual.EventSink, error) {
	metrics, err := accrual.NewMetricsSink(reg)
	if err != nil {
		return nil, errors.Wrap(err, "metrics")
	}
	return accrual.MultiSink{accrual.LogSink{}, metrics}, nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "accrued.db")
	}

	sink, err := EventSink(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}
	stack := Stack(sink)
	application, err := Application("accrued", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key,
// along with a json representation of the keys.
// You can give coins to this address and
// import the keys in the js client to use them
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
