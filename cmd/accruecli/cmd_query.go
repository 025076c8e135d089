package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iov-one/accrued/x/accrual"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

func cmdQuery(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Execute a ABCI query and print JSON encoded result.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", tmAddr(),
			"Tendermint node address. You can use ACCRUECLI_TM_ADDR environment variable to set it.")
		pathFl = fl.String("path", "/accounts", "Path to be queried. Must be one of the supported.")
		dataFl = fl.String("data", "", "Address of the queried entity. If not provided, all entities are returned.")
	)
	fl.Parse(args)

	conf, ok := queries[*pathFl]
	if !ok {
		paths := make([]string, 0, len(queries))
		for p := range queries {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		return fmt.Errorf("available query paths:\n\t- %s", strings.Join(paths, "\n\t- "))
	}

	var data []byte
	queryPath := *pathFl
	if *dataFl == "" {
		queryPath += "?" + weave.PrefixQueryMod
	} else {
		addr, err := weave.ParseAddress(*dataFl)
		if err != nil {
			return fmt.Errorf("cannot parse address: %s", err)
		}
		data = addr
	}

	models, err := abciQuery(newNodeClient(*tmAddrFl), queryPath, data)
	if err != nil {
		return fmt.Errorf("failed to run query: %s", err)
	}

	result := make([]keyval, 0, len(models))
	for i, m := range models {
		obj := conf.newObj()
		if err := obj.Unmarshal(m.Value); err != nil {
			return fmt.Errorf("failed to unmarshal model %d: %s", i, err)
		}
		result = append(result, keyval{Key: addressKey(m.Key), Value: obj})
	}
	pretty, err := json.MarshalIndent(result, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = output.Write(pretty)
	return err
}

type keyval struct {
	Key   string
	Value model
}

type model interface {
	Unmarshal([]byte) error
}

// queries contains a mapping of a query path to the model type that the
// result is deserialized into. All supported entities are indexed by an
// address.
var queries = map[string]struct {
	newObj func() model
}{
	"/accounts": {
		newObj: func() model { return &accrual.Account{} },
	},
	"/wallets": {
		newObj: func() model { return &cash.Set{} },
	},
	"/auth": {
		newObj: func() model { return &sigs.UserData{} },
	},
}

// addressKey returns a human readable representation of a database key. The
// bucket name prefix is dropped.
func addressKey(key []byte) string {
	if i := bytes.IndexByte(key, ':'); i >= 0 {
		key = key[i+1:]
	}
	return weave.Address(key).String()
}
