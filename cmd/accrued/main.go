package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/iov-one/accrued/cmd/accrued/app"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/commands/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome    = "home"
	flagMetrics = "metrics"
	varHome     *string
	varMetrics  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".accrued")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varMetrics = flag.String(flagMetrics, "", "address to serve prometheus metrics on, disabled if empty")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("accrued")
	fmt.Println("        Accrual ledger node")
	fmt.Println("")
	fmt.Println("help    Print this message")
	fmt.Println("init    Initialize app options in genesis file")
	fmt.Println("start   Run the abci server")
	fmt.Println("version Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.accrued")
  -metrics string
        address to serve prometheus metrics on, for example ":9100"`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "accrued")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "start":
		if *varMetrics != "" {
			go serveMetrics(logger, *varMetrics)
		}
		err = server.StartCmd(app.GenerateApp, logger, *varHome, rest)
	case "version":
		fmt.Println(weave.Version)
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}

func serveMetrics(logger log.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("Serving metrics", "bind", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics server failed", "err", err)
	}
}
