package main

import (
	"os"
)

// env returns the value of an environment variable if provided (even if empty)
// or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// tmAddr returns the default tendermint node address.
func tmAddr() string {
	return env("ACCRUECLI_TM_ADDR", "http://localhost:26657")
}

// privKeyPath returns the default location of the private key file.
func privKeyPath() string {
	return env("ACCRUECLI_PRIV_KEY", os.Getenv("HOME")+"/.accrued.priv.key")
}
