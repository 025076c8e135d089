package main

import (
	"flag"
	"io/ioutil"
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestFlAmount(t *testing.T) {
	cases := map[string]struct {
		args      []string
		wantErr   bool
		wantGiven bool
		want      coin.Coin
	}{
		"not provided": {
			args:      nil,
			wantGiven: false,
		},
		"zero": {
			args:      []string{"-amount", "0 ACC"},
			wantGiven: true,
			want:      coin.NewCoin(0, 0, "ACC"),
		},
		"fractional": {
			args:      []string{"-amount", "1.25 ACC"},
			wantGiven: true,
			want:      coin.NewCoin(1, 250000000, "ACC"),
		},
		"negative": {
			args:    []string{"-amount", "-1 ACC"},
			wantErr: true,
		},
		"missing ticker": {
			args:    []string{"-amount", "12"},
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			fl := flag.NewFlagSet("", flag.ContinueOnError)
			fl.SetOutput(ioutil.Discard)
			amount := flAmount(fl, "amount", "")

			err := fl.Parse(tc.args)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("want parse error, got %v", amount)
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantGiven, amountGiven(amount))
			if tc.wantGiven {
				assert.Equal(t, tc.want, *amount)
			}
		})
	}
}

func TestFlAddress(t *testing.T) {
	fl := flag.NewFlagSet("", flag.ContinueOnError)
	fl.SetOutput(ioutil.Discard)
	addr := flAddress(fl, "src", "")
	assert.Nil(t, fl.Parse(nil))
	assert.Equal(t, 0, len(*addr))

	fl = flag.NewFlagSet("", flag.ContinueOnError)
	fl.SetOutput(ioutil.Discard)
	addr = flAddress(fl, "src", "")
	assert.Nil(t, fl.Parse([]string{"-src", "b1ca7e78f74423ae01da3b51e676934d9105f282"}))
	assert.Equal(t, fromHex(t, "b1ca7e78f74423ae01da3b51e676934d9105f282"), []byte(*addr))

	fl = flag.NewFlagSet("", flag.ContinueOnError)
	fl.SetOutput(ioutil.Discard)
	flAddress(fl, "src", "")
	if err := fl.Parse([]string{"-src", "not-an-address"}); err == nil {
		t.Fatal("want an error for a malformed address")
	}
}
