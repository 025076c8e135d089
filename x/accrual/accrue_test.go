package accrual

import (
	"math"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

func TestCoefficient(t *testing.T) {
	cases := map[string]struct {
		elapsed uint64
		want    uint64
		wantErr *errors.Error
	}{
		"no time elapsed":       {elapsed: 0, want: 0},
		"cube below the scale":  {elapsed: 9, want: 0},
		"cube equal to scale":   {elapsed: 10, want: 1},
		"truncated division":    {elapsed: 11, want: 1},
		"twenty seconds":        {elapsed: 20, want: 8},
		"largest elapsed time":  {elapsed: 2642245, want: 18446724184312856},
		"cube overflow":         {elapsed: 2642246, wantErr: ErrInvalidTimestamp},
		"square overflow":       {elapsed: math.MaxUint32 + 1, wantErr: ErrInvalidTimestamp},
		"maximum elapsed value": {elapsed: math.MaxUint64, wantErr: ErrInvalidTimestamp},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Coefficient(tc.elapsed)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestComputeNext(t *testing.T) {
	const now = weave.UnixTime(1572247483)

	cases := map[string]struct {
		prevAmount    uint64
		prevTimestamp weave.UnixTime
		now           weave.UnixTime
		deposit       uint64
		want          uint64
		wantErr       *errors.Error
	}{
		"one coefficient keeps the balance": {
			prevAmount:    100,
			prevTimestamp: now,
			now:           now + 10,
			deposit:       50,
			want:          150,
		},
		"zero elapsed time discards the balance": {
			prevAmount:    100,
			prevTimestamp: now,
			now:           now,
			deposit:       7,
			want:          7,
		},
		"short elapsed time discards the balance": {
			prevAmount:    100,
			prevTimestamp: now,
			now:           now + 9,
			deposit:       7,
			want:          7,
		},
		"balance is multiplied": {
			prevAmount:    100,
			prevTimestamp: now,
			now:           now + 20,
			deposit:       50,
			want:          850,
		},
		"empty balance": {
			prevAmount:    0,
			prevTimestamp: now,
			now:           now + 1000,
			deposit:       1,
			want:          1,
		},
		"clock moved backward": {
			prevAmount:    100,
			prevTimestamp: now,
			now:           now - 1,
			deposit:       1,
			wantErr:       ErrInvalidTimestamp,
		},
		"negative previous timestamp": {
			prevAmount:    100,
			prevTimestamp: -1,
			now:           now,
			deposit:       1,
			wantErr:       ErrInvalidTimestamp,
		},
		"elapsed time overflow": {
			prevAmount:    1,
			prevTimestamp: now,
			now:           now + 3000000,
			deposit:       1,
			wantErr:       ErrInvalidTimestamp,
		},
		"multiplication overflow": {
			prevAmount:    5000000000,
			prevTimestamp: now,
			now:           now + 2000000,
			deposit:       1,
			wantErr:       ErrInvalidAmount,
		},
		"addition overflow": {
			prevAmount:    math.MaxUint64,
			prevTimestamp: now,
			now:           now + 10,
			deposit:       1,
			wantErr:       ErrInvalidAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ComputeNext(tc.prevAmount, tc.prevTimestamp, tc.now, tc.deposit)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}
