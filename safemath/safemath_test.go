package safemath

import (
	"math"
	"testing"

	"github.com/iov-one/weave/errors"
)

func TestArithmetic(t *testing.T) {
	cases := map[string]struct {
		op      func(uint64, uint64) (uint64, error)
		a, b    uint64
		want    uint64
		wantErr *errors.Error
	}{
		"add":                       {op: Add, a: 2, b: 3, want: 5},
		"add to max":                {op: Add, a: math.MaxUint64 - 1, b: 1, want: math.MaxUint64},
		"add overflow":              {op: Add, a: math.MaxUint64, b: 1, wantErr: errors.ErrOverflow},
		"sub":                       {op: Sub, a: 5, b: 3, want: 2},
		"sub to zero":               {op: Sub, a: 150, b: 150, want: 0},
		"sub underflow":             {op: Sub, a: 0, b: 1, wantErr: errors.ErrOverflow},
		"mul":                       {op: Mul, a: 7, b: 6, want: 42},
		"mul by zero":               {op: Mul, a: 0, b: math.MaxUint64, want: 0},
		"mul at the limit":          {op: Mul, a: 1 << 32, b: 1<<32 - 1, want: 1<<64 - 1<<32},
		"mul overflow":              {op: Mul, a: 1 << 32, b: 1 << 32, wantErr: errors.ErrOverflow},
		"div":                       {op: Div, a: 1000, b: 1000, want: 1},
		"div truncates":             {op: Div, a: 999, b: 1000, want: 0},
		"div truncates toward zero": {op: Div, a: 1999, b: 1000, want: 1},
		"div by zero":               {op: Div, a: 1, b: 0, wantErr: errors.ErrInput},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.op(tc.a, tc.b)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if tc.wantErr == nil && got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestMulAdd(t *testing.T) {
	if got, err := MulAdd(100, 1, 50); err != nil || got != 150 {
		t.Fatalf("want 150, got %d (%v)", got, err)
	}
	if _, err := MulAdd(math.MaxUint64, 2, 0); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow, got %+v", err)
	}
	if _, err := MulAdd(math.MaxUint64, 1, 1); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow, got %+v", err)
	}
}
