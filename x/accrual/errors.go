package accrual

import (
	"github.com/iov-one/weave/errors"
)

// Error codes
// x/accrual reserves 1300 ~ 1309.

var (
	ErrOriginNotSigned      = errors.Register(1300, "origin not signed")
	ErrCurrencyTransfer     = errors.Register(1301, "currency transfer failed")
	ErrAccountNotFound      = errors.Register(1302, "account not found")
	ErrInvalidTimestamp     = errors.Register(1303, "invalid timestamp")
	ErrInvalidAmount        = errors.Register(1304, "invalid amount")
	ErrStorageInconsistency = errors.Register(1305, "storage inconsistency")
)
