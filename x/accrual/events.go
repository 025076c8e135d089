package accrual

import (
	"github.com/iov-one/weave"
	"github.com/tendermint/tendermint/libs/common"
)

// EventKind distinguishes accrual ledger events.
type EventKind uint8

const (
	EventDeposit EventKind = iota + 1
	EventWithdraw
)

func (k EventKind) String() string {
	switch k {
	case EventDeposit:
		return "deposit"
	case EventWithdraw:
		return "withdraw"
	default:
		return "unknown"
	}
}

// Event is emitted for every successful ledger transition.
type Event struct {
	Kind    EventKind
	Account weave.Address
	// Amount is the transferred value in the smallest currency unit.
	Amount uint64
}

// Tag keys set on a deliver result.
const (
	EventTagKey   = "accrual"
	AccountTagKey = "accrual.account"
)

// Tags returns the representation of the event attached to transaction
// results.
func (e Event) Tags() []common.KVPair {
	return []common.KVPair{
		{Key: []byte(EventTagKey), Value: []byte(e.Kind.String())},
		{Key: []byte(AccountTagKey), Value: []byte(e.Account.String())},
	}
}

// EventSink receives ledger events. Emit must not fail the transition that
// produced the event.
type EventSink interface {
	Emit(ctx weave.Context, e Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Emit(weave.Context, Event) {}

// LogSink writes events to the context logger.
type LogSink struct{}

func (LogSink) Emit(ctx weave.Context, e Event) {
	weave.GetLogger(ctx).Info("accrual",
		"event", e.Kind.String(),
		"account", e.Account.String(),
		"amount", e.Amount)
}

// MultiSink forwards every event to all of its sinks, in order.
type MultiSink []EventSink

func (ms MultiSink) Emit(ctx weave.Context, e Event) {
	for _, s := range ms {
		s.Emit(ctx, e)
	}
}
