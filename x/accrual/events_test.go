package accrual

import (
	"context"
	"testing"

	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestEventTags(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	e := Event{Kind: EventWithdraw, Account: alice, Amount: 10}

	tags := e.Tags()
	assert.Equal(t, 2, len(tags))
	assert.Equal(t, "accrual", string(tags[0].Key))
	assert.Equal(t, "withdraw", string(tags[0].Value))
	assert.Equal(t, "accrual.account", string(tags[1].Key))
	assert.Equal(t, alice.String(), string(tags[1].Value))
}

func TestMultiSink(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	first := &recordingSink{}
	second := &recordingSink{}

	sink := MultiSink{first, NopSink{}, LogSink{}, second}
	sink.Emit(context.Background(), Event{Kind: EventDeposit, Account: alice, Amount: 1})
	sink.Emit(context.Background(), Event{Kind: EventWithdraw, Account: alice, Amount: 2})

	want := []Event{
		{Kind: EventDeposit, Account: alice, Amount: 1},
		{Kind: EventWithdraw, Account: alice, Amount: 2},
	}
	assertEvents(t, want, first.events)
	assertEvents(t, want, second.events)
}

func TestMetricsSink(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewMetricsSink(reg)
	if err != nil {
		t.Fatalf("cannot create sink: %s", err)
	}

	alice := weavetest.NewCondition().Address()
	ctx := context.Background()
	sink.Emit(ctx, Event{Kind: EventDeposit, Account: alice, Amount: 100})
	sink.Emit(ctx, Event{Kind: EventDeposit, Account: alice, Amount: 50})
	sink.Emit(ctx, Event{Kind: EventWithdraw, Account: alice, Amount: 150})

	assert.Equal(t, float64(2), testutil.ToFloat64(sink.events.WithLabelValues("deposit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(sink.events.WithLabelValues("withdraw")))
	assert.Equal(t, float64(150), testutil.ToFloat64(sink.units.WithLabelValues("deposit")))
	assert.Equal(t, float64(150), testutil.ToFloat64(sink.units.WithLabelValues("withdraw")))

	if _, err := NewMetricsSink(reg); !errors.ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate registration error, got %+v", err)
	}
}
