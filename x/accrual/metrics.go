package accrual

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsSink counts ledger events and the amount of units they moved.
type MetricsSink struct {
	events *prometheus.CounterVec
	units  *prometheus.CounterVec
}

var _ EventSink = (*MetricsSink)(nil)

// NewMetricsSink creates a sink and registers its collectors with reg.
func NewMetricsSink(reg prometheus.Registerer) (*MetricsSink, error) {
	s := &MetricsSink{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accrual",
			Name:      "events_total",
			Help:      "Number of accrual ledger events, by kind.",
		}, []string{"kind"}),
		units: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "accrual",
			Name:      "amount_units_total",
			Help:      "Sum of amounts moved by accrual ledger events, by kind.",
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{s.events, s.units} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrapf(errors.ErrDuplicate, "register collector: %s", err)
		}
	}
	return s, nil
}

func (s *MetricsSink) Emit(_ weave.Context, e Event) {
	kind := e.Kind.String()
	s.events.WithLabelValues(kind).Inc()
	s.units.WithLabelValues(kind).Add(float64(e.Amount))
}
