package block

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts block transfers.  A nil *Metrics counts nothing.
type Metrics struct {
	Flushes         prometheus.Counter
	Rows            prometheus.Counter
	HeadersExported prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Flushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "native",
			Name:      "block_flushes_total",
			Help:      "Number of blocks flushed to a connection.",
		}),
		Rows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "native",
			Name:      "block_rows_total",
			Help:      "Number of rows flushed to a connection.",
		}),
		HeadersExported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "native",
			Name:      "column_headers_exported_total",
			Help:      "Number of column headers sent to a connection.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Flushes, m.Rows, m.HeadersExported)
	}
	return m
}

func (m *Metrics) flushed(rows, headers int) {
	if m == nil {
		return
	}
	m.Flushes.Inc()
	m.Rows.Add(float64(rows))
	m.HeadersExported.Add(float64(headers))
}
