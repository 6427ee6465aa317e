// Package metrics exposes Prometheus instrumentation for the wire codec:
// decode outcomes, decode latency, and the two recoverable-but-notable
// paths (an unrecognized record type, an unrecognized EDNS0 option).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DecodeTotal tracks message decode outcomes, labeled by result
	// ("ok", "truncated", "malformed", "invalid_utf8", "error").
	DecodeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wire_decode_total",
		Help: "Total number of DNS message decode attempts by outcome",
	}, []string{"result"})

	// DecodeDuration tracks how long a full message decode takes.
	DecodeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wire_decode_duration_seconds",
		Help:    "Histogram of DNS message decode duration",
		Buckets: prometheus.DefBuckets,
	})

	// UnknownRecordTotal tracks records that fell through to the Unknown
	// variant, labeled by the numeric record type encountered.
	UnknownRecordTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wire_unknown_record_total",
		Help: "Total number of records decoded as Unknown, by rtype",
	}, []string{"rtype"})

	// OptUnknownOptionTotal tracks EDNS0 OPT sub-options whose code was
	// not recognized and were skipped forward.
	OptUnknownOptionTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wire_opt_unknown_option_total",
		Help: "Total number of unrecognized EDNS0 sub-options skipped during OPT decode",
	})
)
