package bvec

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusConfig is a config of the Prometheus metrics provided by [Instrument].
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid.
type PrometheusConfig struct {
	// Options for the length gauge.
	Length prometheus.GaugeOpts
	// Options for the pushed elements counter.
	Pushes prometheus.CounterOpts
	// Options for the popped elements counter.
	Pops prometheus.CounterOpts
	// Options for the rejected pushes counter.
	Rejections prometheus.CounterOpts

	registerer prometheus.Registerer
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "bvec"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Length: prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "length",
			Help:      "Number of elements in the vec",
		},
		Pushes: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pushes",
			Help:      "Number of elements pushed into the vec",
		},
		Pops: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pops",
			Help:      "Number of elements popped from the vec",
		},
		Rejections: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rejections",
			Help:      "Number of pushes rejected because the vec was full",
		},
	}

	for _, f := range configFuncs {
		f(&c)
	}

	return &c
}
