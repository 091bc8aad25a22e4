package bvec

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	length     prometheus.Gauge
	pushes     prometheus.Counter
	pops       prometheus.Counter
	rejections prometheus.Counter
}

func newMetrics(c *PrometheusConfig) *metrics {
	m := metrics{
		length:     prometheus.NewGauge(c.Length),
		pushes:     prometheus.NewCounter(c.Pushes),
		pops:       prometheus.NewCounter(c.Pops),
		rejections: prometheus.NewCounter(c.Rejections),
	}

	if c.registerer != nil {
		registerer := prometheus.WrapRegistererWith(
			prometheus.Labels{"component": "bvec"},
			c.registerer,
		)
		registerer.MustRegister(
			m.length,
			m.pushes,
			m.pops,
			m.rejections,
		)
	}

	return &m
}
