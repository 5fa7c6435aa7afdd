package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the gauges of one run on a private registry, so only the
// check results end up in the textfile.
type metrics struct {
	reg     *prometheus.Registry
	maxULP  *prometheus.GaugeVec
	meanULP *prometheus.GaugeVec
	samples *prometheus.GaugeVec
	nsPerOp *prometheus.GaugeVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &metrics{
		reg: reg,
		maxULP: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "jbm_check_max_ulp",
			Help: "Largest ULP error observed against the reference",
		}, []string{"function"}),
		meanULP: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "jbm_check_mean_ulp",
			Help: "Mean ULP error against the reference",
		}, []string{"function"}),
		samples: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "jbm_check_samples",
			Help: "Number of samples compared",
		}, []string{"function"}),
		nsPerOp: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "jbm_check_ns_per_op",
			Help: "Mean evaluation time in nanoseconds",
		}, []string{"function", "impl"}),
	}
}

func (m *metrics) observe(r result, withBench bool) {
	m.maxULP.WithLabelValues(r.name).Set(r.maxULP)
	m.meanULP.WithLabelValues(r.name).Set(r.meanULP)
	m.samples.WithLabelValues(r.name).Set(float64(r.samples))
	if withBench {
		m.nsPerOp.WithLabelValues(r.name, "jbm").Set(r.jbmNs)
		m.nsPerOp.WithLabelValues(r.name, "std").Set(r.stdNs)
	}
}

func (m *metrics) write(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
