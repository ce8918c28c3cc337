package config

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ConfigMetrics exposes configuration health.
//
// Metrics (prefixed with the component name):
//   - {component}_config_load_timestamp: unix time of the last load
//   - {component}_config_fallbacks_total{field}: defaults applied for invalid values
//   - {component}_config_fallback_active: 1 while any fallback is in effect
type ConfigMetrics struct {
	LoadTimestamp  prometheus.Gauge
	FallbacksTotal *prometheus.CounterVec
	FallbackActive prometheus.Gauge
}

// NewConfigMetrics registers the metrics with reg. A nil reg uses the
// default registerer.
func NewConfigMetrics(component string, reg prometheus.Registerer) *ConfigMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &ConfigMetrics{
		LoadTimestamp: f.NewGauge(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_config_load_timestamp", component),
			Help: fmt.Sprintf("Unix timestamp of last %s configuration load", component),
		}),
		FallbacksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: fmt.Sprintf("%s_config_fallbacks_total", component),
			Help: fmt.Sprintf("Total number of %s configuration fallback operations", component),
		}, []string{"field"}),
		FallbackActive: f.NewGauge(prometheus.GaugeOpts{
			Name: fmt.Sprintf("%s_config_fallback_active", component),
			Help: fmt.Sprintf("1 if any %s configuration fallback is active, 0 otherwise", component),
		}),
	}
}

// RecordLoad stamps the load time and counts every field that fell back.
func (m *ConfigMetrics) RecordLoad(fallbackFields []string) {
	m.LoadTimestamp.SetToCurrentTime()
	for _, f := range fallbackFields {
		m.FallbacksTotal.WithLabelValues(f).Inc()
	}
	if len(fallbackFields) > 0 {
		m.FallbackActive.Set(1)
	} else {
		m.FallbackActive.Set(0)
	}
}
