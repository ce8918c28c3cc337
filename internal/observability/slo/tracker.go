package slo

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Source metric names, as registered by the observability/metrics package.
const (
	requestsMetric = "http_requests_total"
	durationMetric = "http_request_duration_seconds"
)

type bucket struct {
	upper float64 // +Inf for the overflow bucket
	count float64 // cumulative
}

type sample struct {
	total   float64
	errors  float64
	buckets []bucket // sorted by upper bound
}

func (s sample) sub(prev sample) sample {
	out := sample{total: s.total - prev.total, errors: s.errors - prev.errors}
	for _, b := range s.buckets {
		c := b.count
		if i, ok := slices.BinarySearchFunc(prev.buckets, b.upper, func(p bucket, u float64) int {
			switch {
			case p.upper < u:
				return -1
			case p.upper > u:
				return 1
			}
			return 0
		}); ok {
			c -= prev.buckets[i].count
		}
		out.buckets = append(out.buckets, bucket{upper: b.upper, count: c})
	}
	return out
}

// Tracker turns the cumulative HTTP counters into windowed indicators: each
// Refresh covers the requests served since the previous one.
type Tracker struct {
	gatherer prometheus.Gatherer

	mu   sync.Mutex
	prev sample
}

// NewTracker reads from g, normally prometheus.DefaultGatherer.
func NewTracker(g prometheus.Gatherer) *Tracker {
	return &Tracker{gatherer: g}
}

// Refresh updates the SLO gauges. A window without traffic leaves them
// unchanged.
func (t *Tracker) Refresh(_ context.Context) error {
	cur, err := t.collect()
	if err != nil {
		return err
	}

	t.mu.Lock()
	window := cur.sub(t.prev)
	t.prev = cur
	t.mu.Unlock()

	if window.total <= 0 {
		return nil
	}
	UpdateAvailability((window.total - window.errors) / window.total)
	UpdateErrorRate(window.errors / window.total)
	if p95, ok := quantile(0.95, window.buckets); ok {
		UpdateLatencyP95(p95)
	}
	if p99, ok := quantile(0.99, window.buckets); ok {
		UpdateLatencyP99(p99)
	}
	return nil
}

func (t *Tracker) collect() (sample, error) {
	families, err := t.gatherer.Gather()
	if err != nil {
		return sample{}, fmt.Errorf("slo: gather: %w", err)
	}

	var s sample
	bounds := map[float64]float64{}
	for _, mf := range families {
		switch mf.GetName() {
		case requestsMetric:
			s.total, s.errors = countRequests(mf)
		case durationMetric:
			addBuckets(bounds, mf)
		}
	}
	for upper, count := range bounds {
		s.buckets = append(s.buckets, bucket{upper: upper, count: count})
	}
	slices.SortFunc(s.buckets, func(a, b bucket) int {
		switch {
		case a.upper < b.upper:
			return -1
		case a.upper > b.upper:
			return 1
		}
		return 0
	})
	return s, nil
}

// countRequests sums the request counter, treating 5xx statuses as errors.
func countRequests(mf *dto.MetricFamily) (total, errors float64) {
	for _, m := range mf.GetMetric() {
		v := m.GetCounter().GetValue()
		total += v
		if strings.HasPrefix(statusLabel(m), "5") {
			errors += v
		}
	}
	return total, errors
}

func statusLabel(m *dto.Metric) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == "status" {
			return lp.GetValue()
		}
	}
	return ""
}

// addBuckets merges every label set of the duration histogram into bounds.
func addBuckets(bounds map[float64]float64, mf *dto.MetricFamily) {
	for _, m := range mf.GetMetric() {
		h := m.GetHistogram()
		for _, b := range h.GetBucket() {
			bounds[b.GetUpperBound()] += float64(b.GetCumulativeCount())
		}
		bounds[math.Inf(1)] += float64(h.GetSampleCount())
	}
}

// quantile interpolates linearly inside the bucket holding rank q, the way
// PromQL's histogram_quantile does. Ranks in the overflow bucket report the
// highest finite bound.
func quantile(q float64, buckets []bucket) (float64, bool) {
	if len(buckets) == 0 {
		return 0, false
	}
	total := buckets[len(buckets)-1].count
	if total <= 0 {
		return 0, false
	}
	rank := q * total

	lowerBound, lowerCount := 0.0, 0.0
	for _, b := range buckets {
		if b.count >= rank {
			if math.IsInf(b.upper, 1) {
				return lowerBound, true
			}
			width := b.count - lowerCount
			if width <= 0 {
				return b.upper, true
			}
			return lowerBound + (b.upper-lowerBound)*(rank-lowerCount)/width, true
		}
		lowerBound, lowerCount = b.upper, b.count
	}
	return lowerBound, true
}
