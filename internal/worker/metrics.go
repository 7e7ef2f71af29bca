// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package worker

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels of the router counter.
const (
	outcomeHit       = "cache_hit"
	outcomeNetwork   = "network"
	outcomeFallback  = "cache_fallback"
	outcomeDefault   = "builtin_default"
	outcomeSynthetic = "synthetic"
	outcomePass      = "pass_through"
)

// Metrics counts how the router answered requests. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	responses     *prometheus.CounterVec
	revalidations *prometheus.CounterVec
}

// NewMetrics registers the router counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agro",
			Subsystem: "worker",
			Name:      "responses_total",
			Help:      "Responses served by the cache router by strategy and source.",
		}, []string{"strategy", "outcome"}),
		revalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agro",
			Subsystem: "worker",
			Name:      "revalidations_total",
			Help:      "Background stale-while-revalidate refreshes by result.",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{m.responses, m.revalidations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) served(s Strategy, outcome string) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(s.String(), outcome).Inc()
}

func (m *Metrics) revalidated(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.revalidations.WithLabelValues(result).Inc()
}
