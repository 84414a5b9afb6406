// Package metrics collects and exposes Prometheus metrics for the
// gateway: moderation transitions, review popups surfaced, and
// upstream request outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	transitions *prometheus.CounterVec
	popups      prometheus.Counter
	upstream    *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_moderation_transitions_total",
			Help: "Moderation actions applied, by action.",
		}, []string{"action"}),
		popups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "portal_review_popups_total",
			Help: "Returned-for-review popups surfaced to owners.",
		}),
		upstream: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_upstream_requests_total",
			Help: "Upstream API requests, by resource and outcome.",
		}, []string{"resource", "outcome"}),
	}

	reg.MustRegister(c.transitions, c.popups, c.upstream)
	return c
}

func (c *Collector) RecordTransition(action string) {
	c.transitions.WithLabelValues(action).Inc()
}

func (c *Collector) RecordPopups(count int) {
	c.popups.Add(float64(count))
}

func (c *Collector) RecordUpstream(resource string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.upstream.WithLabelValues(resource, outcome).Inc()
}

// Handler serves the /metrics endpoint for the given registry.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
