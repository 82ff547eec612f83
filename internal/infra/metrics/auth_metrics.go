// Package metrics exposes Prometheus collectors for the authentication flow.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"taskmanager/internal/domain/service"
)

const namespace = "taskmanager"

// AuthMetrics counts login and token verification outcomes on its own registry.
type AuthMetrics struct {
	registry      *prometheus.Registry
	logins        *prometheus.CounterVec
	verifications *prometheus.CounterVec
}

var _ service.AuthMetrics = (*AuthMetrics)(nil)

// NewAuthMetrics registers the auth counters plus the Go runtime and process collectors.
func NewAuthMetrics() *AuthMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &AuthMetrics{
		registry: registry,
		logins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "token_verifications_total",
			Help:      "Bearer token verifications by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveLogin increments the login counter for outcome.
func (m *AuthMetrics) ObserveLogin(outcome string) {
	m.logins.WithLabelValues(outcome).Inc()
}

// ObserveTokenVerification increments the verification counter for outcome.
func (m *AuthMetrics) ObserveTokenVerification(outcome string) {
	m.verifications.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *AuthMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
