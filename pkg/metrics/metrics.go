// Package metrics expone las métricas Prometheus del servicio.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Auth
	LoginAttemptsTotal prometheus.Counter
	LoginFailuresTotal prometheus.Counter

	// Dominio
	MovementsTotal         *prometheus.CounterVec
	ValidationRejectsTotal *prometheus.CounterVec
)

// Init registra las métricas con el prefijo configurado. Llamar una sola vez
// al arrancar.
func Init(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total de requests HTTP",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duración de los requests HTTP en segundos",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	LoginAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_attempts_total",
			Help: "Total de intentos de login",
		},
	)

	LoginFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_login_failures_total",
			Help: "Total de logins fallidos",
		},
	)

	MovementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_movements_total",
			Help: "Total de movimientos registrados por tipo",
		},
		[]string{"type"},
	)

	ValidationRejectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_validation_rejects_total",
			Help: "Total de candidatos rechazados por validación",
		},
		[]string{"entity"},
	)
}

// ObserveHTTP registra contador y duración de un request.
func ObserveHTTP(method, path, status string, start time.Time) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
}
