package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cine_dw_http_requests_total",
			Help: "Total de requisições HTTP por rota, método e status.",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cine_dw_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP por rota.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

// Instrument registra contagem e latência de uma rota.
// route é o padrão registrado no router (ex: /api/peliculas/top/:limit), não o caminho real.
func Instrument(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			httpRequestDuration.WithLabelValues(route, r.Method).Observe(time.Since(startTime).Seconds())
			httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(lrw.statusCode)).Inc()
		})
	}
}
