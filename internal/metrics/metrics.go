package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geoatmos_evaluations_total",
			Help: "Total atmosphere model evaluations",
		},
		[]string{"regime", "status"},
	)

	EvaluationLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geoatmos_evaluation_latency_seconds",
			Help:    "Atmosphere model evaluation latency in seconds",
			Buckets: []float64{.00001, .000025, .00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		},
		[]string{"regime"},
	)

	SpaceWeatherFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geoatmos_spaceweather_fallbacks_total",
			Help: "Evaluations that fell back to default F10.7 and Ap because the date was outside the loaded table",
		},
	)

	RecordsParsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geoatmos_spaceweather_records_total",
			Help: "Space weather CSV lines processed during imports",
		},
		[]string{"result"},
	)

	DownloadAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geoatmos_download_attempts_total",
			Help: "Space weather download attempts",
		},
		[]string{"scheme", "status"},
	)

	DownloadLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geoatmos_download_latency_seconds",
			Help:    "Space weather download latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"scheme"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geoatmos_http_requests_total",
			Help: "API requests by route and status code",
		},
		[]string{"route", "code"},
	)

	HTTPLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "geoatmos_http_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

// Instrument counts requests to route by status code and times them.
func Instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(sw, r)
		HTTPRequests.WithLabelValues(route, strconv.Itoa(sw.code)).Inc()
		HTTPLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
