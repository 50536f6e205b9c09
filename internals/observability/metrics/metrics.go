package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricPrefix = "schooladmin_"

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	reportsTotal   *prometheus.CounterVec
	reportsLatency *prometheus.HistogramVec

	requestErrors *prometheus.CounterVec
)

// Init registers collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		)
		reportsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "reports_generated_total",
				Help: "Generated reports by type, format and result",
			},
			[]string{"type", "format", "result"},
		)
		reportsLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_render_seconds",
				Help:    "Report query + render latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"type", "format"},
		)
		requestErrors = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "request_errors_total",
				Help: "Failed requests by error kind",
			},
			[]string{"kind"},
		)
		prometheus.MustRegister(httpRequests, httpLatency, reportsTotal, reportsLatency, requestErrors)
	})
}

// Middleware records request count and latency per matched route.
func Middleware() fiber.Handler {
	Init()
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		httpLatency.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler exposes the default registry.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

func ObserveReport(reportType, format string, d time.Duration, err error) {
	Init()
	result := "success"
	if err != nil {
		result = "error"
	}
	reportsTotal.WithLabelValues(reportType, format, result).Inc()
	reportsLatency.WithLabelValues(reportType, format).Observe(d.Seconds())
}

func IncError(kind string) {
	Init()
	requestErrors.WithLabelValues(kind).Inc()
}
