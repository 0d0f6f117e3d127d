package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "walkalong_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "walkalong_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	InFlightRequests = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "walkalong_http_in_flight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// TaskCompletions 按任务类型统计完成次数
	TaskCompletions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "walkalong_task_completions_total",
			Help: "Total number of tasks marked completed",
		},
		[]string{"type"},
	)

	// StudySeconds 秒表上报的累计学习秒数
	StudySeconds = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "walkalong_study_seconds_total",
			Help: "Total stopwatch seconds flushed onto tasks",
		},
	)
)

func Init() {
	prometheus.MustRegister(
		RequestCounter,
		RequestDuration,
		InFlightRequests,
		TaskCompletions,
		StudySeconds,
	)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		InFlightRequests.Inc()
		start := time.Now()
		c.Next()
		InFlightRequests.Dec()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, endpoint).
			Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
