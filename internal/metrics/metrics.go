package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_http_requests_total",
			Help: "Total number of HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "assessment_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	PublishedAssessments = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "assessment_student_assessments_published_total",
			Help: "Total number of student assessment rows inserted by publish",
		},
	)

	EventPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_event_publish_errors_total",
			Help: "Total number of domain events that failed to publish",
		},
		[]string{"type"},
	)
)

// Middleware records request counts and latencies per matched route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry for scraping
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
