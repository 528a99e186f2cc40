package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeExecuted = "executed"
	OutcomeSkipped  = "skipped"
)

var (
	registry = prometheus.DefaultRegisterer

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by path/method/code.",
		},
		[]string{"path", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by path/method/code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "code"},
	)

	searchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "member_search_operation_duration_seconds",
			Help:    "Duration of member repository operations by op and result.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "result"},
	)

	countQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "member_search_count_queries_total",
			Help: "Page total resolutions by strategy and whether the count query ran.",
		},
		[]string{"strategy", "outcome"},
	)
)

// ObserveHTTP is called by the HTTP middleware after the response is written.
// path is the matched route pattern, so ids in URLs do not blow up cardinality.
func ObserveHTTP(path, method string, code int, start time.Time) {
	if strings.HasSuffix(path, "/metrics") {
		return
	}
	c := strconv.Itoa(code)
	httpRequests.WithLabelValues(path, method, c).Inc()
	httpDuration.WithLabelValues(path, method, c).Observe(time.Since(start).Seconds())
}

func ObserveOp(op string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	searchDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}

func ObserveCountQuery(strategy string, executed bool) {
	outcome := OutcomeSkipped
	if executed {
		outcome = OutcomeExecuted
	}
	countQueries.WithLabelValues(strategy, outcome).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// register пропускает только повторную регистрацию того же коллектора
func register(reg prometheus.Registerer, collectors ...prometheus.Collector) error {
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}

func init() {
	err := register(registry,
		httpRequests,
		httpDuration,
		searchDuration,
		countQueries,
	)
	if err != nil {
		panic(err)
	}
}
