package std

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 请求结果
const (
	OUTCOME_OK      = "ok"
	OUTCOME_INVALID = "invalid"
	OUTCOME_FAILED  = "failed"
)

// Metrics 服务指标，使用独立的注册表
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	closure  *prometheus.HistogramVec
}

// NewMetrics 创建指标并注册到新的注册表
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gdu",
			Name:      "requests_total",
			Help:      "Total document operations by outcome",
		}, []string{"operation", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gdu",
			Name:      "request_duration_seconds",
			Help:      "Document operation latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		closure: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gdu",
			Name:      "closure_types",
			Help:      "Number of types retained by a closure",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"operation"}),
	}
}

// Observe 记录一次操作的结果与耗时
func (my *Metrics) Observe(operation, outcome string, start time.Time) {
	my.requests.WithLabelValues(operation, outcome).Inc()
	my.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveClosure 记录闭包保留的类型数
func (my *Metrics) ObserveClosure(operation string, types int) {
	my.closure.WithLabelValues(operation).Observe(float64(types))
}

// Registry 返回指标注册表
func (my *Metrics) Registry() *prometheus.Registry {
	return my.registry
}

func (my *Metrics) Base() string {
	return "/metrics"
}

func (my *Metrics) Init(r fiber.Router) {
	r.Get("/", adaptor.HTTPHandler(promhttp.HandlerFor(my.registry, promhttp.HandlerOpts{})))
}
